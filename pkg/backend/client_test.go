package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const contractJSON = `{
	"code": 200,
	"msg": "success",
	"contract": {
		"contract_ref": "SC-100",
		"contract_date": "2024-03-15",
		"contract_buyer": "Global Foods Pte Ltd",
		"branch_name": "ACE EXPORTS"
	},
	"contractSub": [
		{"contractSub_marking": "GF-01", "contractSub_qntyInMt": "10.00", "contractSub_rateMT": 480}
	],
	"branch": {
		"branch_name": "ACE EXPORTS",
		"branch_letter_head": "AceB.png",
		"branch_sign": "AceB_sign.png"
	}
}`

func TestFetchContract(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(contractJSON))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	v, err := c.FetchContract(context.Background(), Session{Token: "tok-1"}, "7")
	if err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotPath != "/api/panel-fetch-contract-by-id/7" {
		t.Errorf("path = %q", gotPath)
	}
	if v.Contract.Ref != "SC-100" {
		t.Errorf("ref = %q", v.Contract.Ref)
	}
	if got := v.Items[0].QuantityMT.String(); got != "10" {
		t.Errorf("quantity = %q, want 10", got)
	}
	if got := v.Items[0].RateMT.String(); got != "480" {
		t.Errorf("rate = %q, want 480", got)
	}
}

func TestFetchContractEnvelopeCodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 400, "msg": "contract not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).FetchContract(context.Background(), Session{}, "9")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Code != 400 || apiErr.Msg != "contract not found" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestFetchContractUnauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		_, err := New(srv.URL, nil).FetchContract(context.Background(), Session{}, "7")
		srv.Close()
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("status %d: err = %v, want ErrUnauthorized", status, err)
		}
	}
}

func TestFetchContractMissingLetterhead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 200, "contract": {"contract_ref": "SC-100"}, "branch": {"branch_name": "ACE"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).FetchContract(context.Background(), Session{}, "7")
	if !errors.Is(err, ErrLetterheadMissing) {
		t.Fatalf("err = %v, want ErrLetterheadMissing", err)
	}
}

func TestFetchDispatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/panel-fetch-sales-by-id/3" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"code": 200,
			"sales": {"sales_ref_no": "DL-3", "sales_buyer_name": "Metro Traders"},
			"salesSub": [{"item_name": "PEANUTS", "item_size": "50 KG", "item_category": "10 KG", "sales_sub_box": 12}]
		}`))
	}))
	defer srv.Close()

	v, err := New(srv.URL, nil).FetchDispatch(context.Background(), Session{}, "3")
	if err != nil {
		t.Fatal(err)
	}
	if v.Dispatch.RefNo != "DL-3" {
		t.Errorf("ref = %q", v.Dispatch.RefNo)
	}
	if v.Items[0].Quantity() != 10 {
		t.Errorf("quantity = %d, want 10", v.Items[0].Quantity())
	}
	if v.Items[0].Box.String() != "12" {
		t.Errorf("box = %q", v.Items[0].Box)
	}
}

func TestSendDocumentEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/panel-send-document-email" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("to_email"); got != "buyer@example.com" {
			t.Errorf("to_email = %q", got)
		}
		if got := r.FormValue("subject_email"); got != "Sales Contract SC-100" {
			t.Errorf("subject_email = %q", got)
		}
		if got := r.FormValue("description_email"); got != "Please find attached." {
			t.Errorf("description_email = %q", got)
		}
		f, hdr, err := r.FormFile("attachment_email")
		if err != nil {
			t.Fatalf("attachment_email: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "Sales_Contract.pdf" {
			t.Errorf("attachment filename = %q", hdr.Filename)
		}
		w.Write([]byte(`{"code": 200, "msg": "sent"}`))
	}))
	defer srv.Close()

	err := New(srv.URL, nil).SendDocumentEmail(context.Background(), Session{Token: "tok"}, EmailRequest{
		To:          "buyer@example.com",
		Subject:     "Sales Contract SC-100",
		Description: "Please find attached.",
		Filename:    "Sales_Contract.pdf",
		Attachment:  []byte("%PDF-1.3 fake"),
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestSendDocumentEmailEnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 500, "msg": "mailer down"}`))
	}))
	defer srv.Close()

	err := New(srv.URL, nil).SendDocumentEmail(context.Background(), Session{}, EmailRequest{To: "a@b.c"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Msg != "mailer down" {
		t.Fatalf("err = %v, want mailer-down APIError", err)
	}
}
