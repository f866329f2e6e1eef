package record

import (
	"encoding/json"
	"testing"
)

func TestContractViewUnmarshal(t *testing.T) {
	raw := `{
		"contract": {
			"contract_ref": "SC-100",
			"contract_date": "2024-03-15",
			"contract_buyer": "Global Foods Pte Ltd",
			"contract_buyer_add": "12 Harbour Front Road"
		},
		"contractSub": [
			{"contractSub_marking": "GF-01", "contractSub_qntyInMt": "10.00", "contractSub_rateMT": 480.5}
		],
		"branch": {"branch_name": "ACE EXPORTS", "branch_letter_head": "AceB.png"}
	}`
	var v ContractView
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatal(err)
	}
	if v.Contract.Ref != "SC-100" || v.Contract.Buyer != "Global Foods Pte Ltd" {
		t.Errorf("contract = %+v", v.Contract)
	}
	// Quantities arrive quoted, rates bare; both must parse.
	if got := v.Items[0].QuantityMT.String(); got != "10" {
		t.Errorf("quantity = %q", got)
	}
	if got := v.Items[0].RateMT.String(); got != "480.5" {
		t.Errorf("rate = %q", got)
	}
	if v.Branch.LetterHead != "AceB.png" {
		t.Errorf("branch = %+v", v.Branch)
	}
}

func TestDispatchItemQuantity(t *testing.T) {
	tests := []struct {
		category string
		want     int
	}{
		{"10 KG", 10},
		{"KG 25", 25},
		{"1x5 KG", 15},
		{"LOOSE", 0},
		{"", 0},
	}
	for _, tt := range tests {
		it := DispatchItem{Category: tt.category}
		if got := it.Quantity(); got != tt.want {
			t.Errorf("Quantity(%q) = %d, want %d", tt.category, got, tt.want)
		}
	}
}

func TestDispatchTotalQuantity(t *testing.T) {
	v := &DispatchView{Items: []DispatchItem{
		{Category: "10 KG"},
		{Category: "15 KG"},
		{Category: "LOOSE"},
	}}
	if got := v.TotalQuantity(); got != 25 {
		t.Errorf("total = %d, want 25", got)
	}
}

func TestDispatchBoxAcceptsStringOrNumber(t *testing.T) {
	for _, raw := range []string{
		`{"sales_sub_box": 12}`,
		`{"sales_sub_box": "12"}`,
	} {
		var it DispatchItem
		if err := json.Unmarshal([]byte(raw), &it); err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if it.Box.String() != "12" {
			t.Errorf("%s: box = %q", raw, it.Box)
		}
	}
}
