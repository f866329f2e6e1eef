package layout

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/document-export-service/pkg/assets"
)

func TestRenderHTMLWithLetterhead(t *testing.T) {
	res := newTestResolver()
	doc := BuildContract(context.Background(), sampleContract(), res, Variant{Letterhead: true, Signature: true})

	var buf bytes.Buffer
	if err := RenderHTML(&buf, doc); err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	for _, want := range []string{
		"SALES CONTRACT",
		"print-header",
		"print-hide",
		"/api/public/assets/images/letterHead/AceB.png",
		"/api/public/assets/images/sign/AceB_sign.png",
		"Cont No.:",
		"SC-100",
		"Accepted with Co Seal",
		"HP : 98765 43210",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("print view missing %q", want)
		}
	}
	if strings.Contains(html, "without-header-reserve") {
		t.Error("letterhead variant should not reserve blank header space")
	}
}

func TestRenderHTMLWithoutLetterhead(t *testing.T) {
	res := newTestResolver()
	doc := BuildContract(context.Background(), sampleContract(), res, Variant{Letterhead: false, Signature: false})

	var buf bytes.Buffer
	if err := RenderHTML(&buf, doc); err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	if !strings.Contains(html, "without-header-reserve") {
		t.Error("blank variant must reserve header space")
	}
	if strings.Contains(html, "/api/public/assets/images/letterHead/") {
		t.Error("blank variant must not embed the letterhead image")
	}
	if strings.Contains(html, `alt="sign"`) {
		t.Error("no-signature variant must not embed the signature image")
	}
}

func newTestResolver() *assets.Resolver {
	return assets.NewResolver(staticSource{data: []byte("img")}, "https://backend.example.com", nil)
}
