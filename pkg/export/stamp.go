package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/document-export-service/pkg/assets"
	"github.com/document-export-service/pkg/layout"
)

// Header band geometry, in millimeters.
const (
	logoX = 0.0
	logoY = 10.0
	logoH = 30.0

	titleY = 45.0
	// The title is centered using the width it would have at the larger
	// size but drawn at the smaller one, so it sits slightly left of true
	// center. Kept as rendered.
	titleMeasureSize = 16.0
	titleDrawSize    = 12.0

	metaY        = 55.0
	metaFontSize = 9.0
	refX         = 4.0
	dateInset    = 31.0

	footerFontSize    = 10.0
	footerRightInset  = 10.0
	footerBottomInset = 10.0
)

// annotate revisits every rasterized page and stamps the letterhead, title,
// reference line and "Page X of Y" footer. It runs after the body pass so
// the total page count is known.
func annotate(pdf *gofpdf.Fpdf, doc *layout.Document) {
	total := pdf.PageCount()
	pageW, pageH := pdf.GetPageSize()

	logo := ""
	var logoOpts gofpdf.ImageOptions
	if doc.Variant.Letterhead && doc.Letterhead != nil {
		if raw, err := assets.DecodeDataURI(doc.Letterhead.DataURI()); err == nil && len(raw) > 0 {
			logo = "letterhead"
			logoOpts = gofpdf.ImageOptions{ImageType: assets.SniffImageType(raw)}
			pdf.RegisterImageOptionsReader(logo, logoOpts, bytes.NewReader(raw))
		}
	}

	refLabel := "Cont No.: "
	if doc.Kind == layout.KindPurchaseOrder {
		refLabel = "PO No.: "
	}

	for i := 1; i <= total; i++ {
		pdf.SetPage(i)

		if logo != "" {
			pdf.ImageOptions(logo, logoX, logoY, pageW, logoH, false, logoOpts, 0, "")
		}

		pdf.SetFont("Arial", "B", titleMeasureSize)
		titleW := pdf.GetStringWidth(doc.Title)
		pdf.SetFontSize(titleDrawSize)
		pdf.Text((pageW-titleW)/2, titleY, doc.Title)

		pdf.SetFont("Arial", "", metaFontSize)
		pdf.Text(refX, metaY, refLabel+doc.Ref)
		pdf.Text(pageW-dateInset, metaY, "DATE: "+doc.Date)

		pdf.SetFont("Arial", "", footerFontSize)
		pdf.SetTextColor(0, 0, 0)
		footer := fmt.Sprintf("Page %d of %d", i, total)
		fw := pdf.GetStringWidth(footer)
		pdf.Text(pageW-fw-footerRightInset, pageH-footerBottomInset, footer)
	}
}
