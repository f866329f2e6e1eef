package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/document-export-service/pkg/assets"
	"github.com/document-export-service/pkg/layout"
)

// Body typography.
const (
	bodyInset    = 8.0 // left/right inset inside the zero page margins
	bodyFontSize = 9.0
	lineHeight   = 5.0
	cellPad      = 1.0
	termLabelW   = 45.0
	signatureW   = 32.0
)

// renderBody draws the document content into the band the annotation pass
// leaves untouched: below MarginTop, above MarginBottom.
func renderBody(pdf *gofpdf.Fpdf, doc *layout.Document) {
	pdf.AddPage()
	pdf.SetFont("Arial", "", bodyFontSize)

	b := &bodyWriter{pdf: pdf, doc: doc}
	b.parties()
	b.itemTable()
	b.terms()
	b.notes()
	b.closing()
}

type bodyWriter struct {
	pdf *gofpdf.Fpdf
	doc *layout.Document
}

func (b *bodyWriter) pageWidth() float64 {
	w, _ := b.pdf.GetPageSize()
	return w
}

func (b *bodyWriter) contentWidth() float64 {
	return b.pageWidth() - 2*bodyInset
}

// breakIfNeeded starts a new page when a block of the given height would
// cross the bottom margin.
func (b *bodyWriter) breakIfNeeded(h float64) {
	_, pageH := b.pdf.GetPageSize()
	if b.pdf.GetY()+h > pageH-MarginBottom {
		b.pdf.AddPage()
	}
}

func (b *bodyWriter) parties() {
	for _, p := range b.doc.Parties {
		align := "L"
		if p.AlignRight {
			align = "R"
		}
		b.pdf.SetFont("Arial", "B", bodyFontSize)
		b.pdf.SetX(bodyInset)
		b.pdf.CellFormat(b.contentWidth(), lineHeight, p.Label, "", 1, align, false, 0, "")
		b.pdf.SetFont("Arial", "", bodyFontSize)
		b.pdf.SetX(bodyInset)
		b.pdf.CellFormat(b.contentWidth(), lineHeight, p.Name, "", 1, align, false, 0, "")
		for _, line := range p.Address {
			b.pdf.SetX(bodyInset)
			b.pdf.CellFormat(b.contentWidth(), lineHeight, line, "", 1, align, false, 0, "")
		}
		b.pdf.Ln(lineHeight / 2)
	}
}

func (b *bodyWriter) itemTable() {
	t := b.doc.Items
	if len(t.Columns) == 0 {
		return
	}
	colW := make([]float64, len(t.Columns))
	for i, c := range t.Columns {
		colW[i] = c.Width * b.contentWidth()
	}

	b.pdf.SetFont("Arial", "B", bodyFontSize)
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Title
	}
	b.tableRow(colW, headers, "C")

	b.pdf.SetFont("Arial", "", bodyFontSize)
	for _, row := range t.Rows {
		b.tableRow(colW, row, "L")
	}

	if t.ShowTotal {
		b.pdf.SetFont("Arial", "B", bodyFontSize)
		labelW := 0.0
		for _, w := range colW[:len(colW)-1] {
			labelW += w
		}
		b.breakIfNeeded(lineHeight + 2*cellPad)
		y := b.pdf.GetY()
		h := lineHeight + 2*cellPad
		b.pdf.Rect(bodyInset, y, labelW, h, "D")
		b.pdf.Rect(bodyInset+labelW, y, colW[len(colW)-1], h, "D")
		b.pdf.SetXY(bodyInset+cellPad, y+cellPad)
		b.pdf.CellFormat(labelW-2*cellPad, lineHeight, t.TotalLabel, "", 0, "R", false, 0, "")
		b.pdf.SetXY(bodyInset+labelW+cellPad, y+cellPad)
		b.pdf.CellFormat(colW[len(colW)-1]-2*cellPad, lineHeight, t.Total, "", 0, "L", false, 0, "")
		b.pdf.SetXY(bodyInset, y+h)
		if t.TotalInWords != "" {
			b.pdf.SetFont("Arial", "BI", bodyFontSize)
			b.pdf.SetX(bodyInset)
			b.pdf.MultiCell(b.contentWidth(), lineHeight, t.TotalInWords, "", "L", false)
		}
		b.pdf.SetFont("Arial", "", bodyFontSize)
	}
	b.pdf.Ln(lineHeight)
}

// tableRow draws one bordered row, sized to fit the tallest wrapped cell.
func (b *bodyWriter) tableRow(colW []float64, cells []string, align string) {
	maxLines := 1
	for i := range colW {
		if i >= len(cells) {
			break
		}
		lines := b.pdf.SplitLines([]byte(cells[i]), colW[i]-2*cellPad)
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	h := float64(maxLines)*lineHeight + 2*cellPad
	b.breakIfNeeded(h)

	y := b.pdf.GetY()
	x := bodyInset
	for i := range colW {
		b.pdf.Rect(x, y, colW[i], h, "D")
		if i < len(cells) {
			b.pdf.SetXY(x+cellPad, y+cellPad)
			b.pdf.MultiCell(colW[i]-2*cellPad, lineHeight, cells[i], "", align, false)
		}
		x += colW[i]
	}
	b.pdf.SetXY(bodyInset, y+h)
}

func (b *bodyWriter) terms() {
	for _, g := range b.doc.Terms {
		if g.Heading != "" {
			b.breakIfNeeded(lineHeight)
			b.pdf.SetFont("Arial", "BU", bodyFontSize)
			b.pdf.SetX(bodyInset)
			b.pdf.MultiCell(b.contentWidth(), lineHeight, g.Heading, "", "L", false)
		}
		for _, line := range g.Lines {
			b.termLine(line)
		}
		b.pdf.Ln(lineHeight / 2)
	}
}

func (b *bodyWriter) termLine(line layout.TermLine) {
	valueW := b.contentWidth() - termLabelW
	lines := b.pdf.SplitLines([]byte(line.Value), valueW)
	h := float64(len(lines)) * lineHeight
	if h < lineHeight {
		h = lineHeight
	}
	b.breakIfNeeded(h)

	y := b.pdf.GetY()
	b.pdf.SetFont("Arial", "B", bodyFontSize)
	b.pdf.SetXY(bodyInset, y)
	b.pdf.CellFormat(termLabelW, lineHeight, line.Label, "", 0, "L", false, 0, "")
	b.pdf.SetFont("Arial", "", bodyFontSize)
	b.pdf.SetXY(bodyInset+termLabelW, y)
	b.pdf.MultiCell(valueW, lineHeight, line.Value, "", "L", false)
	if b.pdf.GetY() < y+h {
		b.pdf.SetY(y + h)
	}
}

func (b *bodyWriter) notes() {
	for _, n := range b.doc.Notes {
		b.breakIfNeeded(lineHeight)
		b.pdf.SetFont("Arial", "I", bodyFontSize)
		b.pdf.SetX(bodyInset)
		b.pdf.MultiCell(b.contentWidth(), lineHeight, n, "", "L", false)
	}
	b.pdf.SetFont("Arial", "", bodyFontSize)
	b.pdf.Ln(lineHeight)
}

func (b *bodyWriter) closing() {
	c := b.doc.Closing
	if c.Thanks == "" && c.SellerLine == "" && c.BuyerLine == "" {
		return
	}
	b.breakIfNeeded(8 * lineHeight)

	if c.Thanks != "" {
		b.pdf.SetX(bodyInset)
		b.pdf.CellFormat(b.contentWidth(), lineHeight, c.Thanks, "", 1, "L", false, 0, "")
		b.pdf.Ln(lineHeight / 2)
	}

	y := b.pdf.GetY()
	half := b.contentWidth() / 2
	b.pdf.SetFont("Arial", "B", bodyFontSize)
	b.pdf.SetXY(bodyInset, y)
	b.pdf.CellFormat(half, lineHeight, c.SellerLine, "", 0, "L", false, 0, "")
	b.pdf.CellFormat(half, lineHeight, c.BuyerLine, "", 1, "R", false, 0, "")
	b.pdf.SetFont("Arial", "", bodyFontSize)

	y = b.pdf.GetY() + lineHeight

	// Seller side: drawn signature above the rule when the variant carries
	// one, then name and phone.
	if b.doc.Variant.Signature && b.doc.Signature != nil {
		if raw := b.doc.Signature.Bytes(); len(raw) > 0 {
			opts := gofpdf.ImageOptions{ImageType: assets.SniffImageType(raw)}
			b.pdf.RegisterImageOptionsReader("signature", opts, bytes.NewReader(raw))
			b.pdf.ImageOptions("signature", bodyInset+6, y, signatureW, 0, false, opts, 0, "")
		}
		y += 18
	} else {
		y += 12
	}
	b.pdf.Line(bodyInset, y, bodyInset+60, y)
	b.pdf.SetXY(bodyInset, y+1)
	b.pdf.CellFormat(60, lineHeight, c.SignName, "", 2, "L", false, 0, "")
	if c.SignNo != "" {
		b.pdf.SetX(bodyInset)
		b.pdf.CellFormat(60, lineHeight, "HP : "+c.SignNo, "", 1, "L", false, 0, "")
	}

	// Buyer side: acceptance seal line and date, right aligned at the same
	// height as the rule.
	if c.AcceptedLine != "" {
		b.pdf.SetXY(b.pageWidth()-bodyInset-70, y+1)
		b.pdf.CellFormat(70, lineHeight, c.AcceptedLine, "", 2, "R", false, 0, "")
		if c.AcceptedDate != "" {
			b.pdf.SetX(b.pageWidth() - bodyInset - 70)
			b.pdf.CellFormat(70, lineHeight, "Date : "+c.AcceptedDate, "", 1, "R", false, 0, "")
		}
	}
}
