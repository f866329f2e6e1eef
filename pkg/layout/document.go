// Package layout builds the in-memory rendered document: the single visual
// representation shared by the on-screen/HTML print view and the PDF export
// pipeline. A Document exists only for the lifetime of one view; nothing
// here is persisted.
package layout

import "github.com/document-export-service/pkg/assets"

// Variant selects the structural toggles of a rendered document. The
// without-letterhead form reserves blank top space for pre-printed paper;
// the without-signature form omits the drawn signature block.
type Variant struct {
	Letterhead bool
	Signature  bool
}

// Kind identifies the document type.
type Kind string

const (
	KindContract      Kind = "contract"
	KindPurchaseOrder Kind = "purchase-order"
)

// Fixed artifact filenames, regardless of record reference.
const (
	ContractFilename      = "Sales_Contract.pdf"
	PurchaseOrderFilename = "purchase_order.pdf"
)

// Document is the rendered visual tree handed to the export pipeline and
// the print view.
type Document struct {
	Kind     Kind
	Title    string
	Ref      string
	Date     string // display format
	Filename string
	Variant  Variant

	Parties []Party
	Items   ItemTable
	Terms   []TermGroup
	Notes   []string
	Closing Closing

	Letterhead *assets.Image
	Signature  *assets.Image

	LetterheadURL string
	SignatureURL  string
}

// Party is a named counterparty with its wrapped address lines.
type Party struct {
	Label      string
	Name       string
	Address    []string
	AlignRight bool
}

// ItemTable is the fixed-width line-item table.
type ItemTable struct {
	Columns []Column
	Rows    [][]string

	ShowTotal    bool
	TotalLabel   string
	Total        string
	TotalInWords string
}

// Column pairs a heading with its width share of the table.
type Column struct {
	Title string
	Width float64 // fraction of table width
}

// TermGroup is a block of label : value lines, optionally introduced by an
// underlined lead-in sentence.
type TermGroup struct {
	Heading string
	Lines   []TermLine
}

// TermLine is one label : value row.
type TermLine struct {
	Label string
	Value string
}

// Closing is the signature/acceptance area at the foot of the document.
type Closing struct {
	Thanks       string
	SellerLine   string
	BuyerLine    string
	SignName     string
	SignNo       string
	AcceptedLine string
	AcceptedDate string
}

// CounterpartyName returns the first party's name, the recipient named in
// share messages.
func (d *Document) CounterpartyName() string {
	if len(d.Parties) == 0 {
		return ""
	}
	return d.Parties[0].Name
}

// Images returns every image the document embeds, the set the export gate
// must see loaded before rasterization.
func (d *Document) Images() []*assets.Image {
	var imgs []*assets.Image
	if d.Variant.Letterhead && d.Letterhead != nil {
		imgs = append(imgs, d.Letterhead)
	}
	if d.Variant.Signature && d.Signature != nil {
		imgs = append(imgs, d.Signature)
	}
	return imgs
}
