package layout

import (
	"context"

	"github.com/document-export-service/pkg/assets"
	"github.com/document-export-service/pkg/record"
)

// ContractTitle is the fixed heading burned into page 1 and stamped on
// every page of the exported PDF.
const ContractTitle = "SALES CONTRACT"

// BuildContract lays a fetched contract out into its rendered document and
// starts the asset loads the export pipeline will wait on.
func BuildContract(ctx context.Context, v *record.ContractView, res *assets.Resolver, variant Variant) *Document {
	c := v.Contract

	doc := &Document{
		Kind:     KindContract,
		Title:    ContractTitle,
		Ref:      c.Ref,
		Date:     record.DisplayDate(c.Date),
		Filename: ContractFilename,
		Variant:  variant,
	}

	doc.Parties = []Party{
		{Label: "Buyer:", Name: c.Buyer, Address: WrapAddress(c.BuyerAddress)},
		{Label: "CONSIGNEE:", Name: c.Consignee, Address: WrapAddress(c.ConsigneeAddress), AlignRight: true},
	}

	doc.Items = ItemTable{
		Columns: []Column{
			{Title: "Marking", Width: 0.30},
			{Title: "Description of Goods", Width: 0.30},
			{Title: "Packing", Width: 0.20},
			{Title: "Quantity", Width: 0.10},
			{Title: "Rate", Width: 0.10},
		},
	}
	for _, it := range v.Items {
		doc.Items.Rows = append(doc.Items.Rows, []string{
			it.Marking,
			it.Description,
			it.Packing + " KG NET IN " + it.BagSize + " " + it.BagType,
			it.QuantityMT.String() + " MTS",
			it.RateMT.String() + " USD/MTS",
		})
	}

	shipperBank := c.ShipDate
	if c.ShipDate != "" {
		shipperBank += " - "
	}
	shipperBank += c.Shipment

	terms := TermGroup{Lines: []TermLine{
		{Label: "Container", Value: c.ContainerSize},
		{Label: "Specification (If Any)", Value: c.Specification1},
	}}
	if c.Specification2 != "" {
		terms.Lines = append(terms.Lines, TermLine{Value: c.Specification2})
	}
	terms.Lines = append(terms.Lines,
		TermLine{Label: "TERMS OF PAYMENT", Value: c.PaymentTerms},
		TermLine{Label: "SHIPPER'S BANK", Value: shipperBank},
	)

	shipping := TermGroup{Lines: []TermLine{
		{Label: "Shipment", Value: "ON OR BEFORE - " + c.ShipDate},
		{Label: "Port of Loading", Value: c.Loading + ", INDIA"},
		{Label: "Port of Discharge", Value: c.Discharge + ", " + c.DestinationCountry},
	}}

	directVessel := TermGroup{
		Heading: "In Case of Shipment via Direct Vessel by Hyundai Liners:",
		Lines: []TermLine{
			{Label: "Port of Loading", Value: c.Loading + ", INDIA"},
			{Label: "Port of Discharge", Value: c.Discharge + ", " + c.DestinationCountry},
			{Label: "Special Remarks", Value: c.Remarks},
		},
	}

	doc.Terms = []TermGroup{terms, shipping, directVessel}
	doc.Notes = []string{"Kindly Mail your Purchase Order at the earliest."}

	doc.Closing = Closing{
		Thanks:       "Thanks & regards,",
		SellerLine:   "For " + c.BranchName + " (Seller)",
		BuyerLine:    "(Buyer)",
		SignName:     v.Branch.SignName,
		SignNo:       v.Branch.SignNo,
		AcceptedLine: "Accepted with Co Seal",
		AcceptedDate: record.Today(),
	}

	attachAssets(ctx, doc, v.Branch, res)
	return doc
}

func attachAssets(ctx context.Context, doc *Document, b record.Branch, res *assets.Resolver) {
	if res == nil {
		return
	}
	if b.LetterHead != "" {
		doc.LetterheadURL = res.LetterheadURL(b.LetterHead)
		if doc.Variant.Letterhead {
			doc.Letterhead = res.Letterhead(ctx, b.LetterHead)
		}
	}
	if b.Sign != "" {
		doc.SignatureURL = res.SignatureURL(b.Sign)
		if doc.Variant.Signature {
			doc.Signature = res.Signature(ctx, b.Sign)
		}
	}
}
