package layout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/document-export-service/pkg/assets"
	"github.com/document-export-service/pkg/record"
)

// PurchaseOrderTitle is the fixed heading of the purchase-order document.
const PurchaseOrderTitle = "PURCHASE ORDER"

// BuildPurchaseOrder lays a fetched purchase order out into its rendered
// document. Amounts are quantity × rate at two decimal places, with a grand
// total row and the total spelled out in words.
func BuildPurchaseOrder(ctx context.Context, v *record.PurchaseOrderView, res *assets.Resolver, variant Variant) *Document {
	po := v.Order

	doc := &Document{
		Kind:     KindPurchaseOrder,
		Title:    PurchaseOrderTitle,
		Ref:      po.Ref,
		Date:     record.DisplayDate(po.Date),
		Filename: PurchaseOrderFilename,
		Variant:  variant,
	}

	doc.Parties = []Party{
		{Label: "Seller:", Name: po.Seller, Address: WrapAddress(po.SellerAddress)},
	}

	doc.Items = ItemTable{
		Columns: []Column{
			{Title: "Item", Width: 0.25},
			{Title: "Description", Width: 0.35},
			{Title: "Quantity", Width: 0.12},
			{Title: "Rate", Width: 0.13},
			{Title: "Amount", Width: 0.15},
		},
		ShowTotal:  true,
		TotalLabel: "Total",
	}
	total := decimal.Zero
	for _, it := range v.Items {
		total = total.Add(it.QuantityMT.Mul(it.RateMT))
		doc.Items.Rows = append(doc.Items.Rows, []string{
			it.Name,
			it.Description,
			it.QuantityMT.String() + " MTS",
			it.RateMT.String() + " USD/MTS",
			Amount(it.QuantityMT, it.RateMT),
		})
	}
	doc.Items.Total = total.StringFixed(2)
	doc.Items.TotalInWords = AmountInWords(total)

	doc.Terms = []TermGroup{{Lines: []TermLine{
		{Label: "GSTIN", Value: po.SellerGST},
		{Label: "Contact", Value: po.SellerContact},
		{Label: "Quality", Value: po.Quality},
		{Label: "Terms of Payment", Value: po.PaymentTerms},
		{Label: "Delivery At", Value: po.DeliveryAt},
		{Label: "Delivery Date", Value: record.DisplayDate(po.DeliveryDate)},
	}}}
	if po.GSTNotification != "" {
		doc.Notes = append(doc.Notes, po.GSTNotification)
	}

	doc.Closing = Closing{
		Thanks:       "Thanks & regards,",
		SellerLine:   "For " + v.Branch.Name,
		BuyerLine:    "(Seller)",
		SignName:     v.Branch.SignName,
		SignNo:       v.Branch.SignNo,
		AcceptedLine: "Accepted with Co Seal",
		AcceptedDate: record.Today(),
	}

	attachAssets(ctx, doc, v.Branch, res)
	return doc
}
