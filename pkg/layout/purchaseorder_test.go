package layout

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/document-export-service/pkg/record"
)

func samplePurchaseOrder() *record.PurchaseOrderView {
	return &record.PurchaseOrderView{
		Order: record.PurchaseOrder{
			Ref:           "PO-42",
			Date:          "2024-05-02",
			Seller:        "Krishna Agro Mills",
			SellerAddress: "Plot 7 SIPCOT Industrial Park Gummidipoondi Tamil Nadu",
			SellerGST:     "33AAACK1234F1Z5",
			SellerContact: "044-2345678",
			Quality:       "EXPORT GRADE",
			PaymentTerms:  "30 DAYS",
			DeliveryAt:    "CHENNAI PORT",
			DeliveryDate:  "2024-05-20",
		},
		Items: []record.PurchaseOrderItem{
			{Name: "PEANUTS", Description: "BOLD 40/50", QuantityMT: decimal.NewFromInt(10), RateMT: decimal.RequireFromString("25.5")},
			{Name: "SESAME", Description: "NATURAL WHITE", QuantityMT: decimal.NewFromInt(2), RateMT: decimal.RequireFromString("0.25")},
		},
		Branch: record.Branch{
			Name:       "ACE EXPORTS",
			LetterHead: "AceB.png",
			SignName:   "R. Kumar",
		},
	}
}

func TestBuildPurchaseOrder(t *testing.T) {
	doc := BuildPurchaseOrder(context.Background(), samplePurchaseOrder(), nil, Variant{Letterhead: true, Signature: true})

	if doc.Title != "PURCHASE ORDER" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Filename != "purchase_order.pdf" {
		t.Errorf("filename = %q", doc.Filename)
	}
	if doc.Date != "02-May-2024" {
		t.Errorf("date = %q", doc.Date)
	}

	if !doc.Items.ShowTotal {
		t.Fatal("purchase order table must carry a total row")
	}
	if doc.Items.Total != "255.50" {
		t.Errorf("total = %q, want 255.50", doc.Items.Total)
	}
	if doc.Items.TotalInWords != "TwoHundredFifty-fiveAndfiftyCents Dollars" {
		t.Errorf("total in words = %q", doc.Items.TotalInWords)
	}
	if got := doc.Items.Rows[0][4]; got != "255.00" {
		t.Errorf("row amount = %q, want 255.00", got)
	}

	if len(doc.Terms) != 1 || len(doc.Terms[0].Lines) != 6 {
		t.Fatalf("terms = %+v", doc.Terms)
	}
	var delivery string
	for _, l := range doc.Terms[0].Lines {
		if l.Label == "Delivery Date" {
			delivery = l.Value
		}
	}
	if delivery != "20-May-2024" {
		t.Errorf("delivery date = %q", delivery)
	}
}

func TestBuildPurchaseOrderEmptyItems(t *testing.T) {
	v := samplePurchaseOrder()
	v.Items = nil
	doc := BuildPurchaseOrder(context.Background(), v, nil, Variant{})
	if doc.Items.Total != "0.00" {
		t.Errorf("empty total = %q, want 0.00", doc.Items.Total)
	}
	if doc.Items.TotalInWords != "Zero Dollars" {
		t.Errorf("empty total in words = %q", doc.Items.TotalInWords)
	}
}

func TestBuildPurchaseOrderGSTNotification(t *testing.T) {
	v := samplePurchaseOrder()
	v.Order.GSTNotification = "GST @5% as per notification 01/2017"
	doc := BuildPurchaseOrder(context.Background(), v, nil, Variant{})
	if len(doc.Notes) != 1 || doc.Notes[0] != v.Order.GSTNotification {
		t.Errorf("notes = %+v", doc.Notes)
	}
}
