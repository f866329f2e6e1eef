// Package record defines the business records served by the panel backend:
// sales contracts, purchase orders and sales dispatches, each a header
// entity with child line items plus the owning branch. Field tags mirror
// the backend's JSON shape exactly; records are fetched read-only per view.
package record

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Branch carries the branch identity and its document assets. The letterhead
// filename is required for rendering; the signature images are optional.
type Branch struct {
	Name       string `json:"branch_name"`
	LetterHead string `json:"branch_letter_head"`
	Sign       string `json:"branch_sign"`
	SignName   string `json:"branch_sign_name"`
	SignNo     string `json:"branch_sign_no"`
}

// Contract is a sales contract header.
type Contract struct {
	Ref                string `json:"contract_ref"`
	Date               string `json:"contract_date"`
	Buyer              string `json:"contract_buyer"`
	BuyerAddress       string `json:"contract_buyer_add"`
	Consignee          string `json:"contract_consignee"`
	ConsigneeAddress   string `json:"contract_consignee_add"`
	ContainerSize      string `json:"contract_container_size"`
	Specification1     string `json:"contract_specification1"`
	Specification2     string `json:"contract_specification2"`
	PaymentTerms       string `json:"contract_payment_terms"`
	ShipDate           string `json:"contract_ship_date"`
	Shipment           string `json:"contract_shipment"`
	Loading            string `json:"contract_loading"`
	Discharge          string `json:"contract_discharge"`
	DestinationCountry string `json:"contract_destination_country"`
	Remarks            string `json:"contract_remarks"`
	BranchName         string `json:"branch_name"`
}

// ContractItem is one line of a sales contract.
type ContractItem struct {
	ID          int             `json:"id"`
	Marking     string          `json:"contractSub_marking"`
	Description string          `json:"contractSub_descriptionofGoods"`
	Packing     string          `json:"contractSub_packing"`
	BagSize     string          `json:"contractSub_bagsize"`
	BagType     string          `json:"contractSub_sbaga"`
	QuantityMT  decimal.Decimal `json:"contractSub_qntyInMt"`
	RateMT      decimal.Decimal `json:"contractSub_rateMT"`
}

// ContractView is the full fetch-contract-by-id payload.
type ContractView struct {
	Contract Contract       `json:"contract"`
	Items    []ContractItem `json:"contractSub"`
	Branch   Branch         `json:"branch"`
}

// PurchaseOrder is a purchase order header.
type PurchaseOrder struct {
	Ref             string `json:"purchase_product_ref"`
	Date            string `json:"purchase_product_date"`
	Seller          string `json:"purchase_product_seller"`
	SellerAddress   string `json:"purchase_product_seller_add"`
	SellerGST       string `json:"purchase_product_seller_gst"`
	SellerContact   string `json:"purchase_product_seller_contact"`
	PaymentTerms    string `json:"purchase_product_payment_terms"`
	Quality         string `json:"purchase_product_quality"`
	DeliveryAt      string `json:"purchase_product_delivery_at"`
	DeliveryDate    string `json:"purchase_product_delivery_date"`
	GSTNotification string `json:"purchase_product_gst_notification"`
}

// PurchaseOrderItem is one line of a purchase order.
type PurchaseOrderItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"purchase_productSub_name"`
	Description string          `json:"purchase_productSub_description"`
	QuantityMT  decimal.Decimal `json:"purchase_productSub_qntyInMt"`
	RateMT      decimal.Decimal `json:"purchase_productSub_rateInMt"`
}

// PurchaseOrderView is the full fetch-purchase-product-view-by-id payload.
type PurchaseOrderView struct {
	Order  PurchaseOrder       `json:"purchaseProduct"`
	Items  []PurchaseOrderItem `json:"purchaseProductSub"`
	Branch Branch              `json:"branch"`
}

// Dispatch is an outbound sales transaction header ("sales" in data,
// "dispatch" in the UI).
type Dispatch struct {
	RefNo     string `json:"sales_ref_no"`
	Date      string `json:"sales_date"`
	BuyerName string `json:"sales_buyer_name"`
	BuyerCity string `json:"sales_buyer_city"`
	VehicleNo string `json:"sales_vehicle_no"`
	Status    string `json:"sales_status"`
}

// DispatchItem is one line of a dispatch. Category carries the per-box
// quantity embedded in free text (e.g. "10 KG"); Quantity extracts it.
type DispatchItem struct {
	ItemName string      `json:"item_name"`
	ItemSize string      `json:"item_size"`
	Category string      `json:"item_category"`
	Box      json.Number `json:"sales_sub_box"`
}

// DispatchView is the full fetch-sales-by-id payload.
type DispatchView struct {
	Dispatch Dispatch       `json:"sales"`
	Items    []DispatchItem `json:"salesSub"`
}

// Quantity returns the numeric part of the item category, zero when the
// category carries no digits.
func (d DispatchItem) Quantity() int {
	var b strings.Builder
	for _, r := range d.Category {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n := 0
	for _, r := range b.String() {
		n = n*10 + int(r-'0')
	}
	return n
}

// TotalQuantity sums the extracted quantities across all dispatch items.
func (v *DispatchView) TotalQuantity() int {
	total := 0
	for _, it := range v.Items {
		total += it.Quantity()
	}
	return total
}
