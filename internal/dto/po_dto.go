package dto

import "github.com/shopspring/decimal"

// PurchaseOrderResponse is the dashboard-ready PO projection: the PO row
// joined with RFQ part data and counterparty identity for display.
type PurchaseOrderResponse struct {
	ID         string          `json:"id"`
	RFQID      string          `json:"rfq_id"`
	QuoteID    string          `json:"quote_id"`
	BuyerID    string          `json:"buyer_id"`
	SupplierID string          `json:"supplier_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`

	// Joined display fields
	PartName      string `json:"part_name,omitempty"`
	TotalQuantity int    `json:"total_quantity,omitempty"`
	BuyerName     string `json:"buyer_name,omitempty"`
	BuyerEmail    string `json:"buyer_email,omitempty"`
	SupplierName  string `json:"supplier_name,omitempty"`
	SupplierEmail string `json:"supplier_email,omitempty"`
}
