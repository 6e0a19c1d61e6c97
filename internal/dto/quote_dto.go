package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SubmitQuoteRequest carries a supplier's quote. supplier_id is stamped from
// the resolved identity server-side.
type SubmitQuoteRequest struct {
	RFQID                 string          `json:"rfq_id"            validate:"required,uuid"`
	Price                 decimal.Decimal `json:"price"             validate:"required"`
	BatchQuantity         int             `json:"batch_quantity"    validate:"required,min=1"`
	DeliveryTimeline      string          `json:"delivery_timeline" validate:"required,max=200"`
	MaterialSpecification *string         `json:"material_specification"`
	Certifications        *string         `json:"certifications"`
}

// AcceptQuoteRequest names the quote a buyer accepts. Quantity, price and
// supplier come from the stored quote, never from this payload.
type AcceptQuoteRequest struct {
	RFQID   string `json:"rfq_id"   validate:"required,uuid"`
	QuoteID string `json:"quote_id" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type QuoteResponse struct {
	ID                    string          `json:"id"`
	RFQID                 string          `json:"rfq_id"`
	SupplierID            string          `json:"supplier_id"`
	SupplierName          string          `json:"supplier_name,omitempty"`
	SupplierEmail         string          `json:"supplier_email,omitempty"`
	Price                 decimal.Decimal `json:"price"`
	BatchQuantity         int             `json:"batch_quantity"`
	DeliveryTimeline      string          `json:"delivery_timeline"`
	MaterialSpecification *string         `json:"material_specification,omitempty"`
	Certifications        *string         `json:"certifications,omitempty"`
	Status                string          `json:"status"`
	CreatedAt             string          `json:"created_at"`
}
