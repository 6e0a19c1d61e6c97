package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateRFQRequest carries everything a buyer submits for a new RFQ.
// buyer_id is deliberately absent: ownership is always stamped from the
// resolved identity, never from client input.
type CreateRFQRequest struct {
	PartName      string           `json:"part_name"      validate:"required,min=2,max=200"`
	PartID        string           `json:"part_id"        validate:"required,min=1,max=100"`
	TotalQuantity int              `json:"total_quantity" validate:"required,min=1"`
	BatchQuantity int              `json:"batch_quantity" validate:"omitempty,min=1"`
	TargetPrice   *decimal.Decimal `json:"target_price"   validate:"omitempty"`
	// DeliveryTimeline is required unless Status is "draft".
	DeliveryTimeline      string  `json:"delivery_timeline" validate:"omitempty,max=200"`
	MaterialSpecification *string `json:"material_specification"`
	PPAPLevel             *string `json:"ppap_level"`
	Status                string  `json:"status" validate:"omitempty,oneof=draft active"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// RFQResponse renders an RFQ. Status carries the observable label: "quoted"
// replaces "active" once at least one quote exists (derived, never stored).
type RFQResponse struct {
	ID                    string           `json:"id"`
	BuyerID               string           `json:"buyer_id"`
	PartName              string           `json:"part_name"`
	PartID                string           `json:"part_id"`
	TotalQuantity         int              `json:"total_quantity"`
	BatchQuantity         int              `json:"batch_quantity,omitempty"`
	TargetPrice           *decimal.Decimal `json:"target_price,omitempty"`
	DeliveryTimeline      string           `json:"delivery_timeline"`
	MaterialSpecification *string          `json:"material_specification,omitempty"`
	PPAPLevel             *string          `json:"ppap_level,omitempty"`
	Status                string           `json:"status"`
	QuoteCount            int              `json:"quote_count"`
	CreatedAt             string           `json:"created_at"`
}

// AvailableRFQ is the supplier-facing listing row: every non-draft RFQ
// annotated with this supplier's participation and whether a PO was issued.
type AvailableRFQ struct {
	RFQResponse
	HasQuoted bool `json:"has_quoted"`
	POIssued  bool `json:"po_issued"`
}

// ─── File / message DTOs ─────────────────────────────────────────────────────

// RFQFileResponse is the stored descriptor returned after an upload.
type RFQFileResponse struct {
	ID        string `json:"id"`
	RFQID     string `json:"rfq_id"`
	FileName  string `json:"file_name"`
	FileType  string `json:"file_type"`
	FileURL   string `json:"file_url"`
	CreatedAt string `json:"created_at"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

type RFQMessageResponse struct {
	ID         string `json:"id"`
	RFQID      string `json:"rfq_id"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name,omitempty"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
}
