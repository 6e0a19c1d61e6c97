package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RFQ statuses. "quoted" is intentionally absent: it is a derived,
// query-time label (active RFQ with at least one quote), never stored.
const (
	RFQStatusDraft  = "draft"
	RFQStatusActive = "active"
	RFQStatusClosed = "closed"
)

// RFQ is a buyer's sourcing request for a part.
// Lifecycle: draft -> active -> closed. Transitions are forward-only and
// "closed" is entered exclusively by the quote acceptance transaction.
type RFQ struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BuyerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	PartName      string    `gorm:"not null"`
	PartID        string    `gorm:"not null"`
	TotalQuantity int       `gorm:"not null"`
	BatchQuantity int
	TargetPrice   *decimal.Decimal `gorm:"type:decimal(14,2)"`
	// DeliveryTimeline is free-form ("60 days"); drafts may carry a placeholder.
	DeliveryTimeline      string `gorm:"not null"`
	MaterialSpecification *string
	PPAPLevel             *string `gorm:"column:ppap_level"`
	Status                string  `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Buyer  *User   `gorm:"foreignKey:BuyerID"`
	Quotes []Quote `gorm:"foreignKey:RFQID"`
}

func (RFQ) TableName() string { return "rfqs" }

// NormalizeRFQStatus maps legacy status spellings from older data imports
// ("verified", "published", "po_issued", persisted "quoted") onto the
// canonical closed set. Returns "" for unknown values.
func NormalizeRFQStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "draft", "created":
		return RFQStatusDraft
	case "active", "verified", "published", "quoted":
		return RFQStatusActive
	case "closed", "po_issued":
		return RFQStatusClosed
	}
	return ""
}
