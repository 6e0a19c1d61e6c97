package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote statuses. A quote is immutable once accepted or rejected.
const (
	QuoteStatusSubmitted = "submitted"
	QuoteStatusAccepted  = "accepted"
	QuoteStatusRejected  = "rejected"
)

// Quote is a supplier's priced response to an RFQ.
// At most one quote exists per (rfq, supplier) pair, and at most one quote
// per RFQ ever reaches "accepted" — both enforced by unique indexes in the
// schema, not just application checks.
type Quote struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RFQID                 uuid.UUID       `gorm:"column:rfq_id;type:uuid;not null;uniqueIndex:idx_quotes_rfq_supplier"`
	SupplierID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_quotes_rfq_supplier"`
	Price                 decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	BatchQuantity         int             `gorm:"not null"`
	DeliveryTimeline      string          `gorm:"not null"`
	MaterialSpecification *string
	Certifications        *string
	Status                string `gorm:"type:varchar(20);not null;default:'submitted'"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	RFQ      *RFQ  `gorm:"foreignKey:RFQID"`
	Supplier *User `gorm:"foreignKey:SupplierID"`
}

func (Quote) TableName() string { return "quotes" }

// Decided reports whether the quote has reached a terminal status.
func (q *Quote) Decided() bool { return q.Status != QuoteStatusSubmitted }
