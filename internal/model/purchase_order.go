package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// POStatusIssued is the only status a purchase order carries today.
// Fulfilment transitions live outside this system.
const POStatusIssued = "issued"

// PurchaseOrder is the binding order created when a buyer accepts a quote.
// Exactly one PO may ever reference a quote (unique index on quote_id) —
// this is the backstop against concurrent acceptance races. Rows are
// immutable after creation.
type PurchaseOrder struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RFQID      uuid.UUID       `gorm:"column:rfq_id;type:uuid;not null;index"`
	QuoteID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	BuyerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status     string          `gorm:"type:varchar(20);not null;default:'issued'"`
	CreatedAt  time.Time

	RFQ      *RFQ   `gorm:"foreignKey:RFQID"`
	Quote    *Quote `gorm:"foreignKey:QuoteID"`
	Buyer    *User  `gorm:"foreignKey:BuyerID"`
	Supplier *User  `gorm:"foreignKey:SupplierID"`
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }
