package model

import (
	"time"

	"github.com/google/uuid"
)

// RFQMessage is one entry in the append-only discussion thread of an RFQ.
// Messages are never edited or deleted.
type RFQMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RFQID     uuid.UUID `gorm:"column:rfq_id;type:uuid;not null;index"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Message   string    `gorm:"not null"`
	CreatedAt time.Time

	Sender *User `gorm:"foreignKey:SenderID"`
}

func (RFQMessage) TableName() string { return "rfq_messages" }
