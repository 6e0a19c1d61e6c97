package model

import (
	"time"

	"github.com/google/uuid"
)

// RFQFile is an append-only attachment descriptor scoped to an RFQ.
// The system stores and returns descriptors; it never inspects contents.
type RFQFile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RFQID      uuid.UUID `gorm:"column:rfq_id;type:uuid;not null;index"`
	UploaderID uuid.UUID `gorm:"type:uuid;not null"`
	FileName   string    `gorm:"not null"`
	FileType   string    `gorm:"not null"`
	FileURL    string    `gorm:"not null"`
	CreatedAt  time.Time
}

func (RFQFile) TableName() string { return "rfq_files" }
