package repository

import (
	"context"

	"axonet/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RFQMessageRepository interface {
	Create(ctx context.Context, m *model.RFQMessage) error
	ListByRFQ(ctx context.Context, rfqID uuid.UUID) ([]model.RFQMessage, error)
}

type rfqMessageRepo struct{ db *gorm.DB }

func NewRFQMessageRepository(db *gorm.DB) RFQMessageRepository { return &rfqMessageRepo{db: db} }

func (r *rfqMessageRepo) Create(ctx context.Context, m *model.RFQMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByRFQ returns the thread in chronological order.
func (r *rfqMessageRepo) ListByRFQ(ctx context.Context, rfqID uuid.UUID) ([]model.RFQMessage, error) {
	var msgs []model.RFQMessage
	err := r.db.WithContext(ctx).Preload("Sender").
		Where("rfq_id = ?", rfqID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}
