package repository

import (
	"context"

	"axonet/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RFQFileRepository interface {
	Create(ctx context.Context, f *model.RFQFile) error
	ListByRFQ(ctx context.Context, rfqID uuid.UUID) ([]model.RFQFile, error)
}

type rfqFileRepo struct{ db *gorm.DB }

func NewRFQFileRepository(db *gorm.DB) RFQFileRepository { return &rfqFileRepo{db: db} }

func (r *rfqFileRepo) Create(ctx context.Context, f *model.RFQFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *rfqFileRepo) ListByRFQ(ctx context.Context, rfqID uuid.UUID) ([]model.RFQFile, error) {
	var files []model.RFQFile
	err := r.db.WithContext(ctx).
		Where("rfq_id = ?", rfqID).
		Order("created_at DESC").
		Find(&files).Error
	return files, err
}
