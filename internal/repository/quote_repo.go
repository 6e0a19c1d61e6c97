package repository

import (
	"context"

	"axonet/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuoteRepository interface {
	Create(ctx context.Context, q *model.Quote) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Quote, error)
	// FindByIDForUpdate loads the quote under a row lock inside tx; the
	// second of two concurrent acceptance calls blocks here until the
	// first commits.
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Quote, error)
	ListByRFQ(ctx context.Context, rfqID uuid.UUID) ([]model.Quote, error)
	ExistsForSupplier(ctx context.Context, rfqID, supplierID uuid.UUID) (bool, error)
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
	RejectSiblingsTx(tx *gorm.DB, rfqID, acceptedID uuid.UUID) error
	DB() *gorm.DB
}

type quoteRepo struct{ db *gorm.DB }

func NewQuoteRepository(db *gorm.DB) QuoteRepository { return &quoteRepo{db: db} }

func (r *quoteRepo) DB() *gorm.DB { return r.db }

func (r *quoteRepo) Create(ctx context.Context, q *model.Quote) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quoteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	var q model.Quote
	err := r.db.WithContext(ctx).Preload("Supplier").First(&q, id).Error
	return &q, err
}

func (r *quoteRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Quote, error) {
	var q model.Quote
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&q, id).Error
	return &q, err
}

func (r *quoteRepo) ListByRFQ(ctx context.Context, rfqID uuid.UUID) ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.WithContext(ctx).Preload("Supplier").
		Where("rfq_id = ?", rfqID).
		Order("created_at DESC").
		Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepo) ExistsForSupplier(ctx context.Context, rfqID, supplierID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Quote{}).
		Where("rfq_id = ? AND supplier_id = ?", rfqID, supplierID).
		Count(&n).Error
	return n > 0, err
}

func (r *quoteRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.Quote{}).Where("id = ?", id).Update("status", status).Error
}

// RejectSiblingsTx rejects every other quote on the same RFQ. Quotes on
// other RFQs are never touched.
func (r *quoteRepo) RejectSiblingsTx(tx *gorm.DB, rfqID, acceptedID uuid.UUID) error {
	return tx.Model(&model.Quote{}).
		Where("rfq_id = ? AND id <> ?", rfqID, acceptedID).
		Update("status", model.QuoteStatusRejected).Error
}
