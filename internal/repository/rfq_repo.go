package repository

import (
	"context"

	"axonet/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RFQListRow is an RFQ annotated with query-time aggregates used by the
// listing views. HasQuoted/POIssued are only populated by ListAvailable.
type RFQListRow struct {
	model.RFQ  `gorm:"embedded"`
	QuoteCount int  `gorm:"column:quote_count"`
	HasQuoted  bool `gorm:"column:has_quoted"`
	POIssued   bool `gorm:"column:po_issued"`
}

type RFQRepository interface {
	Create(ctx context.Context, rfq *model.RFQ) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RFQ, error)
	CountQuotes(ctx context.Context, rfqID uuid.UUID) (int64, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]RFQListRow, error)
	ListAvailable(ctx context.Context, supplierID uuid.UUID) ([]RFQListRow, error)
	CloseTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type rfqRepo struct{ db *gorm.DB }

func NewRFQRepository(db *gorm.DB) RFQRepository { return &rfqRepo{db: db} }

func (r *rfqRepo) DB() *gorm.DB { return r.db }

func (r *rfqRepo) Create(ctx context.Context, rfq *model.RFQ) error {
	return r.db.WithContext(ctx).Create(rfq).Error
}

func (r *rfqRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.RFQ, error) {
	var rfq model.RFQ
	err := r.db.WithContext(ctx).First(&rfq, id).Error
	return &rfq, err
}

func (r *rfqRepo) CountQuotes(ctx context.Context, rfqID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Quote{}).Where("rfq_id = ?", rfqID).Count(&n).Error
	return n, err
}

func (r *rfqRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]RFQListRow, error) {
	var rows []RFQListRow
	err := r.db.WithContext(ctx).Model(&model.RFQ{}).
		Select(`rfqs.*,
			(SELECT COUNT(*) FROM quotes q WHERE q.rfq_id = rfqs.id) AS quote_count`).
		Where("rfqs.buyer_id = ?", buyerID).
		Order("rfqs.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListAvailable returns every non-draft RFQ annotated with whether the given
// supplier has already quoted and whether a PO exists for the RFQ.
func (r *rfqRepo) ListAvailable(ctx context.Context, supplierID uuid.UUID) ([]RFQListRow, error) {
	var rows []RFQListRow
	err := r.db.WithContext(ctx).Model(&model.RFQ{}).
		Select(`rfqs.*,
			(SELECT COUNT(*) FROM quotes q WHERE q.rfq_id = rfqs.id) AS quote_count,
			EXISTS (SELECT 1 FROM quotes q WHERE q.rfq_id = rfqs.id AND q.supplier_id = ?) AS has_quoted,
			EXISTS (SELECT 1 FROM purchase_orders po WHERE po.rfq_id = rfqs.id) AS po_issued`,
			supplierID).
		Where("rfqs.status <> ?", model.RFQStatusDraft).
		Order("rfqs.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *rfqRepo) CloseTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.RFQ{}).Where("id = ?", id).
		Update("status", model.RFQStatusClosed).Error
}
