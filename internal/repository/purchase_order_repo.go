package repository

import (
	"context"

	"axonet/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	// CreateTx inserts the PO inside the acceptance transaction. The unique
	// index on quote_id makes a second insert for the same quote fail.
	CreateTx(tx *gorm.DB, po *model.PurchaseOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]model.PurchaseOrder, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]model.PurchaseOrder, error)
}

type poRepo struct{ db *gorm.DB }

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository { return &poRepo{db: db} }

func (r *poRepo) CreateTx(tx *gorm.DB, po *model.PurchaseOrder) error {
	return tx.Create(po).Error
}

func (r *poRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("RFQ").Preload("Quote").Preload("Buyer").Preload("Supplier").
		First(&po, id).Error
	return &po, err
}

func (r *poRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]model.PurchaseOrder, error) {
	var pos []model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("RFQ").Preload("Supplier").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&pos).Error
	return pos, err
}

func (r *poRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]model.PurchaseOrder, error) {
	var pos []model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("RFQ").Preload("Buyer").
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&pos).Error
	return pos, err
}
