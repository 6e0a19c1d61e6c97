package repository

import (
	"context"

	"axonet/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NetworkRequestRepository interface {
	Create(ctx context.Context, req *model.NetworkAccessRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.NetworkAccessRequest, error)
	List(ctx context.Context, status string) ([]model.NetworkAccessRequest, error)
	Update(ctx context.Context, req *model.NetworkAccessRequest) error
}

type networkRequestRepo struct{ db *gorm.DB }

func NewNetworkRequestRepository(db *gorm.DB) NetworkRequestRepository {
	return &networkRequestRepo{db: db}
}

func (r *networkRequestRepo) Create(ctx context.Context, req *model.NetworkAccessRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *networkRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.NetworkAccessRequest, error) {
	var req model.NetworkAccessRequest
	err := r.db.WithContext(ctx).First(&req, id).Error
	return &req, err
}

func (r *networkRequestRepo) List(ctx context.Context, status string) ([]model.NetworkAccessRequest, error) {
	var reqs []model.NetworkAccessRequest
	q := r.db.WithContext(ctx).Order("submitted_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&reqs).Error
	return reqs, err
}

func (r *networkRequestRepo) Update(ctx context.Context, req *model.NetworkAccessRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
