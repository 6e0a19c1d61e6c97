package service

import (
	"context"
	"errors"
	"time"

	"axonet/internal/dto"
	"axonet/internal/model"
	"axonet/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseOrderService interface {
	ListForBuyer(ctx context.Context, actor Actor) ([]dto.PurchaseOrderResponse, error)
	ListForSupplier(ctx context.Context, actor Actor) ([]dto.PurchaseOrderResponse, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*dto.PurchaseOrderResponse, error)
}

type poService struct {
	repo repository.PurchaseOrderRepository
}

func NewPurchaseOrderService(repo repository.PurchaseOrderRepository) PurchaseOrderService {
	return &poService{repo: repo}
}

func (s *poService) ListForBuyer(ctx context.Context, actor Actor) ([]dto.PurchaseOrderResponse, error) {
	pos, err := s.repo.ListByBuyer(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PurchaseOrderResponse, len(pos))
	for i := range pos {
		resp[i] = poToResponse(&pos[i])
	}
	return resp, nil
}

func (s *poService) ListForSupplier(ctx context.Context, actor Actor) ([]dto.PurchaseOrderResponse, error) {
	pos, err := s.repo.ListBySupplier(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PurchaseOrderResponse, len(pos))
	for i := range pos {
		resp[i] = poToResponse(&pos[i])
	}
	return resp, nil
}

func (s *poService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*dto.PurchaseOrderResponse, error) {
	po, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("purchase order not found")
		}
		return nil, err
	}
	if actor.Role != model.RoleAdmin && po.BuyerID != actor.ID && po.SupplierID != actor.ID {
		return nil, Forbidden("not a party to this purchase order")
	}
	resp := poToResponse(po)
	return &resp, nil
}

func poToResponse(po *model.PurchaseOrder) dto.PurchaseOrderResponse {
	resp := dto.PurchaseOrderResponse{
		ID:         po.ID.String(),
		RFQID:      po.RFQID.String(),
		QuoteID:    po.QuoteID.String(),
		BuyerID:    po.BuyerID.String(),
		SupplierID: po.SupplierID.String(),
		Quantity:   po.Quantity,
		Price:      po.Price,
		Status:     po.Status,
		CreatedAt:  po.CreatedAt.Format(time.RFC3339),
	}
	if po.RFQ != nil {
		resp.PartName = po.RFQ.PartName
		resp.TotalQuantity = po.RFQ.TotalQuantity
	}
	if po.Buyer != nil {
		resp.BuyerName = po.Buyer.Name
		resp.BuyerEmail = po.Buyer.Email
	}
	if po.Supplier != nil {
		resp.SupplierName = po.Supplier.Name
		resp.SupplierEmail = po.Supplier.Email
	}
	return resp
}
