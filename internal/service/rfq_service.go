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

// Actor is the identity resolved from the caller's credential. Every
// ownership check and every actor-id stamp in the service layer uses this
// struct — request bodies are never trusted for identity.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type RFQService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateRFQRequest) (*dto.RFQResponse, error)
	ListMine(ctx context.Context, actor Actor) ([]dto.RFQResponse, error)
	ListAvailable(ctx context.Context, actor Actor) ([]dto.AvailableRFQ, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*dto.RFQResponse, error)
}

type rfqService struct {
	repo repository.RFQRepository
}

func NewRFQService(repo repository.RFQRepository) RFQService {
	return &rfqService{repo: repo}
}

// draftTimelinePlaceholder fills delivery_timeline on drafts created without
// one; the buyer sets the real value before activating.
const draftTimelinePlaceholder = "TBD"

func (s *rfqService) Create(ctx context.Context, actor Actor, req dto.CreateRFQRequest) (*dto.RFQResponse, error) {
	status := req.Status
	if status == "" {
		status = model.RFQStatusDraft
	}
	// Only draft/active are legal initial states; the dto validator already
	// rejects anything else, this guards non-HTTP callers.
	if status != model.RFQStatusDraft && status != model.RFQStatusActive {
		return nil, Invalid("status must be draft or active")
	}

	timeline := req.DeliveryTimeline
	if timeline == "" {
		if status != model.RFQStatusDraft {
			return nil, Invalid("delivery_timeline is required for active RFQs")
		}
		timeline = draftTimelinePlaceholder
	}
	if req.TargetPrice != nil && !req.TargetPrice.IsPositive() {
		return nil, Invalid("target_price must be positive")
	}

	rfq := &model.RFQ{
		BuyerID:               actor.ID,
		PartName:              req.PartName,
		PartID:                req.PartID,
		TotalQuantity:         req.TotalQuantity,
		BatchQuantity:         req.BatchQuantity,
		TargetPrice:           req.TargetPrice,
		DeliveryTimeline:      timeline,
		MaterialSpecification: req.MaterialSpecification,
		PPAPLevel:             req.PPAPLevel,
		Status:                status,
	}
	if err := s.repo.Create(ctx, rfq); err != nil {
		return nil, err
	}
	resp := rfqToResponse(rfq, 0)
	return &resp, nil
}

func (s *rfqService) ListMine(ctx context.Context, actor Actor) ([]dto.RFQResponse, error) {
	rows, err := s.repo.ListByBuyer(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RFQResponse, len(rows))
	for i, row := range rows {
		resp[i] = rfqToResponse(&row.RFQ, row.QuoteCount)
	}
	return resp, nil
}

func (s *rfqService) ListAvailable(ctx context.Context, actor Actor) ([]dto.AvailableRFQ, error) {
	rows, err := s.repo.ListAvailable(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AvailableRFQ, len(rows))
	for i, row := range rows {
		resp[i] = dto.AvailableRFQ{
			RFQResponse: rfqToResponse(&row.RFQ, row.QuoteCount),
			HasQuoted:   row.HasQuoted,
			POIssued:    row.POIssued,
		}
	}
	return resp, nil
}

func (s *rfqService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*dto.RFQResponse, error) {
	rfq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("rfq not found")
		}
		return nil, err
	}
	if err := canViewRFQ(actor, rfq); err != nil {
		return nil, err
	}
	count, err := s.repo.CountQuotes(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := rfqToResponse(rfq, int(count))
	return &resp, nil
}

// canViewRFQ implements the shared visibility rule: owning buyer and admin
// always see the RFQ; suppliers see any non-draft RFQ. Drafts belonging to
// someone else read as absent rather than forbidden so their existence
// never leaks to suppliers.
func canViewRFQ(actor Actor, rfq *model.RFQ) error {
	if actor.Role == model.RoleAdmin || rfq.BuyerID == actor.ID {
		return nil
	}
	if model.CanSupply(actor.Role) {
		if rfq.Status == model.RFQStatusDraft {
			return NotFound("rfq not found")
		}
		return nil
	}
	return Forbidden("you do not own this rfq")
}

// displayStatus derives the observable label: an active RFQ with at least
// one quote reads as "quoted". The label is computed per read and never
// written back.
func displayStatus(status string, quoteCount int) string {
	if status == model.RFQStatusActive && quoteCount > 0 {
		return "quoted"
	}
	return status
}

func rfqToResponse(rfq *model.RFQ, quoteCount int) dto.RFQResponse {
	return dto.RFQResponse{
		ID:                    rfq.ID.String(),
		BuyerID:               rfq.BuyerID.String(),
		PartName:              rfq.PartName,
		PartID:                rfq.PartID,
		TotalQuantity:         rfq.TotalQuantity,
		BatchQuantity:         rfq.BatchQuantity,
		TargetPrice:           rfq.TargetPrice,
		DeliveryTimeline:      rfq.DeliveryTimeline,
		MaterialSpecification: rfq.MaterialSpecification,
		PPAPLevel:             rfq.PPAPLevel,
		Status:                displayStatus(rfq.Status, quoteCount),
		QuoteCount:            quoteCount,
		CreatedAt:             rfq.CreatedAt.Format(time.RFC3339),
	}
}
