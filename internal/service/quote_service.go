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

type QuoteService interface {
	Submit(ctx context.Context, actor Actor, req dto.SubmitQuoteRequest) (*dto.QuoteResponse, error)
	ListForRFQ(ctx context.Context, actor Actor, rfqID uuid.UUID) ([]dto.QuoteResponse, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*dto.QuoteResponse, error)
	Accept(ctx context.Context, actor Actor, req dto.AcceptQuoteRequest) (*dto.PurchaseOrderResponse, error)
}

type quoteService struct {
	repo    repository.QuoteRepository
	rfqRepo repository.RFQRepository
	poRepo  repository.PurchaseOrderRepository
}

func NewQuoteService(
	repo repository.QuoteRepository,
	rfqRepo repository.RFQRepository,
	poRepo repository.PurchaseOrderRepository,
) QuoteService {
	return &quoteService{repo: repo, rfqRepo: rfqRepo, poRepo: poRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *quoteService) Submit(ctx context.Context, actor Actor, req dto.SubmitQuoteRequest) (*dto.QuoteResponse, error) {
	rfqID, err := uuid.Parse(req.RFQID)
	if err != nil {
		return nil, Invalid("rfq_id is not a valid uuid")
	}
	if !req.Price.IsPositive() {
		return nil, Invalid("price must be positive")
	}
	if req.BatchQuantity <= 0 {
		return nil, Invalid("batch_quantity must be positive")
	}

	rfq, err := s.rfqRepo.FindByID(ctx, rfqID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("rfq not found")
		}
		return nil, err
	}
	switch rfq.Status {
	case model.RFQStatusDraft:
		return nil, InvalidState("rfq is not open for quoting")
	case model.RFQStatusClosed:
		return nil, InvalidState("rfq is closed")
	}
	if rfq.BuyerID == actor.ID {
		return nil, Forbidden("cannot quote your own rfq")
	}

	// Pre-flight duplicate check; the unique index on (rfq_id, supplier_id)
	// is the backstop for concurrent submissions.
	exists, err := s.repo.ExistsForSupplier(ctx, rfqID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Conflict("a quote for this rfq already exists")
	}

	quote := &model.Quote{
		RFQID:                 rfqID,
		SupplierID:            actor.ID,
		Price:                 req.Price,
		BatchQuantity:         req.BatchQuantity,
		DeliveryTimeline:      req.DeliveryTimeline,
		MaterialSpecification: req.MaterialSpecification,
		Certifications:        req.Certifications,
		Status:                model.QuoteStatusSubmitted,
	}
	if err := s.repo.Create(ctx, quote); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("a quote for this rfq already exists")
		}
		return nil, err
	}
	resp := quoteToResponse(quote)
	return &resp, nil
}

func (s *quoteService) ListForRFQ(ctx context.Context, actor Actor, rfqID uuid.UUID) ([]dto.QuoteResponse, error) {
	rfq, err := s.rfqRepo.FindByID(ctx, rfqID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("rfq not found")
		}
		return nil, err
	}
	if actor.Role != model.RoleAdmin && rfq.BuyerID != actor.ID {
		return nil, Forbidden("you do not own this rfq")
	}

	quotes, err := s.repo.ListByRFQ(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuoteResponse, len(quotes))
	for i := range quotes {
		resp[i] = quoteToResponse(&quotes[i])
	}
	return resp, nil
}

func (s *quoteService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*dto.QuoteResponse, error) {
	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("quote not found")
		}
		return nil, err
	}

	// Visible to the submitting supplier, the owning buyer, and admin.
	if actor.Role != model.RoleAdmin && quote.SupplierID != actor.ID {
		rfq, err := s.rfqRepo.FindByID(ctx, quote.RFQID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, Forbidden("not a party to this quote")
			}
			return nil, err
		}
		if rfq.BuyerID != actor.ID {
			return nil, Forbidden("not a party to this quote")
		}
	}

	resp := quoteToResponse(quote)
	return &resp, nil
}

// Accept runs the acceptance transaction: accept one quote, reject its
// siblings, close the RFQ and issue the PO — all or nothing. The target
// quote row is locked before the status check so concurrent acceptance
// calls serialize; the unique index on purchase_orders.quote_id is the
// backstop should locking ever be unavailable.
func (s *quoteService) Accept(ctx context.Context, actor Actor, req dto.AcceptQuoteRequest) (*dto.PurchaseOrderResponse, error) {
	rfqID, err := uuid.Parse(req.RFQID)
	if err != nil {
		return nil, Invalid("rfq_id is not a valid uuid")
	}
	quoteID, err := uuid.Parse(req.QuoteID)
	if err != nil {
		return nil, Invalid("quote_id is not a valid uuid")
	}

	rfq, err := s.rfqRepo.FindByID(ctx, rfqID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("rfq not found")
		}
		return nil, err
	}
	if rfq.BuyerID != actor.ID {
		return nil, Forbidden("you do not own this rfq")
	}
	if rfq.Status == model.RFQStatusClosed {
		return nil, InvalidState("rfq is already closed")
	}

	var po model.PurchaseOrder
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		quote, err := s.repo.FindByIDForUpdate(ctx, tx, quoteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("quote not found")
			}
			return err
		}
		if quote.RFQID != rfqID {
			return NotFound("quote does not belong to this rfq")
		}
		// Second concurrent caller lands here after the first commit and
		// observes the decided status.
		if quote.Status != model.QuoteStatusSubmitted {
			return InvalidState("quote is already " + quote.Status)
		}

		if err := s.repo.UpdateStatusTx(tx, quote.ID, model.QuoteStatusAccepted); err != nil {
			return err
		}
		if err := s.repo.RejectSiblingsTx(tx, rfqID, quote.ID); err != nil {
			return err
		}
		if err := s.rfqRepo.CloseTx(tx, rfqID); err != nil {
			return err
		}

		// buyer_id comes from the resolved actor, supplier_id and the
		// commercial terms from the locked quote — never from the request.
		po = model.PurchaseOrder{
			RFQID:      rfqID,
			QuoteID:    quote.ID,
			BuyerID:    actor.ID,
			SupplierID: quote.SupplierID,
			Quantity:   rfq.TotalQuantity,
			Price:      quote.Price,
			Status:     model.POStatusIssued,
		}
		if err := s.poRepo.CreateTx(tx, &po); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return Conflict("a purchase order already exists for this quote")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.PurchaseOrderResponse{
		ID:         po.ID.String(),
		RFQID:      po.RFQID.String(),
		QuoteID:    po.QuoteID.String(),
		BuyerID:    po.BuyerID.String(),
		SupplierID: po.SupplierID.String(),
		Quantity:   po.Quantity,
		Price:      po.Price,
		Status:     po.Status,
		CreatedAt:  po.CreatedAt.Format(time.RFC3339),
		PartName:   rfq.PartName,
	}, nil
}

func quoteToResponse(q *model.Quote) dto.QuoteResponse {
	resp := dto.QuoteResponse{
		ID:                    q.ID.String(),
		RFQID:                 q.RFQID.String(),
		SupplierID:            q.SupplierID.String(),
		Price:                 q.Price,
		BatchQuantity:         q.BatchQuantity,
		DeliveryTimeline:      q.DeliveryTimeline,
		MaterialSpecification: q.MaterialSpecification,
		Certifications:        q.Certifications,
		Status:                q.Status,
		CreatedAt:             q.CreatedAt.Format(time.RFC3339),
	}
	if q.Supplier != nil {
		resp.SupplierName = q.Supplier.Name
		resp.SupplierEmail = q.Supplier.Email
	}
	return resp
}
