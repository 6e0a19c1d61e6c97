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

// MessageService is the append-only RFQ discussion thread. No business
// rule applies beyond RFQ existence and party visibility.
type MessageService interface {
	Send(ctx context.Context, actor Actor, rfqID uuid.UUID, req dto.SendMessageRequest) (*dto.RFQMessageResponse, error)
	ListForRFQ(ctx context.Context, actor Actor, rfqID uuid.UUID) ([]dto.RFQMessageResponse, error)
}

type messageService struct {
	repo    repository.RFQMessageRepository
	rfqRepo repository.RFQRepository
}

func NewMessageService(repo repository.RFQMessageRepository, rfqRepo repository.RFQRepository) MessageService {
	return &messageService{repo: repo, rfqRepo: rfqRepo}
}

func (s *messageService) Send(ctx context.Context, actor Actor, rfqID uuid.UUID, req dto.SendMessageRequest) (*dto.RFQMessageResponse, error) {
	if err := s.checkAccess(ctx, actor, rfqID); err != nil {
		return nil, err
	}
	msg := &model.RFQMessage{
		RFQID:    rfqID,
		SenderID: actor.ID,
		Message:  req.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	resp := messageToResponse(msg)
	return &resp, nil
}

func (s *messageService) ListForRFQ(ctx context.Context, actor Actor, rfqID uuid.UUID) ([]dto.RFQMessageResponse, error) {
	if err := s.checkAccess(ctx, actor, rfqID); err != nil {
		return nil, err
	}
	msgs, err := s.repo.ListByRFQ(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RFQMessageResponse, len(msgs))
	for i := range msgs {
		resp[i] = messageToResponse(&msgs[i])
	}
	return resp, nil
}

func (s *messageService) checkAccess(ctx context.Context, actor Actor, rfqID uuid.UUID) error {
	rfq, err := s.rfqRepo.FindByID(ctx, rfqID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("rfq not found")
		}
		return err
	}
	return canViewRFQ(actor, rfq)
}

func messageToResponse(m *model.RFQMessage) dto.RFQMessageResponse {
	resp := dto.RFQMessageResponse{
		ID:        m.ID.String(),
		RFQID:     m.RFQID.String(),
		SenderID:  m.SenderID.String(),
		Message:   m.Message,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.Sender != nil {
		resp.SenderName = m.Sender.Name
	}
	return resp
}
