package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"axonet/internal/dto"
	"axonet/internal/model"
	"axonet/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CredentialNotifier delivers freshly provisioned credentials. Delivery is
// best-effort: approval succeeds even when the notification cannot be queued.
type CredentialNotifier interface {
	NotifyCredentials(ctx context.Context, email, name, username, tempPassword, loginURL string) error
}

type OnboardingService interface {
	Submit(ctx context.Context, req *dto.SubmitNetworkRequest) (*dto.NetworkRequestResponse, error)
	List(ctx context.Context, status string) ([]dto.NetworkRequestResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.NetworkRequestResponse, error)
	Approve(ctx context.Context, actor Actor, id uuid.UUID, notes string) (*dto.ApprovalResult, error)
	Reject(ctx context.Context, actor Actor, id uuid.UUID, notes string) (*dto.NetworkRequestResponse, error)
}

type onboardingService struct {
	repo     repository.NetworkRequestRepository
	userRepo repository.UserRepository
	notifier CredentialNotifier
	loginURL string
}

func NewOnboardingService(repo repository.NetworkRequestRepository, userRepo repository.UserRepository, notifier CredentialNotifier, loginURL string) OnboardingService {
	return &onboardingService{repo: repo, userRepo: userRepo, notifier: notifier, loginURL: loginURL}
}

func (s *onboardingService) Submit(ctx context.Context, req *dto.SubmitNetworkRequest) (*dto.NetworkRequestResponse, error) {
	role := model.NormalizeRole(req.RoleInEV)
	if role == "" || role == model.RoleAdmin {
		return nil, Invalid("role_in_ev must be one of OEMs, Suppliers, Both")
	}

	nr := &model.NetworkAccessRequest{
		CompanyName:            strings.TrimSpace(req.CompanyName),
		Website:                req.Website,
		RegisteredAddress:      req.RegisteredAddress,
		CityState:              req.CityState,
		ContactName:            strings.TrimSpace(req.ContactName),
		ContactRole:            req.ContactRole,
		Email:                  strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:                  req.Phone,
		WhatYouDo:              strings.Join(req.WhatYouDo, ","),
		PrimaryProduct:         req.PrimaryProduct,
		KeyComponents:          req.KeyComponents,
		ManufacturingLocations: req.ManufacturingLocations,
		MonthlyCapacity:        req.MonthlyCapacity,
		Certifications:         req.Certifications,
		RoleInEV:               req.RoleInEV,
		WhyJoin:                req.WhyJoin,
		Status:                 model.RequestStatusPending,
		SubmittedAt:            time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, nr); err != nil {
		return nil, err
	}
	resp := requestToResponse(nr)
	return &resp, nil
}

func (s *onboardingService) List(ctx context.Context, status string) ([]dto.NetworkRequestResponse, error) {
	if status != "" {
		switch status {
		case model.RequestStatusPending, model.RequestStatusApproved, model.RequestStatusRejected:
		default:
			return nil, Invalid("unknown status filter")
		}
	}
	reqs, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NetworkRequestResponse, len(reqs))
	for i := range reqs {
		resp[i] = requestToResponse(&reqs[i])
	}
	return resp, nil
}

func (s *onboardingService) Get(ctx context.Context, id uuid.UUID) (*dto.NetworkRequestResponse, error) {
	nr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("network request not found")
		}
		return nil, err
	}
	resp := requestToResponse(nr)
	return &resp, nil
}

// Approve provisions an account for the request's email. The operation is
// idempotent per email: when an account with that email already exists the
// request is marked approved and linked, and no credentials are generated.
func (s *onboardingService) Approve(ctx context.Context, actor Actor, id uuid.UUID, notes string) (*dto.ApprovalResult, error) {
	nr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("network request not found")
		}
		return nil, err
	}
	if nr.Status == model.RequestStatusRejected {
		return nil, InvalidState("request has already been rejected")
	}

	existing, err := s.userRepo.FindByEmail(ctx, nr.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		// Account already provisioned for this email. Mark approved and
		// link without touching credentials.
		s.markApproved(nr, actor, notes, existing.ID)
		if uerr := s.repo.Update(ctx, nr); uerr != nil {
			return nil, uerr
		}
		return &dto.ApprovalResult{
			RequestID:          nr.ID.String(),
			UserID:             existing.ID.String(),
			Username:           existing.Username,
			Email:              existing.Email,
			Role:               existing.Role,
			AlreadyProvisioned: true,
		}, nil
	}

	role := model.NormalizeRole(nr.RoleInEV)
	if role == "" {
		role = model.RoleSupplier
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), 12)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		NetworkRequestID:   &nr.ID,
		Username:           usernameFromEmail(nr.Email),
		Email:              nr.Email,
		PasswordHash:       string(hash),
		Name:               nr.ContactName,
		Company:            nr.CompanyName,
		Role:               role,
		ForcePasswordReset: true,
		Active:             true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("an account for this email already exists")
		}
		return nil, err
	}

	s.markApproved(nr, actor, notes, user.ID)
	if err := s.repo.Update(ctx, nr); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		// Fire and forget: a delivery failure never rolls back approval.
		_ = s.notifier.NotifyCredentials(ctx, user.Email, user.Name, user.Username, tempPassword, s.loginURL)
	}

	return &dto.ApprovalResult{
		RequestID: nr.ID.String(),
		UserID:    user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		LoginURL:  s.loginURL,
	}, nil
}

func (s *onboardingService) Reject(ctx context.Context, actor Actor, id uuid.UUID, notes string) (*dto.NetworkRequestResponse, error) {
	nr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("network request not found")
		}
		return nil, err
	}
	if nr.Status == model.RequestStatusApproved {
		return nil, InvalidState("request has already been approved")
	}

	now := time.Now().UTC()
	nr.Status = model.RequestStatusRejected
	nr.RejectedAt = &now
	nr.AdminNotes = notes
	nr.ProcessedBy = &actor.Email
	if err := s.repo.Update(ctx, nr); err != nil {
		return nil, err
	}
	resp := requestToResponse(nr)
	return &resp, nil
}

func (s *onboardingService) markApproved(nr *model.NetworkAccessRequest, actor Actor, notes string, userID uuid.UUID) {
	now := time.Now().UTC()
	nr.Status = model.RequestStatusApproved
	nr.ApprovedAt = &now
	nr.AdminNotes = notes
	nr.ProcessedBy = &actor.Email
	nr.UserID = &userID
}

// usernameFromEmail derives the account username from the email local part.
func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

func generateTempPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func requestToResponse(nr *model.NetworkAccessRequest) dto.NetworkRequestResponse {
	resp := dto.NetworkRequestResponse{
		ID:          nr.ID.String(),
		CompanyName: nr.CompanyName,
		ContactName: nr.ContactName,
		Email:       nr.Email,
		Phone:       nr.Phone,
		RoleInEV:    nr.RoleInEV,
		Status:      nr.Status,
		AdminNotes:  nr.AdminNotes,
		SubmittedAt: nr.SubmittedAt.Format(time.RFC3339),
	}
	if nr.WhatYouDo != "" {
		resp.WhatYouDo = strings.Split(nr.WhatYouDo, ",")
	}
	if nr.ProcessedBy != nil {
		resp.ProcessedBy = *nr.ProcessedBy
	}
	if nr.UserID != nil {
		resp.UserID = nr.UserID.String()
	}
	if nr.ApprovedAt != nil {
		resp.ApprovedAt = nr.ApprovedAt.Format(time.RFC3339)
	}
	if nr.RejectedAt != nil {
		resp.RejectedAt = nr.RejectedAt.Format(time.RFC3339)
	}
	return resp
}
