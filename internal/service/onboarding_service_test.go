package service_test

import (
	"context"
	"testing"

	"axonet/internal/dto"
	"axonet/internal/model"
	"axonet/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildOnboardingSvc() (service.OnboardingService, *stubNetworkRepo, *stubUserRepo, *stubNotifier) {
	netRepo := newStubNetworkRepo()
	userRepo := newStubUserRepo()
	notifier := &stubNotifier{}
	svc := service.NewOnboardingService(netRepo, userRepo, notifier, "https://app.axo.example/login")
	return svc, netRepo, userRepo, notifier
}

func adminActor() service.Actor {
	return service.Actor{ID: uuid.New(), Email: "admin@axo.example", Role: model.RoleAdmin}
}

func sampleSubmission(email string) *dto.SubmitNetworkRequest {
	return &dto.SubmitNetworkRequest{
		CompanyName:            "Volt Dynamics GmbH",
		RegisteredAddress:      "Industriestr. 12",
		CityState:              "Stuttgart, BW",
		ContactName:            "Petra Lang",
		ContactRole:            "Head of Procurement",
		Email:                  email,
		Phone:                  "+49 711 555 0101",
		WhatYouDo:              []string{"Design", "Assembly"},
		PrimaryProduct:         "Battery modules",
		KeyComponents:          "Cells, busbars",
		ManufacturingLocations: "Stuttgart",
		MonthlyCapacity:        "10k units",
		RoleInEV:               "OEMs",
		WhyJoin:                "Looking for qualified suppliers in the network",
	}
}

func TestSubmitRequest_NormalizesAndStartsPending(t *testing.T) {
	svc, netRepo, _, _ := buildOnboardingSvc()

	resp, err := svc.Submit(context.Background(), sampleSubmission("Petra.Lang@VoltDynamics.example"))
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusPending, resp.Status)
	assert.Equal(t, "petra.lang@voltdynamics.example", resp.Email)
	assert.Equal(t, []string{"Design", "Assembly"}, resp.WhatYouDo)
	assert.Len(t, netRepo.requests, 1)
}

func TestSubmitRequest_UnknownRoleRejected(t *testing.T) {
	svc, _, _, _ := buildOnboardingSvc()
	sub := sampleSubmission("p@v.example")
	sub.RoleInEV = "Distributor"

	_, err := svc.Submit(context.Background(), sub)
	assert.Equal(t, service.KindValidation, service.KindOf(err))
}

func TestApproveRequest_ProvisionsAccount(t *testing.T) {
	svc, _, userRepo, notifier := buildOnboardingSvc()
	admin := adminActor()

	sub, err := svc.Submit(context.Background(), sampleSubmission("petra.lang@voltdynamics.example"))
	require.NoError(t, err)
	id := uuid.MustParse(sub.ID)

	result, err := svc.Approve(context.Background(), admin, id, "checked references")
	require.NoError(t, err)
	assert.False(t, result.AlreadyProvisioned)
	assert.Equal(t, "petra.lang", result.Username)
	assert.Equal(t, model.RoleBuyer, result.Role) // OEMs maps to buyer

	user, err := userRepo.FindByEmail(context.Background(), "petra.lang@voltdynamics.example")
	require.NoError(t, err)
	assert.True(t, user.ForcePasswordReset)
	assert.True(t, user.Active)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "petra.lang@voltdynamics.example", notifier.sent[0])

	// Stored hash is bcrypt, never the raw temp password.
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("petra.lang")))
}

func TestApproveRequest_IdempotentPerEmail(t *testing.T) {
	svc, _, userRepo, notifier := buildOnboardingSvc()
	admin := adminActor()

	first, err := svc.Submit(context.Background(), sampleSubmission("petra.lang@voltdynamics.example"))
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), sampleSubmission("petra.lang@voltdynamics.example"))
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), admin, uuid.MustParse(first.ID), "")
	require.NoError(t, err)

	result, err := svc.Approve(context.Background(), admin, uuid.MustParse(second.ID), "")
	require.NoError(t, err)
	assert.True(t, result.AlreadyProvisioned)

	// One account, one credential email.
	assert.Len(t, userRepo.users, 1)
	assert.Len(t, notifier.sent, 1)
}

func TestApproveRequest_AfterRejectInvalid(t *testing.T) {
	svc, _, _, _ := buildOnboardingSvc()
	admin := adminActor()

	sub, err := svc.Submit(context.Background(), sampleSubmission("p@v.example"))
	require.NoError(t, err)
	id := uuid.MustParse(sub.ID)

	_, err = svc.Reject(context.Background(), admin, id, "incomplete information")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), admin, id, "")
	assert.Equal(t, service.KindInvalidState, service.KindOf(err))
}

func TestRejectRequest_AfterApproveInvalid(t *testing.T) {
	svc, _, _, _ := buildOnboardingSvc()
	admin := adminActor()

	sub, err := svc.Submit(context.Background(), sampleSubmission("p@v.example"))
	require.NoError(t, err)
	id := uuid.MustParse(sub.ID)

	_, err = svc.Approve(context.Background(), admin, id, "")
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), admin, id, "")
	assert.Equal(t, service.KindInvalidState, service.KindOf(err))
}

func TestRejectRequest_RecordsAuditFields(t *testing.T) {
	svc, netRepo, _, _ := buildOnboardingSvc()
	admin := adminActor()

	sub, err := svc.Submit(context.Background(), sampleSubmission("p@v.example"))
	require.NoError(t, err)
	id := uuid.MustParse(sub.ID)

	resp, err := svc.Reject(context.Background(), admin, id, "capacity too low")
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusRejected, resp.Status)
	assert.Equal(t, admin.Email, resp.ProcessedBy)
	assert.Equal(t, "capacity too low", resp.AdminNotes)
	assert.NotEmpty(t, resp.RejectedAt)

	assert.Equal(t, model.RequestStatusRejected, netRepo.requests[id].Status)
}

func TestListRequests_StatusFilter(t *testing.T) {
	svc, _, _, _ := buildOnboardingSvc()
	admin := adminActor()

	a, err := svc.Submit(context.Background(), sampleSubmission("a@v.example"))
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), sampleSubmission("b@v.example"))
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), admin, uuid.MustParse(a.ID), "")
	require.NoError(t, err)

	pending, err := svc.List(context.Background(), model.RequestStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = svc.List(context.Background(), "archived")
	assert.Equal(t, service.KindValidation, service.KindOf(err))
}
