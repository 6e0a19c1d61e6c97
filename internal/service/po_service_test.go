package service_test

import (
	"context"
	"testing"

	"axonet/internal/model"
	"axonet/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPO(poRepo *stubPORepo, buyerID, supplierID uuid.UUID) *model.PurchaseOrder {
	po := &model.PurchaseOrder{
		ID:         uuid.New(),
		RFQID:      uuid.New(),
		QuoteID:    uuid.New(),
		BuyerID:    buyerID,
		SupplierID: supplierID,
		Quantity:   5000,
		Price:      decimal.NewFromFloat(12.50),
		Status:     model.POStatusIssued,
	}
	poRepo.orders[po.ID] = po
	return po
}

func TestListPurchaseOrders_PerSide(t *testing.T) {
	poRepo := newStubPORepo()
	svc := service.NewPurchaseOrderService(poRepo)

	buyer := buyerActor()
	supplier := supplierActor()
	seedPO(poRepo, buyer.ID, supplier.ID)
	seedPO(poRepo, uuid.New(), supplier.ID)

	asBuyer, err := svc.ListForBuyer(context.Background(), buyer)
	require.NoError(t, err)
	assert.Len(t, asBuyer, 1)

	asSupplier, err := svc.ListForSupplier(context.Background(), supplier)
	require.NoError(t, err)
	assert.Len(t, asSupplier, 2)
}

func TestGetPurchaseOrder_PartiesOnly(t *testing.T) {
	poRepo := newStubPORepo()
	svc := service.NewPurchaseOrderService(poRepo)

	buyer := buyerActor()
	supplier := supplierActor()
	po := seedPO(poRepo, buyer.ID, supplier.ID)

	_, err := svc.Get(context.Background(), buyer, po.ID)
	assert.NoError(t, err)
	_, err = svc.Get(context.Background(), supplier, po.ID)
	assert.NoError(t, err)

	admin := service.Actor{ID: uuid.New(), Role: model.RoleAdmin}
	_, err = svc.Get(context.Background(), admin, po.ID)
	assert.NoError(t, err)

	stranger := service.Actor{ID: uuid.New(), Role: model.RoleBuyer}
	_, err = svc.Get(context.Background(), stranger, po.ID)
	assert.Equal(t, service.KindForbidden, service.KindOf(err))
}

func TestGetPurchaseOrder_Missing(t *testing.T) {
	svc := service.NewPurchaseOrderService(newStubPORepo())

	_, err := svc.Get(context.Background(), buyerActor(), uuid.New())
	assert.Equal(t, service.KindNotFound, service.KindOf(err))
}
