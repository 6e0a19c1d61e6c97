package service_test

// Shared in-memory repository stubs. All stubs return nil from DB() so the
// services run their transactions in unit-test mode.

import (
	"context"

	"axonet/internal/model"
	"axonet/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── RFQ repo stub ─────────────────────────────────────────────────────────────

type stubRFQRepo struct {
	rfqs    map[uuid.UUID]*model.RFQ
	quotes  *stubQuoteRepo // optional, for quote-count aggregates
	pos     *stubPORepo    // optional, for po_issued flags
	findErr error          // when set, FindByID fails with this error
}

func newStubRFQRepo() *stubRFQRepo {
	return &stubRFQRepo{rfqs: make(map[uuid.UUID]*model.RFQ)}
}

func (r *stubRFQRepo) Create(_ context.Context, rfq *model.RFQ) error {
	if rfq.ID == uuid.Nil {
		rfq.ID = uuid.New()
	}
	r.rfqs[rfq.ID] = rfq
	return nil
}

func (r *stubRFQRepo) FindByID(_ context.Context, id uuid.UUID) (*model.RFQ, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	rfq, ok := r.rfqs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rfq, nil
}

func (r *stubRFQRepo) CountQuotes(_ context.Context, rfqID uuid.UUID) (int64, error) {
	if r.quotes == nil {
		return 0, nil
	}
	var n int64
	for _, q := range r.quotes.quotes {
		if q.RFQID == rfqID {
			n++
		}
	}
	return n, nil
}

func (r *stubRFQRepo) ListByBuyer(_ context.Context, buyerID uuid.UUID) ([]repository.RFQListRow, error) {
	var rows []repository.RFQListRow
	for _, rfq := range r.rfqs {
		if rfq.BuyerID != buyerID {
			continue
		}
		n, _ := r.CountQuotes(context.Background(), rfq.ID)
		rows = append(rows, repository.RFQListRow{RFQ: *rfq, QuoteCount: int(n)})
	}
	return rows, nil
}

func (r *stubRFQRepo) ListAvailable(_ context.Context, supplierID uuid.UUID) ([]repository.RFQListRow, error) {
	var rows []repository.RFQListRow
	for _, rfq := range r.rfqs {
		if rfq.Status == model.RFQStatusDraft {
			continue
		}
		row := repository.RFQListRow{RFQ: *rfq}
		if r.quotes != nil {
			for _, q := range r.quotes.quotes {
				if q.RFQID == rfq.ID {
					row.QuoteCount++
					if q.SupplierID == supplierID {
						row.HasQuoted = true
					}
				}
			}
		}
		if r.pos != nil {
			for _, po := range r.pos.orders {
				if po.RFQID == rfq.ID {
					row.POIssued = true
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *stubRFQRepo) CloseTx(_ *gorm.DB, id uuid.UUID) error {
	rfq, ok := r.rfqs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rfq.Status = model.RFQStatusClosed
	return nil
}

func (r *stubRFQRepo) DB() *gorm.DB { return nil }

var _ repository.RFQRepository = (*stubRFQRepo)(nil)

// ── Quote repo stub ───────────────────────────────────────────────────────────

type stubQuoteRepo struct {
	quotes map[uuid.UUID]*model.Quote
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{quotes: make(map[uuid.UUID]*model.Quote)}
}

func (r *stubQuoteRepo) Create(_ context.Context, q *model.Quote) error {
	for _, existing := range r.quotes {
		if existing.RFQID == q.RFQID && existing.SupplierID == q.SupplierID {
			return gorm.ErrDuplicatedKey
		}
	}
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	r.quotes[q.ID] = q
	return nil
}

func (r *stubQuoteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (r *stubQuoteRepo) FindByIDForUpdate(_ context.Context, _ *gorm.DB, id uuid.UUID) (*model.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (r *stubQuoteRepo) ListByRFQ(_ context.Context, rfqID uuid.UUID) ([]model.Quote, error) {
	var quotes []model.Quote
	for _, q := range r.quotes {
		if q.RFQID == rfqID {
			quotes = append(quotes, *q)
		}
	}
	return quotes, nil
}

func (r *stubQuoteRepo) ExistsForSupplier(_ context.Context, rfqID, supplierID uuid.UUID) (bool, error) {
	for _, q := range r.quotes {
		if q.RFQID == rfqID && q.SupplierID == supplierID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubQuoteRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	q, ok := r.quotes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	q.Status = status
	return nil
}

func (r *stubQuoteRepo) RejectSiblingsTx(_ *gorm.DB, rfqID, acceptedID uuid.UUID) error {
	for _, q := range r.quotes {
		if q.RFQID == rfqID && q.ID != acceptedID {
			q.Status = model.QuoteStatusRejected
		}
	}
	return nil
}

func (r *stubQuoteRepo) DB() *gorm.DB { return nil }

var _ repository.QuoteRepository = (*stubQuoteRepo)(nil)

// ── Purchase order repo stub ──────────────────────────────────────────────────

type stubPORepo struct {
	orders map[uuid.UUID]*model.PurchaseOrder
}

func newStubPORepo() *stubPORepo {
	return &stubPORepo{orders: make(map[uuid.UUID]*model.PurchaseOrder)}
}

func (r *stubPORepo) CreateTx(_ *gorm.DB, po *model.PurchaseOrder) error {
	for _, existing := range r.orders {
		if existing.QuoteID == po.QuoteID {
			return gorm.ErrDuplicatedKey
		}
	}
	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}
	r.orders[po.ID] = po
	return nil
}

func (r *stubPORepo) FindByID(_ context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return po, nil
}

func (r *stubPORepo) ListByBuyer(_ context.Context, buyerID uuid.UUID) ([]model.PurchaseOrder, error) {
	var pos []model.PurchaseOrder
	for _, po := range r.orders {
		if po.BuyerID == buyerID {
			pos = append(pos, *po)
		}
	}
	return pos, nil
}

func (r *stubPORepo) ListBySupplier(_ context.Context, supplierID uuid.UUID) ([]model.PurchaseOrder, error) {
	var pos []model.PurchaseOrder
	for _, po := range r.orders {
		if po.SupplierID == supplierID {
			pos = append(pos, *po)
		}
	}
	return pos, nil
}

var _ repository.PurchaseOrderRepository = (*stubPORepo)(nil)

// ── User repo stub ────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByLogin(_ context.Context, login string) (*model.User, error) {
	for _, u := range r.users {
		if (u.Username == login || u.Email == login) && u.Active {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var users []model.User
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Network request repo stub ─────────────────────────────────────────────────

type stubNetworkRepo struct {
	requests map[uuid.UUID]*model.NetworkAccessRequest
}

func newStubNetworkRepo() *stubNetworkRepo {
	return &stubNetworkRepo{requests: make(map[uuid.UUID]*model.NetworkAccessRequest)}
}

func (r *stubNetworkRepo) Create(_ context.Context, req *model.NetworkAccessRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	r.requests[req.ID] = req
	return nil
}

func (r *stubNetworkRepo) FindByID(_ context.Context, id uuid.UUID) (*model.NetworkAccessRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return req, nil
}

func (r *stubNetworkRepo) List(_ context.Context, status string) ([]model.NetworkAccessRequest, error) {
	var reqs []model.NetworkAccessRequest
	for _, req := range r.requests {
		if status == "" || req.Status == status {
			reqs = append(reqs, *req)
		}
	}
	return reqs, nil
}

func (r *stubNetworkRepo) Update(_ context.Context, req *model.NetworkAccessRequest) error {
	r.requests[req.ID] = req
	return nil
}

var _ repository.NetworkRequestRepository = (*stubNetworkRepo)(nil)

// ── Credential notifier stub ──────────────────────────────────────────────────

type stubNotifier struct {
	sent []string // recipient emails
}

func (n *stubNotifier) NotifyCredentials(_ context.Context, email, _, _, _, _ string) error {
	n.sent = append(n.sent, email)
	return nil
}
