package service_test

// Tests for the RFQ discussion thread and file attachments, which share the
// RFQ visibility rule.

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"axonet/internal/dto"
	"axonet/internal/model"
	"axonet/internal/repository"
	"axonet/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMessageRepo struct {
	messages []*model.RFQMessage
}

func (r *stubMessageRepo) Create(_ context.Context, m *model.RFQMessage) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.messages = append(r.messages, m)
	return nil
}

func (r *stubMessageRepo) ListByRFQ(_ context.Context, rfqID uuid.UUID) ([]model.RFQMessage, error) {
	var msgs []model.RFQMessage
	for _, m := range r.messages {
		if m.RFQID == rfqID {
			msgs = append(msgs, *m)
		}
	}
	return msgs, nil
}

var _ repository.RFQMessageRepository = (*stubMessageRepo)(nil)

type stubFileRepo struct {
	files []*model.RFQFile
}

func (r *stubFileRepo) Create(_ context.Context, f *model.RFQFile) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.files = append(r.files, f)
	return nil
}

func (r *stubFileRepo) ListByRFQ(_ context.Context, rfqID uuid.UUID) ([]model.RFQFile, error) {
	var files []model.RFQFile
	for _, f := range r.files {
		if f.RFQID == rfqID {
			files = append(files, *f)
		}
	}
	return files, nil
}

var _ repository.RFQFileRepository = (*stubFileRepo)(nil)

// stubFileStore records saves without touching disk.
type stubFileStore struct {
	saved []string
}

func (s *stubFileStore) Save(rfqID, fileName string, src io.Reader) (string, string, string, error) {
	_, _ = io.Copy(io.Discard, src)
	stored := "0_" + fileName
	s.saved = append(s.saved, stored)
	fileType := "application/octet-stream"
	if filepath.Ext(fileName) == ".pdf" {
		fileType = "application/pdf"
	}
	return stored, fileType, "/uploads/" + rfqID + "/" + stored, nil
}

// ── Messages ──────────────────────────────────────────────────────────────────

func TestSendMessage_PartiesCanPost(t *testing.T) {
	rfqRepo := newStubRFQRepo()
	msgRepo := &stubMessageRepo{}
	svc := service.NewMessageService(msgRepo, rfqRepo)

	buyer := buyerActor()
	rfq := seedRFQ(rfqRepo, buyer.ID, model.RFQStatusActive)

	sent, err := svc.Send(context.Background(), buyer, rfq.ID, dto.SendMessageRequest{
		Message: "Can you hold this price for 90 days?",
	})
	require.NoError(t, err)
	assert.Equal(t, buyer.ID.String(), sent.SenderID)

	// Any supplier can read and reply on a non-draft RFQ.
	supplier := supplierActor()
	_, err = svc.Send(context.Background(), supplier, rfq.ID, dto.SendMessageRequest{
		Message: "Yes, against a signed LOI.",
	})
	require.NoError(t, err)

	thread, err := svc.ListForRFQ(context.Background(), buyer, rfq.ID)
	require.NoError(t, err)
	assert.Len(t, thread, 2)
}

func TestSendMessage_DraftHiddenFromSuppliers(t *testing.T) {
	rfqRepo := newStubRFQRepo()
	svc := service.NewMessageService(&stubMessageRepo{}, rfqRepo)
	rfq := seedRFQ(rfqRepo, uuid.New(), model.RFQStatusDraft)

	_, err := svc.Send(context.Background(), supplierActor(), rfq.ID, dto.SendMessageRequest{
		Message: "hello",
	})
	assert.Equal(t, service.KindNotFound, service.KindOf(err))
}

func TestListMessages_UnknownRFQ(t *testing.T) {
	svc := service.NewMessageService(&stubMessageRepo{}, newStubRFQRepo())

	_, err := svc.ListForRFQ(context.Background(), buyerActor(), uuid.New())
	assert.Equal(t, service.KindNotFound, service.KindOf(err))
}

// ── Files ─────────────────────────────────────────────────────────────────────

func TestUploadFile_StoresAndRecords(t *testing.T) {
	rfqRepo := newStubRFQRepo()
	fileRepo := &stubFileRepo{}
	store := &stubFileStore{}
	svc := service.NewFileService(fileRepo, rfqRepo, store)

	buyer := buyerActor()
	rfq := seedRFQ(rfqRepo, buyer.ID, model.RFQStatusActive)

	resp, err := svc.Upload(context.Background(), buyer, rfq.ID, "drawing-rev3.pdf",
		strings.NewReader("%PDF-1.7 ..."))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", resp.FileType)
	assert.Contains(t, resp.FileURL, rfq.ID.String())
	assert.Len(t, store.saved, 1)

	files, err := svc.ListForRFQ(context.Background(), buyer, rfq.ID)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestUploadFile_EmptyName(t *testing.T) {
	rfqRepo := newStubRFQRepo()
	svc := service.NewFileService(&stubFileRepo{}, rfqRepo, &stubFileStore{})
	buyer := buyerActor()
	rfq := seedRFQ(rfqRepo, buyer.ID, model.RFQStatusActive)

	_, err := svc.Upload(context.Background(), buyer, rfq.ID, "", strings.NewReader("x"))
	assert.Equal(t, service.KindValidation, service.KindOf(err))
}

func TestUploadFile_ForeignBuyerForbidden(t *testing.T) {
	rfqRepo := newStubRFQRepo()
	svc := service.NewFileService(&stubFileRepo{}, rfqRepo, &stubFileStore{})
	rfq := seedRFQ(rfqRepo, uuid.New(), model.RFQStatusActive)

	_, err := svc.Upload(context.Background(), buyerActor(), rfq.ID, "drawing.pdf",
		strings.NewReader("x"))
	assert.Equal(t, service.KindForbidden, service.KindOf(err))
}
