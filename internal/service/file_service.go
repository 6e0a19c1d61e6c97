package service

import (
	"context"
	"errors"
	"io"
	"time"

	"axonet/internal/dto"
	"axonet/internal/model"
	"axonet/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileStore persists an uploaded binary and returns the stored descriptor.
// The service never inspects file contents.
type FileStore interface {
	Save(rfqID, fileName string, src io.Reader) (storedName, fileType, url string, err error)
}

type FileService interface {
	Upload(ctx context.Context, actor Actor, rfqID uuid.UUID, fileName string, src io.Reader) (*dto.RFQFileResponse, error)
	ListForRFQ(ctx context.Context, actor Actor, rfqID uuid.UUID) ([]dto.RFQFileResponse, error)
}

type fileService struct {
	repo    repository.RFQFileRepository
	rfqRepo repository.RFQRepository
	store   FileStore
}

func NewFileService(repo repository.RFQFileRepository, rfqRepo repository.RFQRepository, store FileStore) FileService {
	return &fileService{repo: repo, rfqRepo: rfqRepo, store: store}
}

func (s *fileService) Upload(ctx context.Context, actor Actor, rfqID uuid.UUID, fileName string, src io.Reader) (*dto.RFQFileResponse, error) {
	if err := s.checkAccess(ctx, actor, rfqID); err != nil {
		return nil, err
	}
	if fileName == "" {
		return nil, Invalid("file name is required")
	}

	storedName, fileType, url, err := s.store.Save(rfqID.String(), fileName, src)
	if err != nil {
		return nil, err
	}

	file := &model.RFQFile{
		RFQID:      rfqID,
		UploaderID: actor.ID,
		FileName:   storedName,
		FileType:   fileType,
		FileURL:    url,
	}
	if err := s.repo.Create(ctx, file); err != nil {
		return nil, err
	}
	resp := fileToResponse(file)
	return &resp, nil
}

func (s *fileService) ListForRFQ(ctx context.Context, actor Actor, rfqID uuid.UUID) ([]dto.RFQFileResponse, error) {
	if err := s.checkAccess(ctx, actor, rfqID); err != nil {
		return nil, err
	}
	files, err := s.repo.ListByRFQ(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RFQFileResponse, len(files))
	for i := range files {
		resp[i] = fileToResponse(&files[i])
	}
	return resp, nil
}

func (s *fileService) checkAccess(ctx context.Context, actor Actor, rfqID uuid.UUID) error {
	rfq, err := s.rfqRepo.FindByID(ctx, rfqID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("rfq not found")
		}
		return err
	}
	return canViewRFQ(actor, rfq)
}

func fileToResponse(f *model.RFQFile) dto.RFQFileResponse {
	return dto.RFQFileResponse{
		ID:        f.ID.String(),
		RFQID:     f.RFQID.String(),
		FileName:  f.FileName,
		FileType:  f.FileType,
		FileURL:   f.FileURL,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}
