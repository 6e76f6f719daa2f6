package employee

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"radioreg/internal/domain"
	"radioreg/internal/observability/metrics"
	"radioreg/internal/repository"
)

const maxAttachmentSize = 20 * 1024 * 1024 // 20 MB

var photoMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

type Service struct {
	repo  Repository
	store AttachmentStore
}

func NewService(repo Repository, store AttachmentStore) *Service {
	return &Service{repo: repo, store: store}
}

func (s *Service) Fetch(ctx context.Context, search, region string) ([]domain.Employee, error) {
	return s.repo.Fetch(ctx, search, region)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the payload, runs the advisory uniqueness pre-check
// and inserts. The store's unique index remains the real guarantee: two
// concurrent submissions can both pass the pre-check, and the second
// insert then fails with ErrDuplicateKey.
func (s *Service) Create(ctx context.Context, req UpsertEmployeeRequest) (emp *domain.Employee, err error) {
	defer func() { metrics.ObserveMutation("employee", "create", err) }()

	e := req.toDomain()
	e.TabelNumber = strings.TrimSpace(e.TabelNumber)
	if e.TabelNumber == "" {
		return nil, fmt.Errorf("%w: tabel number is required", ErrValidation)
	}

	taken, err := s.repo.Exists(ctx, e.TabelNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrDuplicateKey
	}

	if _, err = s.repo.Add(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Update replaces all mutable fields, tabel number included. The
// excludeID form of the pre-check lets a record keep its own key.
func (s *Service) Update(ctx context.Context, id int64, req UpsertEmployeeRequest) (emp *domain.Employee, err error) {
	defer func() { metrics.ObserveMutation("employee", "update", err) }()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	e := req.toDomain()
	e.ID = id
	e.TabelNumber = strings.TrimSpace(e.TabelNumber)
	if e.TabelNumber == "" {
		return nil, fmt.Errorf("%w: tabel number is required", ErrValidation)
	}

	taken, err := s.repo.Exists(ctx, e.TabelNumber, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrDuplicateKey
	}

	// attachment paths survive a form save; they change only through the
	// attachment endpoints
	e.PhotoPath = current.PhotoPath
	e.PDFPath = current.PDFPath

	if err = s.repo.Update(ctx, id, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	defer func() { metrics.ObserveMutation("employee", "delete", err) }()
	return s.repo.Delete(ctx, id)
}

// AttachPhoto stores photo bytes and points the row at the new file. The
// row is updated only after a successful write, so a disk failure leaves
// the record exactly as it was.
func (s *Service) AttachPhoto(ctx context.Context, id int64, filename string, data []byte) (string, error) {
	if err := checkAttachment(data, photoMimeTypes); err != nil {
		return "", err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return "", err
	}

	rel, err := s.store.SavePhoto(filename, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAttachmentWrite, err)
	}
	if err := s.repo.SetPhotoPath(ctx, id, rel); err != nil {
		return "", err
	}
	return rel, nil
}

func (s *Service) AttachDocument(ctx context.Context, id int64, filename string, data []byte) (string, error) {
	if err := checkAttachment(data, map[string]bool{"application/pdf": true}); err != nil {
		return "", err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return "", err
	}

	rel, err := s.store.SaveDocument(filename, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAttachmentWrite, err)
	}
	if err := s.repo.SetPDFPath(ctx, id, rel); err != nil {
		return "", err
	}
	return rel, nil
}

// AttachmentPath resolves the absolute path of a stored attachment.
func (s *Service) AttachmentPath(ctx context.Context, id int64, kind string) (string, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	rel := e.PhotoPath
	if kind == "document" {
		rel = e.PDFPath
	}
	if rel == "" {
		return "", ErrNoAttachment
	}
	return s.store.Abs(rel), nil
}

func checkAttachment(data []byte, allowed map[string]bool) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty file", ErrValidation)
	}
	if len(data) > maxAttachmentSize {
		return ErrFileTooLarge
	}
	mime := http.DetectContentType(data)
	mime = strings.Split(mime, ";")[0]
	if !allowed[mime] {
		return ErrInvalidFileType
	}
	return nil
}
