package station

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

func (s *Service) Fetch(ctx context.Context, search, region string) ([]domain.Station, error) {
	return s.repo.Fetch(ctx, search, region)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Station, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req UpsertStationRequest) (st *domain.Station, err error) {
	defer func() { metrics.ObserveMutation("station", "create", err) }()

	stn := req.toDomain()
	stn.Name = strings.TrimSpace(stn.Name)
	if stn.Name == "" {
		return nil, fmt.Errorf("%w: station name is required", ErrValidation)
	}
	applyDefaults(&stn)

	taken, err := s.repo.Exists(ctx, stn.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrDuplicateKey
	}

	if _, err = s.repo.Add(ctx, &stn); err != nil {
		return nil, err
	}
	return &stn, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertStationRequest) (st *domain.Station, err error) {
	defer func() { metrics.ObserveMutation("station", "update", err) }()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stn := req.toDomain()
	stn.ID = id
	stn.Name = strings.TrimSpace(stn.Name)
	if stn.Name == "" {
		return nil, fmt.Errorf("%w: station name is required", ErrValidation)
	}
	applyDefaults(&stn)

	taken, err := s.repo.Exists(ctx, stn.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrDuplicateKey
	}

	stn.PhotoPath = current.PhotoPath
	stn.PDFPath = current.PDFPath

	if err = s.repo.Update(ctx, id, &stn); err != nil {
		return nil, err
	}
	return &stn, nil
}

// Delete removes the station but never its maintenance history; the
// journal keeps orphaned rows.
func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	defer func() { metrics.ObserveMutation("station", "delete", err) }()
	return s.repo.Delete(ctx, id)
}

// UpdateNotes is the one mutation open to the viewer role.
func (s *Service) UpdateNotes(ctx context.Context, id int64, notes string) (err error) {
	defer func() { metrics.ObserveMutation("station", "update_notes", err) }()
	return s.repo.UpdateNotes(ctx, id, notes)
}

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

func (s *Service) AttachmentPath(ctx context.Context, id int64, kind string) (string, error) {
	stn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	rel := stn.PhotoPath
	if kind == "document" {
		rel = stn.PDFPath
	}
	if rel == "" {
		return "", ErrNoAttachment
	}
	return s.store.Abs(rel), nil
}

// applyDefaults fills the import/form defaulting rules: blank region,
// type and status fall back to the fixed defaults.
func applyDefaults(s *domain.Station) {
	if strings.TrimSpace(string(s.Region)) == "" {
		s.Region = domain.RegionRRP
	}
	if strings.TrimSpace(string(s.Type)) == "" {
		s.Type = domain.StationBase
	}
	if strings.TrimSpace(string(s.Status)) == "" {
		s.Status = domain.StatusActive
	}
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
