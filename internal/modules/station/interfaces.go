package station

import (
	"context"

	"radioreg/internal/domain"
)

type Repository interface {
	Exists(ctx context.Context, name string, excludeID int64) (bool, error)
	Fetch(ctx context.Context, search, region string) ([]domain.Station, error)
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
	Add(ctx context.Context, s *domain.Station) (int64, error)
	Update(ctx context.Context, id int64, s *domain.Station) error
	Delete(ctx context.Context, id int64) error
	UpdateNotes(ctx context.Context, id int64, notes string) error
	SetPhotoPath(ctx context.Context, id int64, path string) error
	SetPDFPath(ctx context.Context, id int64, path string) error
}

type AttachmentStore interface {
	SavePhoto(hint string, data []byte) (string, error)
	SaveDocument(hint string, data []byte) (string, error)
	Abs(rel string) string
}
