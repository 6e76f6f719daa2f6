package employee

import (
	"context"

	"radioreg/internal/domain"
)

type Repository interface {
	Exists(ctx context.Context, tabelNumber string, excludeID int64) (bool, error)
	Fetch(ctx context.Context, search, region string) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Add(ctx context.Context, e *domain.Employee) (int64, error)
	Update(ctx context.Context, id int64, e *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	SetPhotoPath(ctx context.Context, id int64, path string) error
	SetPDFPath(ctx context.Context, id int64, path string) error
}

// AttachmentStore is the filesystem side of attachments.
type AttachmentStore interface {
	SavePhoto(hint string, data []byte) (string, error)
	SaveDocument(hint string, data []byte) (string, error)
	Abs(rel string) string
}
