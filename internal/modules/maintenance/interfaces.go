package maintenance

import (
	"context"

	"radioreg/internal/domain"
	"radioreg/internal/repository"
)

// Repository is the journal store. Records are append-only.
type Repository interface {
	Add(ctx context.Context, rec *domain.MaintenanceRecord) error
	RecordsFor(ctx context.Context, f repository.MaintenanceFilters) ([]domain.MaintenanceRecord, error)
	DailyStats(ctx context.Context, date string) (domain.DailyStats, error)
	StatsByRegion(ctx context.Context, date, region string) ([]domain.RegionStats, error)
}

// StationGetter is the slice of the station repository the journal needs
// to confirm a station exists before logging work against it.
type StationGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}
