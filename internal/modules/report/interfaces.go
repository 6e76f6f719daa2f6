package report

import (
	"context"

	"radioreg/internal/domain"
	"radioreg/internal/repository"
)

type StationReader interface {
	All(ctx context.Context) ([]domain.Station, error)
}

type MaintenanceReader interface {
	RecordsFor(ctx context.Context, f repository.MaintenanceFilters) ([]domain.MaintenanceRecord, error)
	DailyStats(ctx context.Context, date string) (domain.DailyStats, error)
	StatsByRegion(ctx context.Context, date, region string) ([]domain.RegionStats, error)
}
