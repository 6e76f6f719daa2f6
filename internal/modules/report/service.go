package report

import (
	"context"
	"math"

	"radioreg/internal/domain"
	"radioreg/internal/repository"
)

// Service computes read-side aggregates over the full station set. It
// holds no state of its own; every call reflects the store as of now.
type Service struct {
	stations    StationReader
	maintenance MaintenanceReader
}

func NewService(stations StationReader, maintenance MaintenanceReader) *Service {
	return &Service{stations: stations, maintenance: maintenance}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	all, err := s.stations.All(ctx)
	if err != nil {
		return Summary{}, err
	}

	byRegion := make(map[string]int)
	byType := make(map[string]int)
	byStatus := make(map[string]int)
	active := 0
	for _, st := range all {
		byRegion[st.Region.Bucket()]++
		byType[st.Type.Bucket()]++
		byStatus[st.Status.Bucket()]++
		if st.Status == domain.StatusActive {
			active++
		}
	}

	regionLabels := make([]string, 0, len(domain.Regions))
	for _, r := range domain.Regions {
		regionLabels = append(regionLabels, string(r))
	}
	typeLabels := make([]string, 0, len(domain.StationTypes))
	for _, t := range domain.StationTypes {
		typeLabels = append(typeLabels, string(t))
	}
	statusLabels := make([]string, 0, len(domain.StationStatuses))
	for _, st := range domain.StationStatuses {
		statusLabels = append(statusLabels, string(st))
	}

	return Summary{
		Total:        len(all),
		ByRegion:     histogram(byRegion, regionLabels),
		ByType:       histogram(byType, typeLabels),
		ByStatus:     histogram(byStatus, statusLabels),
		Availability: availability(active, len(all)),
	}, nil
}

// histogram orders buckets by the enum display order, dropping empty
// known buckets, with the Unknown bucket last when it is non-empty.
func histogram(counts map[string]int, order []string) []Bucket {
	out := make([]Bucket, 0, len(counts))
	for _, label := range order {
		if n := counts[label]; n > 0 {
			out = append(out, Bucket{Label: label, Count: n})
		}
	}
	if n := counts[domain.Unknown]; n > 0 {
		out = append(out, Bucket{Label: domain.Unknown, Count: n})
	}
	return out
}

// availability is the share of active stations as a percentage, rounded
// to one decimal place. An empty registry reports 0, not NaN.
func availability(active, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(active)/float64(total)*1000) / 10
}

// Stations returns the filtered listing behind the report table. Region
// and status filters are exact matches; the "Все" sentinel (or blank)
// disables a filter.
func (s *Service) Stations(ctx context.Context, region, status string) ([]domain.Station, error) {
	all, err := s.stations.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Station, 0, len(all))
	for _, st := range all {
		if !domain.IsAll(region) && string(st.Region) != region {
			continue
		}
		if !domain.IsAll(status) && string(st.Status) != status {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func (s *Service) MaintenanceRecords(ctx context.Context, f repository.MaintenanceFilters) ([]domain.MaintenanceRecord, error) {
	return s.maintenance.RecordsFor(ctx, f)
}

func (s *Service) MaintenanceDay(ctx context.Context, date, region string) (domain.DailyStats, []domain.RegionStats, error) {
	daily, err := s.maintenance.DailyStats(ctx, date)
	if err != nil {
		return domain.DailyStats{}, nil, err
	}
	regions, err := s.maintenance.StatsByRegion(ctx, date, region)
	if err != nil {
		return domain.DailyStats{}, nil, err
	}
	return daily, regions, nil
}
