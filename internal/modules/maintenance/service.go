package maintenance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"radioreg/internal/domain"
	"radioreg/internal/observability/metrics"
	"radioreg/internal/repository"
)

type Service struct {
	repo     Repository
	stations StationGetter
	now      func() time.Time
}

func NewService(repo Repository, stations StationGetter) *Service {
	return &Service{repo: repo, stations: stations, now: time.Now}
}

// RecordEvent appends one journal row per requested work type, all dated
// with the current local calendar day. Repeated calls for the same
// station on the same day accumulate rows; the journal is an event log,
// not a current-state table. The station must exist when the event is
// logged, but rows survive the station's later deletion.
func (s *Service) RecordEvent(ctx context.Context, req RecordEventRequest, userLabel string) error {
	if len(req.Types) == 0 {
		return fmt.Errorf("%w: не выбран тип работ", ErrValidation)
	}
	types := make([]domain.MaintenanceType, 0, len(req.Types))
	for _, raw := range req.Types {
		t := domain.MaintenanceType(strings.TrimSpace(raw))
		if !t.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownType, raw)
		}
		types = append(types, t)
	}

	if _, err := s.stations.GetByID(ctx, req.StationID); err != nil {
		return err
	}

	date := s.now().Format(domain.DateLayout)
	for _, t := range types {
		notes := "Проведены работы: " + string(t)
		if req.Notes != "" {
			notes += ". " + req.Notes
		}
		rec := domain.MaintenanceRecord{
			StationID: req.StationID,
			Date:      date,
			Type:      t,
			Parts:     req.Parts,
			Notes:     notes,
			UserLabel: userLabel,
		}
		if err := s.repo.Add(ctx, &rec); err != nil {
			return err
		}
		metrics.ObserveMaintenanceEvent()
	}
	return nil
}

func (s *Service) DailyStats(ctx context.Context, date string) (domain.DailyStats, error) {
	if date == "" {
		date = s.now().Format(domain.DateLayout)
	}
	return s.repo.DailyStats(ctx, date)
}

// StatsByRegion groups the day's work by each station's current region.
// A station moved to another region after the event drags its history
// along with it; callers relying on region-at-event-time will not get it.
func (s *Service) StatsByRegion(ctx context.Context, date, region string) ([]domain.RegionStats, error) {
	if date == "" {
		date = s.now().Format(domain.DateLayout)
	}
	return s.repo.StatsByRegion(ctx, date, region)
}

// RecordsFor lists journal rows, most recent first. Rows whose station
// was deleted keep their data and get a fixed orphan label in place of
// the station name.
func (s *Service) RecordsFor(ctx context.Context, f repository.MaintenanceFilters) ([]domain.MaintenanceRecord, error) {
	rows, err := s.repo.RecordsFor(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].StationName == "" {
			rows[i].StationName = domain.OrphanStationLabel
		}
	}
	return rows, nil
}
