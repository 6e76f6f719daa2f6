package report

import (
	"context"
	"strings"
	"testing"

	"radioreg/internal/domain"
	"radioreg/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStations struct {
	rows []domain.Station
	err  error
}

func (s stubStations) All(ctx context.Context) ([]domain.Station, error) {
	return s.rows, s.err
}

type stubMaintenance struct {
	records []domain.MaintenanceRecord
	daily   domain.DailyStats
	regions []domain.RegionStats
}

func (s stubMaintenance) RecordsFor(ctx context.Context, f repository.MaintenanceFilters) ([]domain.MaintenanceRecord, error) {
	return s.records, nil
}

func (s stubMaintenance) DailyStats(ctx context.Context, date string) (domain.DailyStats, error) {
	return s.daily, nil
}

func (s stubMaintenance) StatsByRegion(ctx context.Context, date, region string) ([]domain.RegionStats, error) {
	return s.regions, nil
}

func TestService_SummaryEmptyRegistry(t *testing.T) {
	service := NewService(stubStations{}, stubMaintenance{})

	sum, err := service.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, sum.Total)
	assert.Zero(t, sum.Availability)
	assert.Empty(t, sum.ByRegion)
}

func TestService_SummaryAvailabilityRounding(t *testing.T) {
	service := NewService(stubStations{rows: []domain.Station{
		{Name: "a", Status: domain.StatusActive, Region: domain.RegionRRP, Type: domain.StationBase},
		{Name: "b", Status: domain.StatusInactive, Region: domain.RegionRRP, Type: domain.StationBase},
		{Name: "c", Status: domain.StatusReserve, Region: domain.RegionVMKB, Type: domain.StationMobile},
	}}, stubMaintenance{})

	sum, err := service.Summary(context.Background())
	require.NoError(t, err)

	// 1 of 3 active
	assert.Equal(t, 33.3, sum.Availability)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, []Bucket{
		{Label: string(domain.RegionRRP), Count: 2},
		{Label: string(domain.RegionVMKB), Count: 1},
	}, sum.ByRegion)
}

func TestService_SummaryUnknownBuckets(t *testing.T) {
	service := NewService(stubStations{rows: []domain.Station{
		{Name: "a", Status: domain.StatusActive, Region: domain.RegionRRP, Type: domain.StationBase},
		{Name: "b", Status: "Сломана", Region: "Согд", Type: ""},
	}}, stubMaintenance{})

	sum, err := service.Summary(context.Background())
	require.NoError(t, err)

	assert.Contains(t, sum.ByRegion, Bucket{Label: domain.Unknown, Count: 1})
	assert.Contains(t, sum.ByStatus, Bucket{Label: domain.Unknown, Count: 1})
	assert.Contains(t, sum.ByType, Bucket{Label: domain.Unknown, Count: 1})

	// Unknown sorts after the recognized buckets
	assert.Equal(t, domain.Unknown, sum.ByRegion[len(sum.ByRegion)-1].Label)
}

func TestService_StationsFiltering(t *testing.T) {
	service := NewService(stubStations{rows: []domain.Station{
		{Name: "a", Status: domain.StatusActive, Region: domain.RegionRRP},
		{Name: "b", Status: domain.StatusInactive, Region: domain.RegionRRP},
		{Name: "c", Status: domain.StatusActive, Region: domain.RegionVMKB},
	}}, stubMaintenance{})
	ctx := context.Background()

	rows, err := service.Stations(ctx, domain.FilterAll, domain.FilterAll)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rows, err = service.Stations(ctx, string(domain.RegionRRP), "")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = service.Stations(ctx, string(domain.RegionRRP), string(domain.StatusActive))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].Name)
}

func TestService_ExportStationsCSV(t *testing.T) {
	service := NewService(stubStations{rows: []domain.Station{
		{Name: "БС Варзоб", Status: domain.StatusActive, Region: domain.RegionRRP, Frequency: "163.250"},
	}}, stubMaintenance{})

	data, err := service.ExportStationsCSV(context.Background(), "", "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Название")
	assert.Contains(t, lines[1], "БС Варзоб")
	assert.Contains(t, lines[1], "163.250")
}

func TestService_ExportMaintenancePDF(t *testing.T) {
	service := NewService(stubStations{}, stubMaintenance{
		records: []domain.MaintenanceRecord{
			{Date: "2026-08-29", StationName: "БС Варзоб", StationRegion: domain.RegionRRP,
				Type: domain.MaintenanceRepair, UserLabel: "Администратор"},
		},
		daily: domain.DailyStats{Date: "2026-08-29", DistinctStations: 1, RepairCount: 1},
	})

	data, err := service.ExportMaintenancePDF(context.Background(), repository.MaintenanceFilters{Date: "2026-08-29"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
