package repository

import (
	"context"
	"testing"

	"radioreg/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStation(t *testing.T, repo *StationRepository, name string, region domain.Region, status domain.StationStatus) int64 {
	t.Helper()
	id, err := repo.Add(context.Background(), &domain.Station{
		Name:   name,
		Type:   domain.StationBase,
		Status: status,
		Region: region,
	})
	require.NoError(t, err)
	return id
}

func TestStationRepository_AddDuplicateName(t *testing.T) {
	repo := NewStationRepository(newTestDB(t))
	ctx := context.Background()

	seedStation(t, repo, "БС Варзоб", domain.RegionRRP, domain.StatusActive)

	_, err := repo.Add(ctx, &domain.Station{Name: "БС Варзоб"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	rows, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestStationRepository_FetchSearchAndOrder(t *testing.T) {
	repo := NewStationRepository(newTestDB(t))
	ctx := context.Background()

	seedStation(t, repo, "РТ Анзоб", domain.RegionRRP, domain.StatusUnderMaintenance)
	seedStation(t, repo, "БС Варзоб", domain.RegionRRP, domain.StatusActive)
	seedStation(t, repo, "БС Хорог", domain.RegionVMKB, domain.StatusActive)

	rows, err := repo.Fetch(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "БС Варзоб", rows[0].Name)
	assert.Equal(t, "БС Хорог", rows[1].Name)
	assert.Equal(t, "РТ Анзоб", rows[2].Name)

	rows, err = repo.Fetch(ctx, "Анзоб", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "РТ Анзоб", rows[0].Name)

	rows, err = repo.Fetch(ctx, "", string(domain.RegionVMKB))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "БС Хорог", rows[0].Name)
}

func TestStationRepository_UpdateNotesOnly(t *testing.T) {
	repo := NewStationRepository(newTestDB(t))
	ctx := context.Background()

	id := seedStation(t, repo, "БС Варзоб", domain.RegionRRP, domain.StatusActive)

	require.NoError(t, repo.UpdateNotes(ctx, id, "заменить фидер"))

	st, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "заменить фидер", st.Notes)
	assert.Equal(t, "БС Варзоб", st.Name)
	assert.Equal(t, domain.StatusActive, st.Status)
}

func TestStationRepository_DeleteKeepsMaintenanceRecords(t *testing.T) {
	db := newTestDB(t)
	stations := NewStationRepository(db)
	journal := NewMaintenanceRepository(db)
	ctx := context.Background()

	id := seedStation(t, stations, "БС Куляб", domain.RegionRUHO, domain.StatusActive)
	require.NoError(t, journal.Add(ctx, &domain.MaintenanceRecord{
		StationID: id,
		Date:      "2026-08-29",
		Type:      domain.MaintenanceRepair,
		UserLabel: "Администратор",
	}))

	require.NoError(t, stations.Delete(ctx, id))

	_, err := stations.GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// the journal row survives, with the join columns gone NULL
	rows, err := journal.RecordsFor(ctx, MaintenanceFilters{StationID: id})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].StationName)
	assert.Empty(t, rows[0].StationRegion)
	assert.Equal(t, domain.MaintenanceRepair, rows[0].Type)
}
