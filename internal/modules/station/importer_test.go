package station

import (
	"context"
	"strings"
	"testing"

	"radioreg/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImporter_CSV(t *testing.T) {
	repo := new(mockStationRepo)
	importer := NewImporter(repo)

	repo.On("Exists", mock.Anything, "БС Варзоб", int64(0)).Return(false, nil)
	repo.On("Exists", mock.Anything, "БС Хорог", int64(0)).Return(true, nil)
	repo.On("Add", mock.Anything, mock.MatchedBy(func(s *domain.Station) bool {
		return s.Name == "БС Варзоб" && s.Region == domain.RegionVMKB && s.Status == domain.StatusActive
	})).Return(int64(1), nil)

	input := strings.Join([]string{
		"name,location,type,frequency,power,status,contact,notes,region",
		"БС Варзоб,перевал,Базовая,163.250,25 Вт,,Рахимов,,ВМКБ",
		"БС Хорог,г. Хорог,Базовая,163.250,25 Вт,Активна,,,ВМКБ",
	}, "\n")

	sum, err := importer.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Imported)
	assert.Equal(t, 1, sum.Skipped)
	assert.Zero(t, sum.Errors)
	repo.AssertExpectations(t)
}

func TestImporter_TextBareNamesUseDefaults(t *testing.T) {
	repo := new(mockStationRepo)
	importer := NewImporter(repo)

	repo.On("Exists", mock.Anything, mock.Anything, int64(0)).Return(false, nil)
	repo.On("Add", mock.Anything, mock.MatchedBy(func(s *domain.Station) bool {
		return s.Region == domain.RegionRUHO &&
			s.Type == domain.StationBase &&
			s.Status == domain.StatusActive
	})).Return(int64(1), nil).Twice()

	sum, err := importer.ImportText(context.Background(), "БС Куляб\n\nБС Дангара\n", string(domain.RegionRUHO))
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Imported)
	assert.Zero(t, sum.Skipped)
	repo.AssertExpectations(t)
}

func TestImporter_TextPipeDelimited(t *testing.T) {
	repo := new(mockStationRepo)
	importer := NewImporter(repo)

	repo.On("Exists", mock.Anything, "РТ Анзоб", int64(0)).Return(false, nil)
	repo.On("Add", mock.Anything, mock.MatchedBy(func(s *domain.Station) bool {
		return s.Name == "РТ Анзоб" &&
			s.Location == "тоннель" &&
			s.Type == domain.StationRepeater &&
			s.Frequency == "161.075" &&
			s.Region == domain.RegionRRP &&
			s.Notes == "портал"
	})).Return(int64(1), nil)

	line := "РТ Анзоб|тоннель|Ретранслятор|161.075|10 Вт|Активна|РРП|Назаров|портал"
	sum, err := importer.ImportText(context.Background(), line, "")
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Imported)
	repo.AssertExpectations(t)
}

func TestImporter_SkipsRowsWithoutName(t *testing.T) {
	repo := new(mockStationRepo)
	importer := NewImporter(repo)

	input := "name,region\n,ВМКБ\n"
	sum, err := importer.ImportCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Zero(t, sum.Imported)
	assert.Equal(t, 1, sum.Skipped)
	repo.AssertNotCalled(t, "Add")
}

func TestImporter_BadCSVHeader(t *testing.T) {
	importer := NewImporter(new(mockStationRepo))

	_, err := importer.ImportCSV(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, ErrBadImportFile)
}
