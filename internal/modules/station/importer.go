package station

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"radioreg/internal/domain"
	"radioreg/internal/logger"
	"radioreg/internal/observability/metrics"
	"radioreg/internal/repository"

	"github.com/xuri/excelize/v2"
)

// Importer maps tabular inputs onto station upsert payloads. All three
// formats share the defaulting rules: blank region -> РРП, blank type ->
// Базовая, blank status -> Активна; a duplicate name is skipped, never
// overwritten.
type Importer struct {
	repo Repository
}

func NewImporter(repo Repository) *Importer {
	return &Importer{repo: repo}
}

// ImportCSV reads a header-row CSV with the columns
// name,location,type,frequency,power,status,contact,notes,region.
func (i *Importer) ImportCSV(ctx context.Context, r io.Reader) (ImportSummary, error) {
	var sum ImportSummary

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return sum, fmt.Errorf("%w: %v", ErrBadImportFile, err)
	}
	col := indexColumns(header)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			sum.Errors++
			continue
		}

		get := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		stn := domain.Station{
			Name:      get("name"),
			Location:  get("location"),
			Type:      domain.StationType(get("type")),
			Frequency: get("frequency"),
			Power:     get("power"),
			Status:    domain.StationStatus(get("status")),
			Contact:   get("contact"),
			Notes:     get("notes"),
			Region:    domain.Region(get("region")),
		}
		i.importOne(ctx, stn, &sum)
	}
	return sum, nil
}

// ImportText reads the pipe-delimited plain-text format, one station per
// line: название|местоположение|тип|частота|мощность|статус|регион|контакт|примечания.
// A line with no separators is shorthand for just the station name.
func (i *Importer) ImportText(ctx context.Context, text, defaultRegion string) (ImportSummary, error) {
	var sum ImportSummary
	if defaultRegion == "" {
		defaultRegion = string(domain.RegionRRP)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		field := func(idx int) string {
			if idx >= len(parts) {
				return ""
			}
			return strings.TrimSpace(parts[idx])
		}

		stn := domain.Station{
			Name:   field(0),
			Region: domain.Region(defaultRegion),
		}
		if len(parts) > 1 {
			stn.Location = field(1)
			stn.Type = domain.StationType(field(2))
			stn.Frequency = field(3)
			stn.Power = field(4)
			stn.Status = domain.StationStatus(field(5))
			if v := field(6); v != "" {
				stn.Region = domain.Region(v)
			}
			stn.Contact = field(7)
			stn.Notes = field(8)
		}
		i.importOne(ctx, stn, &sum)
	}
	return sum, nil
}

// Expected spreadsheet headers, matching the source workbooks.
const (
	xlsxColNumber    = "№"
	xlsxColName      = "Название станции"
	xlsxColFrequency = "БС на площадке (частота)"
	xlsxColRegion    = "Регион"
	xlsxColType      = "Тип станции"
	xlsxColLocation  = "Местоположения"
)

// ImportXLSX reads the first sheet of a workbook with the source's
// column layout. The record number and the frequency info, when present,
// are concatenated into the notes field ("№N | freq-info").
func (i *Importer) ImportXLSX(ctx context.Context, r io.Reader) (ImportSummary, error) {
	var sum ImportSummary

	f, err := excelize.OpenReader(r)
	if err != nil {
		return sum, fmt.Errorf("%w: %v", ErrBadImportFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return sum, ErrBadImportFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return sum, fmt.Errorf("%w: %v", ErrBadImportFile, err)
	}
	if len(rows) == 0 {
		return sum, nil
	}

	col := indexColumns(rows[0])
	for _, row := range rows[1:] {
		get := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		number := get(xlsxColNumber)
		freqInfo := get(xlsxColFrequency)

		var notesParts []string
		if number != "" {
			notesParts = append(notesParts, "№"+number)
		}
		if freqInfo != "" {
			notesParts = append(notesParts, freqInfo)
		}

		stn := domain.Station{
			Name:      get(xlsxColName),
			Location:  get(xlsxColLocation),
			Type:      domain.StationType(get(xlsxColType)),
			Frequency: freqInfo,
			Region:    domain.Region(get(xlsxColRegion)),
			Notes:     strings.Join(notesParts, " | "),
		}
		i.importOne(ctx, stn, &sum)
	}
	return sum, nil
}

func (i *Importer) importOne(ctx context.Context, stn domain.Station, sum *ImportSummary) {
	stn.Name = strings.TrimSpace(stn.Name)
	if stn.Name == "" {
		sum.Skipped++
		metrics.ObserveImportRow("skipped")
		return
	}
	applyDefaults(&stn)

	taken, err := i.repo.Exists(ctx, stn.Name, 0)
	if err != nil {
		sum.Errors++
		metrics.ObserveImportRow("error")
		return
	}
	if taken {
		logger.L().Infof("station %q already exists, skipping", stn.Name)
		sum.Skipped++
		metrics.ObserveImportRow("skipped")
		return
	}

	if _, err := i.repo.Add(ctx, &stn); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			sum.Skipped++
			metrics.ObserveImportRow("skipped")
			return
		}
		sum.Errors++
		metrics.ObserveImportRow("error")
		return
	}
	sum.Imported++
	metrics.ObserveImportRow("imported")
}

func indexColumns(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	return col
}
