package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"radioreg/internal/domain"
	"radioreg/internal/observability/metrics"
	"radioreg/internal/repository"
)

var stationExportHeader = []string{
	"Название", "Местоположение", "Тип", "Частота", "Мощность",
	"Статус", "Регион", "Контакт", "Примечания",
}

func stationExportRow(st domain.Station) []string {
	return []string{
		st.Name, st.Location, string(st.Type), st.Frequency, st.Power,
		string(st.Status), string(st.Region), st.Contact, st.Notes,
	}
}

// ExportStationsCSV serializes the filtered listing as delimited text.
func (s *Service) ExportStationsCSV(ctx context.Context, region, status string) ([]byte, error) {
	rows, err := s.Stations(ctx, region, status)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(stationExportHeader); err != nil {
		return nil, err
	}
	for _, st := range rows {
		if err := w.Write(stationExportRow(st)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	metrics.ObserveExport("csv")
	return buf.Bytes(), nil
}

// ExportStationsXLSX renders the filtered listing as a workbook.
func (s *Service) ExportStationsXLSX(ctx context.Context, region, status string) ([]byte, error) {
	rows, err := s.Stations(ctx, region, status)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Станции"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range stationExportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, st := range rows {
		for c, v := range stationExportRow(st) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	metrics.ObserveExport("xlsx")
	return buf.Bytes(), nil
}

// ExportMaintenancePDF renders the filtered journal as a table with a
// per-day statistics header. Cyrillic text goes through the cp1251
// translator, which covers the whole value domain here.
func (s *Service) ExportMaintenancePDF(ctx context.Context, f repository.MaintenanceFilters) ([]byte, error) {
	records, err := s.maintenance.RecordsFor(ctx, f)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1251")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, tr("Журнал обслуживания базовых станций"))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	if f.Date != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Дата: %s", f.Date)))
		pdf.Ln(5)

		daily, err := s.maintenance.DailyStats(ctx, f.Date)
		if err != nil {
			return nil, err
		}
		pdf.Cell(0, 6, tr(fmt.Sprintf("Станций обслужено: %d, ремонтов: %d, обслуживаний: %d",
			daily.DistinctStations, daily.RepairCount, daily.ServiceCount)))
		pdf.Ln(5)
	}
	if !domain.IsAll(f.Region) {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Регион: %s", f.Region)))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(25, 6, tr("Дата"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 6, tr("Станция"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, tr("Регион"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, tr("Тип работ"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, tr("Запчасти"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, tr("Исполнитель"), "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, rec := range records {
		pdf.CellFormat(25, 6, tr(rec.Date), "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 6, tr(rec.StationName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, tr(string(rec.StationRegion)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, tr(string(rec.Type)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, tr(rec.Parts), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, tr(rec.UserLabel), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	metrics.ObserveExport("pdf")
	return buf.Bytes(), nil
}
