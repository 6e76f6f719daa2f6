package repository

import (
	"context"
	"time"

	"radioreg/internal/domain"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

type maintenanceModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	StationID int64     `gorm:"column:station_id;index"`
	Date      string    `gorm:"column:maintenance_date;index"`
	Type      string    `gorm:"column:maintenance_type"`
	Parts     string    `gorm:"column:parts_replaced"`
	Notes     string    `gorm:"column:notes"`
	UserLabel string    `gorm:"column:user_label"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (maintenanceModel) TableName() string { return "station_maintenance" }

// MaintenanceFilters narrow a journal query. Zero values mean "no filter
// on this dimension"; set filters combine with AND.
type MaintenanceFilters struct {
	Date      string
	Region    string
	StationID int64
}

// Add appends one journal row. The journal has no dedup: repeated events
// for the same station and day all persist.
func (r *MaintenanceRepository) Add(ctx context.Context, rec *domain.MaintenanceRecord) error {
	m := maintenanceModel{
		StationID: rec.StationID,
		Date:      rec.Date,
		Type:      string(rec.Type),
		Parts:     rec.Parts,
		Notes:     rec.Notes,
		UserLabel: rec.UserLabel,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	rec.ID = m.ID
	rec.CreatedAt = m.CreatedAt
	return nil
}

type maintenanceJoinedRow struct {
	ID            int64     `gorm:"column:id"`
	StationID     int64     `gorm:"column:station_id"`
	Date          string    `gorm:"column:maintenance_date"`
	Type          string    `gorm:"column:maintenance_type"`
	Parts         string    `gorm:"column:parts_replaced"`
	Notes         string    `gorm:"column:notes"`
	UserLabel     string    `gorm:"column:user_label"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	StationName   *string   `gorm:"column:station_name"`
	StationRegion *string   `gorm:"column:station_region"`
}

// RecordsFor returns journal rows joined with the live station, most
// recent first. Deleted stations yield NULL name/region; callers label
// such rows as orphans instead of failing.
func (r *MaintenanceRepository) RecordsFor(ctx context.Context, f MaintenanceFilters) ([]domain.MaintenanceRecord, error) {
	q := r.db.WithContext(ctx).
		Table("station_maintenance AS m").
		Select("m.id, m.station_id, m.maintenance_date, m.maintenance_type, m.parts_replaced, m.notes, m.user_label, m.created_at, s.name AS station_name, s.region AS station_region").
		Joins("LEFT JOIN stations s ON s.id = m.station_id")

	if f.Date != "" {
		q = q.Where("m.maintenance_date = ?", f.Date)
	}
	if !domain.IsAll(f.Region) {
		q = q.Where("s.region = ?", f.Region)
	}
	if f.StationID > 0 {
		q = q.Where("m.station_id = ?", f.StationID)
	}

	var rows []maintenanceJoinedRow
	err := q.Order("m.maintenance_date DESC, m.created_at DESC, m.id DESC").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.MaintenanceRecord, 0, len(rows))
	for _, m := range rows {
		rec := domain.MaintenanceRecord{
			ID:        m.ID,
			StationID: m.StationID,
			Date:      m.Date,
			Type:      domain.MaintenanceType(m.Type),
			Parts:     m.Parts,
			Notes:     m.Notes,
			UserLabel: m.UserLabel,
			CreatedAt: m.CreatedAt,
		}
		if m.StationName != nil {
			rec.StationName = *m.StationName
		}
		if m.StationRegion != nil {
			rec.StationRegion = domain.Region(*m.StationRegion)
		}
		out = append(out, rec)
	}
	return out, nil
}

// DailyStats aggregates one calendar day: distinct stations touched plus
// per-type record counts. Records with unrecognized types count toward
// distinct stations but toward neither type counter.
func (r *MaintenanceRepository) DailyStats(ctx context.Context, date string) (domain.DailyStats, error) {
	var row struct {
		Distinct int64 `gorm:"column:distinct_stations"`
		Repairs  int64 `gorm:"column:repairs"`
		Services int64 `gorm:"column:services"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT station_id) AS distinct_stations,
		       COALESCE(SUM(CASE WHEN maintenance_type = ? THEN 1 ELSE 0 END), 0) AS repairs,
		       COALESCE(SUM(CASE WHEN maintenance_type = ? THEN 1 ELSE 0 END), 0) AS services
		FROM station_maintenance
		WHERE maintenance_date = ?`,
		string(domain.MaintenanceRepair), string(domain.MaintenanceService), date,
	).Scan(&row).Error
	if err != nil {
		return domain.DailyStats{}, err
	}
	return domain.DailyStats{
		Date:             date,
		DistinctStations: row.Distinct,
		RepairCount:      row.Repairs,
		ServiceCount:     row.Services,
	}, nil
}

type regionStatsRow struct {
	Region   *string `gorm:"column:region"`
	Distinct int64   `gorm:"column:distinct_stations"`
	Repairs  int64   `gorm:"column:repairs"`
	Services int64   `gorm:"column:services"`
}

// StatsByRegion groups the day's records by the station's *current*
// region (a join against the live stations table). A station moved to
// another region after the event is counted under the new region; this
// temporal inaccuracy matches the recorded behavior on purpose. Deleted
// stations group under NULL.
func (r *MaintenanceRepository) StatsByRegion(ctx context.Context, date, region string) ([]domain.RegionStats, error) {
	q := r.db.WithContext(ctx).
		Table("station_maintenance AS m").
		Select(`s.region AS region,
			COUNT(DISTINCT m.station_id) AS distinct_stations,
			COALESCE(SUM(CASE WHEN m.maintenance_type = ? THEN 1 ELSE 0 END), 0) AS repairs,
			COALESCE(SUM(CASE WHEN m.maintenance_type = ? THEN 1 ELSE 0 END), 0) AS services`,
			string(domain.MaintenanceRepair), string(domain.MaintenanceService)).
		Joins("LEFT JOIN stations s ON s.id = m.station_id").
		Where("m.maintenance_date = ?", date)

	if !domain.IsAll(region) {
		q = q.Where("s.region = ?", region)
	}

	var rows []regionStatsRow
	if err := q.Group("s.region").Order("s.region ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	// Unrecognized raw regions (and NULL for orphans) all fold into one
	// Unknown bucket. A station has exactly one current region, so the
	// distinct counts of merged groups never overlap and may be summed.
	out := make([]domain.RegionStats, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		bucket := domain.Unknown
		if row.Region != nil {
			bucket = domain.Region(*row.Region).Bucket()
		}
		if i, ok := index[bucket]; ok {
			out[i].DistinctStations += row.Distinct
			out[i].RepairCount += row.Repairs
			out[i].ServiceCount += row.Services
			continue
		}
		index[bucket] = len(out)
		out = append(out, domain.RegionStats{
			Region:           bucket,
			DistinctStations: row.Distinct,
			RepairCount:      row.Repairs,
			ServiceCount:     row.Services,
		})
	}
	return out, nil
}
