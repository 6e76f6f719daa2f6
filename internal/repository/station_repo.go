package repository

import (
	"context"
	"strings"

	"radioreg/internal/domain"

	"gorm.io/gorm"
)

type StationRepository struct {
	db *gorm.DB
}

func NewStationRepository(db *gorm.DB) *StationRepository {
	return &StationRepository{db: db}
}

type stationModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name;uniqueIndex"`
	Location  string `gorm:"column:location"`
	Type      string `gorm:"column:type"`
	Frequency string `gorm:"column:frequency"`
	Power     string `gorm:"column:power"`
	Status    string `gorm:"column:status"`
	Contact   string `gorm:"column:contact"`
	Notes     string `gorm:"column:notes"`
	Region    string `gorm:"column:region"`
	PDFPath   string `gorm:"column:pdf_path"`
	PhotoPath string `gorm:"column:photo_path"`
}

func (stationModel) TableName() string { return "stations" }

func toDomainStation(m stationModel) domain.Station {
	return domain.Station{
		ID:        m.ID,
		Name:      m.Name,
		Location:  m.Location,
		Type:      domain.StationType(m.Type),
		Frequency: m.Frequency,
		Power:     m.Power,
		Status:    domain.StationStatus(m.Status),
		Region:    domain.Region(m.Region),
		Contact:   m.Contact,
		Notes:     m.Notes,
		PDFPath:   m.PDFPath,
		PhotoPath: m.PhotoPath,
	}
}

func toStationModel(s *domain.Station) stationModel {
	return stationModel{
		ID:        s.ID,
		Name:      strings.TrimSpace(s.Name),
		Location:  s.Location,
		Type:      string(s.Type),
		Frequency: s.Frequency,
		Power:     s.Power,
		Status:    string(s.Status),
		Contact:   s.Contact,
		Notes:     s.Notes,
		Region:    string(s.Region),
		PDFPath:   s.PDFPath,
		PhotoPath: s.PhotoPath,
	}
}

// Exists reports whether a live station already uses the name.
func (r *StationRepository) Exists(ctx context.Context, name string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&stationModel{}).
		Where("name = ?", strings.TrimSpace(name))
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Fetch returns stations matching the search text and region filter,
// ordered by name. Search OR-matches name, location, contact and notes.
func (r *StationRepository) Fetch(ctx context.Context, search, region string) ([]domain.Station, error) {
	q := r.db.WithContext(ctx).Model(&stationModel{})

	if !domain.IsAll(region) {
		q = q.Where("region = ?", region)
	}
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		q = q.Where(
			"name LIKE ? OR location LIKE ? OR contact LIKE ? OR notes LIKE ?",
			like, like, like, like,
		)
	}

	var rows []stationModel
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Station, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainStation(m))
	}
	return out, nil
}

// All returns every station ordered by name; the reporting view-model
// aggregates over this set.
func (r *StationRepository) All(ctx context.Context) ([]domain.Station, error) {
	return r.Fetch(ctx, "", "")
}

func (r *StationRepository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	var m stationModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s := toDomainStation(m)
	return &s, nil
}

func (r *StationRepository) Add(ctx context.Context, s *domain.Station) (int64, error) {
	m := toStationModel(s)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return 0, ErrDuplicateKey
		}
		return 0, err
	}
	s.ID = m.ID
	return m.ID, nil
}

func (r *StationRepository) Update(ctx context.Context, id int64, s *domain.Station) error {
	m := toStationModel(s)
	m.ID = id
	tx := r.db.WithContext(ctx).
		Model(&stationModel{ID: id}).
		Select("*").Omit("id").
		Updates(&m)
	if tx.Error != nil {
		if isDuplicateKey(tx.Error) {
			return ErrDuplicateKey
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the station permanently. Maintenance records keep their
// station_id and become orphans; the FK is deliberately unenforced.
func (r *StationRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&stationModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateNotes changes only the notes column. Notes is the one field a
// viewer may edit.
func (r *StationRepository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	return r.setColumn(ctx, id, "notes", notes)
}

func (r *StationRepository) SetPhotoPath(ctx context.Context, id int64, path string) error {
	return r.setColumn(ctx, id, "photo_path", path)
}

func (r *StationRepository) SetPDFPath(ctx context.Context, id int64, path string) error {
	return r.setColumn(ctx, id, "pdf_path", path)
}

func (r *StationRepository) setColumn(ctx context.Context, id int64, column, value string) error {
	tx := r.db.WithContext(ctx).
		Model(&stationModel{}).
		Where("id = ?", id).
		Update(column, value)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
