package repository

import (
	"context"
	"strings"

	"radioreg/internal/domain"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

type employeeModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	TabelNumber string `gorm:"column:tabel_number;uniqueIndex"`
	LastName    string `gorm:"column:last_name"`
	FirstName   string `gorm:"column:first_name"`
	Patronymic  string `gorm:"column:patronymic"`
	Region      string `gorm:"column:region"`
	HireDate    string `gorm:"column:hire_date"`
	Position    string `gorm:"column:position"`
	Phone       string `gorm:"column:phone"`
	ContractNo  string `gorm:"column:contract_no"`
	PDFPath     string `gorm:"column:pdf_path"`
	PhotoPath   string `gorm:"column:photo_path"`
}

func (employeeModel) TableName() string { return "employees" }

func toDomainEmployee(m employeeModel) domain.Employee {
	return domain.Employee{
		ID:          m.ID,
		TabelNumber: m.TabelNumber,
		LastName:    m.LastName,
		FirstName:   m.FirstName,
		Patronymic:  m.Patronymic,
		Region:      domain.Region(m.Region),
		HireDate:    m.HireDate,
		Position:    m.Position,
		Phone:       m.Phone,
		ContractNo:  m.ContractNo,
		PDFPath:     m.PDFPath,
		PhotoPath:   m.PhotoPath,
	}
}

func toEmployeeModel(e *domain.Employee) employeeModel {
	return employeeModel{
		ID:          e.ID,
		TabelNumber: strings.TrimSpace(e.TabelNumber),
		LastName:    e.LastName,
		FirstName:   e.FirstName,
		Patronymic:  e.Patronymic,
		Region:      string(e.Region),
		HireDate:    e.HireDate,
		Position:    e.Position,
		Phone:       e.Phone,
		ContractNo:  e.ContractNo,
		PDFPath:     e.PDFPath,
		PhotoPath:   e.PhotoPath,
	}
}

// Exists reports whether a live row already uses the tabel number.
// excludeID lets an edit-in-place keep its own unchanged key.
func (r *EmployeeRepository) Exists(ctx context.Context, tabelNumber string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&employeeModel{}).
		Where("tabel_number = ?", strings.TrimSpace(tabelNumber))
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Fetch returns employees matching the search text and region filter,
// ordered by tabel number. Search is a substring match OR-ed across the
// tabel number, name parts and phone; case folding follows the store's
// LIKE semantics.
func (r *EmployeeRepository) Fetch(ctx context.Context, search, region string) ([]domain.Employee, error) {
	q := r.db.WithContext(ctx).Model(&employeeModel{})

	if !domain.IsAll(region) {
		q = q.Where("region = ?", region)
	}
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		q = q.Where(
			"tabel_number LIKE ? OR last_name LIKE ? OR first_name LIKE ? OR patronymic LIKE ? OR phone LIKE ?",
			like, like, like, like, like,
		)
	}

	var rows []employeeModel
	if err := q.Order("tabel_number ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Employee, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainEmployee(m))
	}
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var m employeeModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	e := toDomainEmployee(m)
	return &e, nil
}

// Add inserts a new employee and assigns its id. A duplicate tabel number
// fails with ErrDuplicateKey even when the caller already ran Exists.
func (r *EmployeeRepository) Add(ctx context.Context, e *domain.Employee) (int64, error) {
	m := toEmployeeModel(e)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return 0, ErrDuplicateKey
		}
		return 0, err
	}
	e.ID = m.ID
	return m.ID, nil
}

// Update replaces all mutable fields of the row, including the tabel
// number.
func (r *EmployeeRepository) Update(ctx context.Context, id int64, e *domain.Employee) error {
	m := toEmployeeModel(e)
	m.ID = id
	tx := r.db.WithContext(ctx).
		Model(&employeeModel{ID: id}).
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

// Delete removes the row permanently. Attachments on disk are left in
// place.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&employeeModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPhotoPath stores the relative path of a newly written photo. Only
// the one column changes, so a failed file write never touches the row.
func (r *EmployeeRepository) SetPhotoPath(ctx context.Context, id int64, path string) error {
	return r.setColumn(ctx, id, "photo_path", path)
}

func (r *EmployeeRepository) SetPDFPath(ctx context.Context, id int64, path string) error {
	return r.setColumn(ctx, id, "pdf_path", path)
}

func (r *EmployeeRepository) setColumn(ctx context.Context, id int64, column, value string) error {
	tx := r.db.WithContext(ctx).
		Model(&employeeModel{}).
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
