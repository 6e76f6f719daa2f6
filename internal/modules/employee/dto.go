package employee

import "radioreg/internal/domain"

// UpsertEmployeeRequest carries every form field by name. Field order in
// the payload is irrelevant; there are no positional tuples anywhere.
type UpsertEmployeeRequest struct {
	TabelNumber string `json:"tabel_number" validate:"required"`
	LastName    string `json:"last_name"`
	FirstName   string `json:"first_name"`
	Patronymic  string `json:"patronymic"`
	Region      string `json:"region"`
	HireDate    string `json:"hire_date"`
	Position    string `json:"position"`
	Phone       string `json:"phone"`
	ContractNo  string `json:"contract_no"`
}

func (r UpsertEmployeeRequest) toDomain() domain.Employee {
	return domain.Employee{
		TabelNumber: r.TabelNumber,
		LastName:    r.LastName,
		FirstName:   r.FirstName,
		Patronymic:  r.Patronymic,
		Region:      domain.Region(r.Region),
		HireDate:    r.HireDate,
		Position:    r.Position,
		Phone:       r.Phone,
		ContractNo:  r.ContractNo,
	}
}
