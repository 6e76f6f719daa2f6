package domain

// Employee is a staff record. TabelNumber is the user-facing business key
// and must stay unique among live rows; ID is the internal row identifier.
type Employee struct {
	ID          int64  `json:"id"`
	TabelNumber string `json:"tabel_number" validate:"required"`
	LastName    string `json:"last_name"`
	FirstName   string `json:"first_name"`
	Patronymic  string `json:"patronymic"`
	Region      Region `json:"region"`
	// HireDate is free text, exactly as entered. The original data holds
	// several date spellings, so it is not parsed or validated.
	HireDate   string `json:"hire_date"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	ContractNo string `json:"contract_no"`
	PDFPath    string `json:"pdf_path,omitempty"`
	PhotoPath  string `json:"photo_path,omitempty"`
}
