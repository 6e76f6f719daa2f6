package domain

// Station is a radio base station. Name is the business key, unique among
// live rows. Frequency and Power are free text; a single site may carry
// several bands ("2G, 3G, 4G (900/1800/2100)").
type Station struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name" validate:"required"`
	Location  string        `json:"location"`
	Type      StationType   `json:"type"`
	Frequency string        `json:"frequency"`
	Power     string        `json:"power"`
	Status    StationStatus `json:"status"`
	Region    Region        `json:"region"`
	Contact   string        `json:"contact"`
	// Notes is the one field a viewer may edit; everything else is
	// admin-only.
	Notes     string `json:"notes"`
	PDFPath   string `json:"pdf_path,omitempty"`
	PhotoPath string `json:"photo_path,omitempty"`
}
