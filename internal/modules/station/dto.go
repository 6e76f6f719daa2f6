package station

import "radioreg/internal/domain"

type UpsertStationRequest struct {
	Name      string `json:"name" validate:"required"`
	Location  string `json:"location"`
	Type      string `json:"type"`
	Frequency string `json:"frequency"`
	Power     string `json:"power"`
	Status    string `json:"status"`
	Region    string `json:"region"`
	Contact   string `json:"contact"`
	Notes     string `json:"notes"`
}

func (r UpsertStationRequest) toDomain() domain.Station {
	return domain.Station{
		Name:      r.Name,
		Location:  r.Location,
		Type:      domain.StationType(r.Type),
		Frequency: r.Frequency,
		Power:     r.Power,
		Status:    domain.StationStatus(r.Status),
		Region:    domain.Region(r.Region),
		Contact:   r.Contact,
		Notes:     r.Notes,
	}
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// ImportSummary reports one bulk-import run. Duplicates are skipped, not
// overwritten, and rows without a name count as skipped too.
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}
