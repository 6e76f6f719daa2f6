package domain

import "time"

// DateLayout is the calendar-day format maintenance dates are stored in.
const DateLayout = "2006-01-02"

// OrphanStationLabel is shown for records whose station was deleted after
// the event was logged. The FK is deliberately unenforced, so such rows
// stay queryable.
const OrphanStationLabel = "(станция удалена)"

// MaintenanceRecord is one entry of the append-only service journal.
// Repeated events for the same station and day are all kept; the journal
// is a log, not a current-state table.
type MaintenanceRecord struct {
	ID        int64           `json:"id"`
	StationID int64           `json:"station_id"`
	Date      string          `json:"date"`
	Type      MaintenanceType `json:"type"`
	Parts     string          `json:"parts_replaced"`
	Notes     string          `json:"notes"`
	// UserLabel is the acting user's display string (a role label, not a
	// real identity).
	UserLabel string    `json:"user_label"`
	CreatedAt time.Time `json:"created_at"`

	// Joined from the live stations table; empty when the station is gone.
	StationName   string `json:"station_name,omitempty"`
	StationRegion Region `json:"station_region,omitempty"`
}

// DailyStats aggregates the journal for a single calendar day.
// A station serviced with both types that day counts once toward
// DistinctStations and contributes to both per-type counts.
type DailyStats struct {
	Date             string `json:"date"`
	DistinctStations int64  `json:"distinct_stations_serviced"`
	RepairCount      int64  `json:"repair_count"`
	ServiceCount     int64  `json:"service_count"`
}

// RegionStats is DailyStats grouped by the station's *current* region.
// Records whose station changed region after the event are attributed to
// the new region; records of deleted stations land in the Unknown bucket.
type RegionStats struct {
	Region           string `json:"region"`
	DistinctStations int64  `json:"distinct_stations_serviced"`
	RepairCount      int64  `json:"repair_count"`
	ServiceCount     int64  `json:"service_count"`
}
