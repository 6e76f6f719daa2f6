package domain

// FilterAll is the sentinel filter value meaning "no filtering on this
// dimension". The UI sends it verbatim; an empty string means the same.
const FilterAll = "Все"

// IsAll reports whether a filter value should match every row.
func IsAll(v string) bool {
	return v == "" || v == FilterAll
}

// Unknown is the bucket every unrecognized enum value aggregates under.
// The store persists raw strings, so imported data may carry values the
// UI never offered; aggregation must not fail on them.
const Unknown = "Unknown"

type Region string

const (
	RegionRRP      Region = "РРП"
	RegionVMKB     Region = "ВМКБ"
	RegionRUHO     Region = "РУХО"
	RegionRUSO     Region = "РУСО"
	RegionDushanbe Region = "Душанбе"
)

// Regions lists the values offered by the UI, in display order.
var Regions = []Region{RegionRRP, RegionVMKB, RegionRUHO, RegionRUSO, RegionDushanbe}

// Bucket maps a raw region value onto a known region or Unknown.
func (r Region) Bucket() string {
	for _, known := range Regions {
		if r == known {
			return string(known)
		}
	}
	return Unknown
}

type StationType string

const (
	StationBase      StationType = "Базовая"
	StationRepeater  StationType = "Ретранслятор"
	StationSatellite StationType = "Спутниковая"
	StationMobile    StationType = "Мобильная"
)

var StationTypes = []StationType{StationBase, StationRepeater, StationSatellite, StationMobile}

func (t StationType) Bucket() string {
	for _, known := range StationTypes {
		if t == known {
			return string(known)
		}
	}
	return Unknown
}

type StationStatus string

const (
	StatusActive           StationStatus = "Активна"
	StatusInactive         StationStatus = "Неактивна"
	StatusUnderMaintenance StationStatus = "На обслуживании"
	StatusReserve          StationStatus = "Резерв"
)

var StationStatuses = []StationStatus{StatusActive, StatusInactive, StatusUnderMaintenance, StatusReserve}

func (s StationStatus) Bucket() string {
	for _, known := range StationStatuses {
		if s == known {
			return string(known)
		}
	}
	return Unknown
}

type MaintenanceType string

const (
	MaintenanceRepair  MaintenanceType = "Ремонт"
	MaintenanceService MaintenanceType = "Обслуживание"
)

var MaintenanceTypes = []MaintenanceType{MaintenanceRepair, MaintenanceService}

func (t MaintenanceType) Valid() bool {
	for _, known := range MaintenanceTypes {
		if t == known {
			return true
		}
	}
	return false
}
