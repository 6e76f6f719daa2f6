package report

// Bucket is one histogram bar. Unrecognized or blank field values all
// land in a single "Unknown" bucket instead of being dropped.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Summary struct {
	Total        int      `json:"total"`
	ByRegion     []Bucket `json:"by_region"`
	ByType       []Bucket `json:"by_type"`
	ByStatus     []Bucket `json:"by_status"`
	Availability float64  `json:"availability"`
}
