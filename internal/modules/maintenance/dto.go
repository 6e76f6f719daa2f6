package maintenance

type RecordEventRequest struct {
	StationID int64    `json:"station_id" binding:"required"`
	Types     []string `json:"types" binding:"required"`
	Parts     string   `json:"parts"`
	Notes     string   `json:"notes"`
}
