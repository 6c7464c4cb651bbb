package events

type PredictionCreated struct {
	PredictionID string `json:"prediction_id"`
	Question     string `json:"question"`
	Category     string `json:"category"`
	ExpiryTime   string `json:"expiry_time"` // RFC3339, em UTC
	TsUnixMs     int64  `json:"ts_unix_ms"`
}
