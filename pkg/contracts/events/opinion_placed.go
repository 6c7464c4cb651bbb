package events

type OpinionPlaced struct {
	OpinionID    string  `json:"opinion_id"`
	PredictionID string  `json:"prediction_id"`
	UserID       string  `json:"user_id"`
	Opinion      string  `json:"opinion"` // "Yes" | "No"
	Amount       float64 `json:"amount"`
	TsUnixMs     int64   `json:"ts_unix_ms"`
}
