package repo

import "time"

// Prediction é o documento persistido na tabela predictions.
type Prediction struct {
	ID         string
	Question   string
	Category   string
	ExpiryTime time.Time
	Active     bool
	CreatedAt  *time.Time // carimbado pelo banco
}

// Opinion é o documento persistido na tabela opinions.
type Opinion struct {
	ID           string
	PredictionID string
	UserID       string
	Opinion      string // "Yes" | "No"
	Amount       float64
	CreatedAt    *time.Time
}
