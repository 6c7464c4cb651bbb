package dto

import "time"

type CreatePredictionResponse struct {
	PredictionID string `json:"predictionId"`
	Message      string `json:"message"`
}

type SubmitOpinionResponse struct {
	OpinionID string `json:"opinionId"`
	Message   string `json:"message"`
}

// PredictionItem é o formato de cada prediction na listagem
type PredictionItem struct {
	ID         string     `json:"id"`
	Question   string     `json:"question"`
	Category   string     `json:"category"`
	ExpiryTime time.Time  `json:"expiryTime"`
	CreatedAt  *time.Time `json:"createdAt"` // null enquanto o banco não carimbou
}

type ListPredictionsResponse struct {
	Predictions []PredictionItem `json:"predictions"`
}
