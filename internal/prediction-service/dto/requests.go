package dto

type CreatePredictionRequest struct {
	Question   string `json:"question"`
	Category   string `json:"category"`
	ExpiryTime string `json:"expiryTime"` // ISO-8601
}

type SubmitOpinionRequest struct {
	PredictionID string `json:"predictionId"`
	UserID       string `json:"userId"`
	Opinion      string `json:"opinion"` // "Yes" | "No"
	Amount       any    `json:"amount"`  // número ou string numérica; coerção após a validação
}
