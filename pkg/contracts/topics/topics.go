package topics

const (
	// Predictions
	PredictionCreated = "prediction_created"

	// Opinions
	OpinionPlaced = "opinion_placed"
)
