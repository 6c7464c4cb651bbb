package service

import (
	"context"
	"time"

	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/repo"
	"github.com/Priyanshu0707/prediction-service/pkg/contracts/events"
)

// PredictionStore é a visão que os serviços têm da persistência de predictions
type PredictionStore interface {
	CreatePrediction(ctx context.Context, question, category string, expiry time.Time) (string, error)
	GetPrediction(ctx context.Context, id string) (*repo.Prediction, error)
	ListActive(ctx context.Context, category string) ([]repo.Prediction, error)
}

// OpinionStore é a visão da persistência de opinions
type OpinionStore interface {
	CreateOpinion(ctx context.Context, predictionID, userID, opinion string, amount float64) (string, error)
	HasOpinion(ctx context.Context, predictionID, userID string) (bool, error)
}

// Publisher emite eventos de domínio após escritas bem-sucedidas
type Publisher interface {
	PublishPredictionCreated(ctx context.Context, e events.PredictionCreated) error
	PublishOpinionPlaced(ctx context.Context, e events.OpinionPlaced) error
}
