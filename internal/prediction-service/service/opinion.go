package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/repo"
	"github.com/Priyanshu0707/prediction-service/pkg/contracts/events"
)

// OpinionService registra a opinião Yes/No de um usuário contra uma prediction
type OpinionService struct {
	log         *zap.Logger
	predictions PredictionStore
	opinions    OpinionStore
	publ        Publisher
}

func NewOpinionService(log *zap.Logger, predictions PredictionStore, opinions OpinionStore, p Publisher) *OpinionService {
	return &OpinionService{log: log, predictions: predictions, opinions: opinions, publ: p}
}

// Submit roda a cadeia de pré-condições nesta ordem: existência, flag active,
// expiração e duplicata. Só depois de todas passarem a opinion é gravada
func (s *OpinionService) Submit(ctx context.Context, predictionID, userID, opinion string, amount float64) (string, error) {
	pred, err := s.predictions.GetPrediction(ctx, predictionID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrPredictionNotFound
		}
		return "", err
	}

	if !pred.Active {
		return "", ErrPredictionInactive
	}

	// expiração comparada com o relógio do processo, não o do banco
	if pred.ExpiryTime.Before(time.Now()) {
		return "", ErrPredictionExpired
	}

	exists, err := s.opinions.HasOpinion(ctx, predictionID, userID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrDuplicateOpinion
	}

	id, err := s.opinions.CreateOpinion(ctx, predictionID, userID, opinion, amount)
	if err != nil {
		// duas submissões concorrentes podem passar pelo check acima; o
		// índice único decide e o chamador recebe o mesmo erro de duplicata
		if errors.Is(err, repo.ErrDuplicate) {
			return "", ErrDuplicateOpinion
		}
		return "", err
	}

	if s.publ != nil {
		_ = s.publ.PublishOpinionPlaced(ctx, events.OpinionPlaced{
			OpinionID:    id,
			PredictionID: predictionID,
			UserID:       userID,
			Opinion:      opinion,
			Amount:       amount,
		})
	}

	return id, nil
}
