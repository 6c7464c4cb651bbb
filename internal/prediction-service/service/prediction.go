package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	pcache "github.com/Priyanshu0707/prediction-service/internal/prediction-service/cache"
	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/dto"
	"github.com/Priyanshu0707/prediction-service/pkg/contracts/events"
)

const listingTTL = 30 * time.Second

// PredictionService cria e lista predictions
type PredictionService struct {
	log   *zap.Logger
	store PredictionStore
	cache *pcache.Cache
	publ  Publisher
}

func NewPredictionService(log *zap.Logger, store PredictionStore, c *pcache.Cache, p Publisher) *PredictionService {
	return &PredictionService{log: log, store: store, cache: c, publ: p}
}

// Create registra uma nova prediction ativa e devolve o id gerado
func (s *PredictionService) Create(ctx context.Context, question, category string, expiry time.Time) (string, error) {
	id, err := s.store.CreatePrediction(ctx, question, category, expiry)
	if err != nil {
		return "", err
	}

	if err := s.cache.Invalidate(ctx, category); err != nil {
		s.log.Warn("invalidate listing cache", zap.Error(err))
	}

	if s.publ != nil {
		_ = s.publ.PublishPredictionCreated(ctx, events.PredictionCreated{
			PredictionID: id,
			Question:     question,
			Category:     category,
			ExpiryTime:   expiry.UTC().Format(time.RFC3339),
		})
	}

	return id, nil
}

// ListActive devolve as predictions ativas, com filtro opcional de categoria
// por igualdade exata. Leitura passa pelo cache de listagem; criação invalida
func (s *PredictionService) ListActive(ctx context.Context, category string) ([]dto.PredictionItem, error) {
	var cached []dto.PredictionItem
	if ok, _ := s.cache.Get(ctx, category, &cached); ok {
		return cached, nil
	}

	preds, err := s.store.ListActive(ctx, category)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PredictionItem, 0, len(preds))
	for _, p := range preds {
		out = append(out, dto.PredictionItem{
			ID:         p.ID,
			Question:   p.Question,
			Category:   p.Category,
			ExpiryTime: p.ExpiryTime,
			CreatedAt:  p.CreatedAt,
		})
	}

	if err := s.cache.Set(ctx, category, out, listingTTL); err != nil {
		s.log.Warn("set listing cache", zap.Error(err))
	}

	return out, nil
}
