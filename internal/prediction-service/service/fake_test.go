package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Priyanshu0707/prediction-service/internal/prediction-service/repo"
	"github.com/Priyanshu0707/prediction-service/pkg/contracts/events"
)

// fakeStore guarda tudo em memória e implementa PredictionStore e OpinionStore
type fakeStore struct {
	predictions map[string]repo.Prediction
	opinions    map[string]repo.Opinion

	failAll     bool // força erro de armazenamento genérico
	dupOnCreate bool // simula o índice único perdendo a corrida do check
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		predictions: map[string]repo.Prediction{},
		opinions:    map[string]repo.Opinion{},
	}
}

var errStorage = errors.New("storage down")

func (f *fakeStore) CreatePrediction(_ context.Context, question, category string, expiry time.Time) (string, error) {
	if f.failAll {
		return "", errStorage
	}
	id := uuid.NewString()
	now := time.Now()
	f.predictions[id] = repo.Prediction{
		ID:         id,
		Question:   question,
		Category:   category,
		ExpiryTime: expiry,
		Active:     true,
		CreatedAt:  &now,
	}
	return id, nil
}

func (f *fakeStore) GetPrediction(_ context.Context, id string) (*repo.Prediction, error) {
	if f.failAll {
		return nil, errStorage
	}
	p, ok := f.predictions[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) ListActive(_ context.Context, category string) ([]repo.Prediction, error) {
	if f.failAll {
		return nil, errStorage
	}
	var out []repo.Prediction
	for _, p := range f.predictions {
		if !p.Active {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) HasOpinion(_ context.Context, predictionID, userID string) (bool, error) {
	if f.failAll {
		return false, errStorage
	}
	for _, o := range f.opinions {
		if o.PredictionID == predictionID && o.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateOpinion(_ context.Context, predictionID, userID, opinion string, amount float64) (string, error) {
	if f.failAll {
		return "", errStorage
	}
	if f.dupOnCreate {
		return "", repo.ErrDuplicate
	}
	for _, o := range f.opinions {
		if o.PredictionID == predictionID && o.UserID == userID {
			return "", repo.ErrDuplicate
		}
	}
	id := uuid.NewString()
	now := time.Now()
	f.opinions[id] = repo.Opinion{
		ID:           id,
		PredictionID: predictionID,
		UserID:       userID,
		Opinion:      opinion,
		Amount:       amount,
		CreatedAt:    &now,
	}
	return id, nil
}

// fakePublisher captura os eventos emitidos
type fakePublisher struct {
	created []events.PredictionCreated
	placed  []events.OpinionPlaced
}

func (f *fakePublisher) PublishPredictionCreated(_ context.Context, e events.PredictionCreated) error {
	f.created = append(f.created, e)
	return nil
}

func (f *fakePublisher) PublishOpinionPlaced(_ context.Context, e events.OpinionPlaced) error {
	f.placed = append(f.placed, e)
	return nil
}
