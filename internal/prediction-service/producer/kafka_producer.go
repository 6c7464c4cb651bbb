package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Priyanshu0707/prediction-service/pkg/contracts/events"
)

// KafkaPublisher emite os eventos de domínio do prediction-service
type KafkaPublisher struct {
	PredictionWriter *kafka.Writer
	OpinionWriter    *kafka.Writer
}

func NewKafkaPublisher(predictionWriter, opinionWriter *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{PredictionWriter: predictionWriter, OpinionWriter: opinionWriter}
}

func (p *KafkaPublisher) PublishPredictionCreated(ctx context.Context, e events.PredictionCreated) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return p.PredictionWriter.WriteMessages(ctx, kafka.Message{Key: []byte(e.PredictionID), Value: b})
}

func (p *KafkaPublisher) PublishOpinionPlaced(ctx context.Context, e events.OpinionPlaced) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return p.OpinionWriter.WriteMessages(ctx, kafka.Message{Key: []byte(e.PredictionID), Value: b})
}
