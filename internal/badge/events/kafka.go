package events

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"badgeregistry/internal/badge/models"
)

// Producer is the slice of *kgo.Client the Kafka publisher needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// KafkaPublisher produces outbox entries to a topic. The outbox id travels as
// a header so consumers can deduplicate redeliveries.
type KafkaPublisher struct {
	producer Producer
	topic    string
}

func NewKafkaPublisher(producer Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, entry models.OutboxEntry) error {
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(entry.Key),
		Value: entry.Payload,
		Headers: []kgo.RecordHeader{
			{Key: "event_id", Value: []byte(entry.ID.String())},
			{Key: "event_type", Value: []byte(entry.EventType)},
		},
		Timestamp: entry.CreatedAt,
	}
	if err := p.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce event %s: %w", entry.ID, err)
	}
	return nil
}
