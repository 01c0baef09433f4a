package repository

import (
	"context"
	"fmt"

	pkgkafka "TronLens/pkg/kafka"
	applogger "TronLens/pkg/logger"
)

// EventProducer is the part of pkg/kafka.Producer the log sink needs.
type EventProducer interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
	PublishBatch(ctx context.Context, topic string, messages []pkgkafka.Message) error
}

// KafkaLogPublisher ships aggregated warn/error logs to a Kafka topic, one
// message per entry keyed by level.
type KafkaLogPublisher struct {
	producer EventProducer
	service  string
}

func NewKafkaLogPublisher(p EventProducer, service string) *KafkaLogPublisher {
	return &KafkaLogPublisher{producer: p, service: service}
}

type logEvent struct {
	Service string `json:"service"`
	applogger.AggregatedLogEntry
}

func (p *KafkaLogPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	switch v := payload.(type) {
	case []applogger.AggregatedLogEntry:
		if len(v) == 0 {
			return nil
		}
		msgs := make([]pkgkafka.Message, 0, len(v))
		for _, e := range v {
			msgs = append(msgs, pkgkafka.Message{
				Key:   []byte(e.Level),
				Value: logEvent{Service: p.service, AggregatedLogEntry: e},
			})
		}
		if err := p.producer.PublishBatch(ctx, topic, msgs); err != nil {
			return fmt.Errorf("publish %d log entries: %w", len(msgs), err)
		}
		return nil
	default:
		if err := p.producer.Publish(ctx, topic, nil, payload); err != nil {
			return fmt.Errorf("publish log payload: %w", err)
		}
		return nil
	}
}

var _ applogger.Publisher = (*KafkaLogPublisher)(nil)
