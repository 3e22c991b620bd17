package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/event"
)

// KafkaPublisher implements port.EventPublisher on a kafka-go writer. One
// publisher owns one topic; events are keyed by aggregate ID so all events
// for a prediction land on the same partition.
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a Kafka event publisher for the given topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafkago.RequireAll,
		},
		logger: logger,
	}
}

// Publish sends domain events to Kafka.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafkago.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", evt.EventType(), err)
		}

		messages = append(messages, kafkago.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: payload,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(evt.EventType())},
			},
		})

		p.logger.Debug("publishing event",
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID().String()),
		)
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", p.writer.Topic, err)
	}

	return nil
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
