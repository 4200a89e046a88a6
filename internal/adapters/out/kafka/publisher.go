// Package kafka publishes domain events to the notification topic. The core
// emits events after its transactions commit; delivery failures are logged
// and dropped, never propagated back into the caller's control flow.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"freightmatch/internal/core/ports"
	"freightmatch/internal/observability"

	"github.com/segmentio/kafka-go"
)

// publishTimeout bounds one write batch against the broker.
const publishTimeout = 2 * time.Second

// messageWriter is the slice of kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher implements ports.EventPublisher on a Kafka topic.
// Messages are keyed by the load id so every event about one load lands on
// one partition and consumers see them in order.
type Publisher struct {
	writer messageWriter
	closer func() error
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to the given brokers and topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Publisher{
		writer: writer,
		closer: writer.Close,
		logger: logger.With("component", "event_publisher"),
	}
}

// Publish delivers the events to the topic. A failed delivery is logged and
// reported in the returned error, but callers ignore it by contract: the
// owning transaction has already committed.
func (p *Publisher) Publish(ctx context.Context, events ...ports.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(event)
		if err != nil {
			observability.EventsPublishedTotal.WithLabelValues(event.Type, "error").Inc()
			p.logger.ErrorContext(ctx, "failed to encode domain event", "type", event.Type, "error", err)
			return err
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(messageKey(event)),
			Value: value,
		})
	}

	writeCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, messages...); err != nil {
		for _, event := range events {
			observability.EventsPublishedTotal.WithLabelValues(event.Type, "error").Inc()
		}
		p.logger.ErrorContext(ctx, "failed to publish domain events", "count", len(events), "error", err)
		return err
	}

	for _, event := range events {
		observability.EventsPublishedTotal.WithLabelValues(event.Type, "ok").Inc()
	}

	return nil
}

// Close releases the underlying Kafka writer.
func (p *Publisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

// messageKey picks the partition key: the load id when present, otherwise
// the shipment id. Events about one load stay ordered for consumers.
func messageKey(event ports.DomainEvent) string {
	if event.LoadID != "" {
		return event.LoadID
	}
	if event.ShipmentID != "" {
		return event.ShipmentID
	}
	return event.MatchID
}
