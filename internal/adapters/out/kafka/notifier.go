// Package kafka publishes workflow notifications to a Kafka topic. Delivery
// is best effort: the state change has already committed by the time a
// notification is published, so failures are logged and swallowed.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"recycling/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// writeTimeout bounds a single publish so a slow broker cannot hold the
// request goroutine.
const writeTimeout = 5 * time.Second

// Notifier implements ports.Notifier on a kafka-go writer.
type Notifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewNotifier creates a notifier publishing to the given topic.
func NewNotifier(host, topic string, logger *slog.Logger) *Notifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(host),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return &Notifier{writer: writer, logger: logger}
}

// Publish sends the notification keyed by transport order so all events of
// one order land in the same partition.
func (n *Notifier) Publish(ctx context.Context, notification ports.Notification) {
	data, err := json.Marshal(notification)
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to marshal notification",
			"event", notification.Event, "error", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(notification.TransportOrderID),
		Value: data,
		Time:  notification.OccurredAt,
	}
	if err := n.writer.WriteMessages(writeCtx, msg); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish notification",
			"event", notification.Event,
			"transport_order_id", notification.TransportOrderID,
			"error", err)
	}
}

// Close releases the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}

// NoopNotifier discards notifications. Used when no broker is configured.
type NoopNotifier struct{}

// Publish does nothing.
func (NoopNotifier) Publish(context.Context, ports.Notification) {}
