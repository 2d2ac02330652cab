// Package kafka broadcasts workflow events to a Kafka topic.
// Events ride on a single topic keyed by the aggregate id, so the hash
// balancer keeps every event about one order (or one product) on the same
// partition in emit order. The event name travels in a message header for
// consumer-side dispatch.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"distribution/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Publisher implements ports.EventPublisher on top of a kafka.Writer.
// Publish failures are returned to the caller, which treats them as
// non-fatal; the workflow never blocks on delivery.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing to the given topic.
// brokersCSV is a comma-separated broker list; empty entries are skipped.
func NewPublisher(brokersCSV, topic string) *Publisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish serializes the event payload and writes one message keyed by the
// aggregate the event is about.
func (p *Publisher) Publish(ctx context.Context, event ports.Event) error {
	data, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(messageKey(event)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Name)},
		},
		Time: time.Now().UTC(),
	})
}

// messageKey derives the partition key from the event payload: the id of the
// order or product the event describes. Unknown payload shapes fall back to
// the event name.
func messageKey(event ports.Event) string {
	switch payload := event.Payload.(type) {
	case ports.OrderPayload:
		return payload.ID
	case ports.OrderDeletedPayload:
		return payload.ID
	case ports.ProductPayload:
		return payload.ID
	default:
		return event.Name
	}
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
