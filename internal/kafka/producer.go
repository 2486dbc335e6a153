package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// RecordEventProducer sends record lifecycle events to Kafka (swappable
// with a mock in tests).
type RecordEventProducer interface {
	ProduceRecordEvent(ctx context.Context, event string, payload map[string]interface{})
}

// Producer writes complaint and fraud events to a Kafka topic
// (best-effort, never blocks the API response on failure).
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a producer. With empty brokers or topic every
// method is a no-op.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{}
	}
	return &Producer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// ProduceRecordEvent sends one event to the topic. payload carries the
// record's public id, phone number and current classification fields.
func (p *Producer) ProduceRecordEvent(ctx context.Context, event string, payload map[string]interface{}) {
	if p.writer == nil {
		return
	}
	msg := map[string]interface{}{"event": event}
	for k, v := range payload {
		msg[k] = v
	}
	body, err := json.Marshal(msg)
	if err != nil {
		slog.Error("kafka: marshal record event", "error", err)
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: body}); err != nil {
		slog.Error("kafka: write record event", "event", event, "error", err)
	}
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// ParseBrokers splits a broker list "host1:9092,host2:9092" into a slice.
func ParseBrokers(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
