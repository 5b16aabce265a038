// Package mirror publishes recorded task log entries to Kafka so other
// consumers can follow runs without polling the store. The mirror is
// optional and strictly best-effort: the SQLite row is the source of
// truth and is already committed before a message is sent.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/marcverde/ansilog/internal/models"
)

// Publisher emits task log entries to a Kafka topic, keyed by
// playbook_uuid so one run stays on one partition.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher builds a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           5 * time.Second,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish sends one entry. The caller treats errors as log-and-continue.
func (p *Publisher) Publish(ctx context.Context, entry models.TaskLogEntry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal task log entry: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(entry.PlaybookUUID),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish task log entry: %w", err)
	}
	return nil
}

// Close flushes and shuts down the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
