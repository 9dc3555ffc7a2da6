package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"roomly/pkg/logger"
)

var ErrPublisherClosed = errors.New("publisher is closed")

// Publisher emits domain events after successful writes. Publishing is
// best-effort from the caller's point of view: a failed publish never fails
// the request that produced the state change.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	source string
	mu     sync.RWMutex
	closed bool
}

func NewKafkaPublisher(cfg *Config, source string, log *logger.Logger) (Publisher, error) {
	if !cfg.Enabled() {
		return nil, errors.New("at least one broker is required")
	}

	var requiredAcks kafka.RequiredAcks
	switch cfg.RequireAcks {
	case 0:
		requiredAcks = kafka.RequireNone
	case 1:
		requiredAcks = kafka.RequireOne
	default:
		requiredAcks = kafka.RequireAll
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{}, // hash by key keeps per-room ordering
		RequiredAcks: requiredAcks,
		MaxAttempts:  cfg.MaxAttempts,
		BatchTimeout: cfg.BatchTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error(fmt.Sprintf("kafka: "+msg, args...))
		}),
	}

	log.Info("Kafka event publisher initialized", "topic", cfg.Topic, "brokers", cfg.Brokers)

	return &kafkaPublisher{
		writer: writer,
		source: source,
	}, nil
}

func (p *kafkaPublisher) Publish(ctx context.Context, eventType, key string, payload any) error {
	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		return ErrPublisherClosed
	}

	if key == "" {
		return errors.New("message key cannot be empty")
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(uuid.NewString())},
			{Key: HeaderEventType, Value: []byte(eventType)},
			{Key: HeaderSource, Value: []byte(p.source)},
			{Key: HeaderTimestamp, Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) error { return nil }
func (NopPublisher) Close() error                                       { return nil }
