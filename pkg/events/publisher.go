package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	"hoteldesk/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaConfig struct {
	Brokers      []string
	Topic        string
	Source       string
	BatchTimeout time.Duration
	MaxAttempts  int
}

// KafkaPublisher writes events to a single topic keyed by record ID, so all
// changes to one record land on the same partition in order.
type KafkaPublisher struct {
	writer messageWriter
	source string
	log    *logger.Logger
	closed bool
	mu     sync.RWMutex
}

func NewKafkaPublisher(cfg KafkaConfig, log *logger.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 10 * time.Millisecond
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}

	return newKafkaPublisher(newKafkaWriter(cfg, log), cfg.Source, log), nil
}

// newKafkaWriter builds an asynchronous writer: WriteMessages only queues the
// message, and delivery failures surface through Completion.
func newKafkaWriter(cfg KafkaConfig, log *logger.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Compression:            compress.Snappy,
		MaxAttempts:            cfg.MaxAttempts,
		BatchTimeout:           cfg.BatchTimeout,
		Async:                  true,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("kafka writer error", "detail", fmt.Sprintf(msg, args...))
		}),
		Completion: func(messages []kafka.Message, err error) {
			logDelivery(log, messages, err)
		},
	}
}

func logDelivery(log *logger.Logger, messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, msg := range messages {
		log.Error("Failed to deliver record event",
			"event_id", headerValue(msg, HeaderEventID),
			"event_type", headerValue(msg, HeaderEventType),
			"record_id", string(msg.Key),
			"error", err,
		)
	}
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func newKafkaPublisher(writer messageWriter, source string, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		source: source,
		log:    log,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	if event.RecordID == "" {
		return ErrEmptyRecordID
	}

	value, err := event.encode()
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.ID, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.RecordID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.ID)},
			{Key: HeaderEventType, Value: []byte(event.Name())},
			{Key: HeaderSource, Value: []byte(p.source)},
			{Key: HeaderTimestamp, Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Name(), err)
	}

	p.log.Debug("Event queued", "event_id", event.ID, "event_type", event.Name(), "record_id", event.RecordID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// BoundedPublisher shields callers from a slow or unreachable broker. Each
// Publish runs detached from the caller's cancellation and the caller waits
// at most timeout for it; a publish still running after that is left to
// finish in the background.
type BoundedPublisher struct {
	next    Publisher
	timeout time.Duration
}

func NewBoundedPublisher(next Publisher, timeout time.Duration) *BoundedPublisher {
	return &BoundedPublisher{next: next, timeout: timeout}
}

func (p *BoundedPublisher) Publish(ctx context.Context, event Event) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- p.next.Publish(ctx, event)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("publish %s: %w", event.Name(), ctx.Err())
	}
}

func (p *BoundedPublisher) Close() error {
	return p.next.Close()
}

// NopPublisher discards every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }

// Emit publishes event and logs a failure instead of returning it: a write
// that reached the database is never reported as failed because the event
// could not be delivered.
func Emit(ctx context.Context, p Publisher, log *logger.Logger, event Event) {
	if err := p.Publish(ctx, event); err != nil {
		log.Warn("Failed to publish record event",
			"event_id", event.ID,
			"event_type", event.Name(),
			"record_id", event.RecordID,
			"error", err,
		)
	}
}
