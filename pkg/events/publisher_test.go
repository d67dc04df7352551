package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk/pkg/logger"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "hoteldesk", logger.Nop())

	event := New(Created, "expense", "65a000000000000000000001", map[string]any{"expenseName": "Linen"})
	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, "65a000000000000000000001", string(msg.Key))
	assert.Equal(t, event.ID, header(msg, HeaderEventID))
	assert.Equal(t, "expense.created", header(msg, HeaderEventType))
	assert.Equal(t, "hoteldesk", header(msg, HeaderSource))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "created", decoded["type"])
	assert.Equal(t, "expense", decoded["resource"])
	assert.Equal(t, "Linen", decoded["record"].(map[string]any)["expenseName"])
}

func TestKafkaPublisher_DeleteOmitsRecord(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "hoteldesk", logger.Nop())

	require.NoError(t, p.Publish(context.Background(), New(Deleted, "booking", "65a000000000000000000002", nil)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &decoded))
	assert.NotContains(t, decoded, "record")
}

func TestKafkaPublisher_Errors(t *testing.T) {
	t.Run("empty record id", func(t *testing.T) {
		p := newKafkaPublisher(&fakeWriter{}, "hoteldesk", logger.Nop())
		err := p.Publish(context.Background(), New(Created, "booking", "", nil))
		assert.ErrorIs(t, err, ErrEmptyRecordID)
	})

	t.Run("writer failure is wrapped", func(t *testing.T) {
		broker := errors.New("broker unavailable")
		p := newKafkaPublisher(&fakeWriter{err: broker}, "hoteldesk", logger.Nop())
		err := p.Publish(context.Background(), New(Created, "booking", "abc", nil))
		assert.ErrorIs(t, err, broker)
	})

	t.Run("closed publisher", func(t *testing.T) {
		w := &fakeWriter{}
		p := newKafkaPublisher(w, "hoteldesk", logger.Nop())
		require.NoError(t, p.Close())
		require.NoError(t, p.Close())
		assert.True(t, w.closed)

		err := p.Publish(context.Background(), New(Created, "booking", "abc", nil))
		assert.ErrorIs(t, err, ErrPublisherClosed)
	})
}

func TestNewKafkaPublisher_RequiresBrokersAndTopic(t *testing.T) {
	_, err := NewKafkaPublisher(KafkaConfig{Topic: "t"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewKafkaPublisher(KafkaConfig{Brokers: []string{"localhost:9092"}}, logger.Nop())
	assert.Error(t, err)

	p, err := NewKafkaPublisher(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "t"}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), New(Created, "booking", "abc", nil)))
	assert.NoError(t, p.Close())
}

func TestEmit_SwallowsPublishFailure(t *testing.T) {
	p := newKafkaPublisher(&fakeWriter{err: errors.New("down")}, "hoteldesk", logger.Nop())

	assert.NotPanics(t, func() {
		Emit(context.Background(), p, logger.Nop(), New(Updated, "inventory", "abc", nil))
	})
}

func TestNewKafkaWriter_QueuesAsynchronously(t *testing.T) {
	w := newKafkaWriter(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "t"}, logger.Nop())
	defer w.Close()

	assert.True(t, w.Async)
	assert.NotNil(t, w.Completion)
	assert.Equal(t, kafka.RequireAll, w.RequiredAcks)
}

func TestLogDelivery_ReportsEachFailedMessage(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Output: &buf})

	msg := kafka.Message{
		Key: []byte("65a000000000000000000001"),
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte("evt-1")},
			{Key: HeaderEventType, Value: []byte("booking.created")},
		},
	}

	logDelivery(log, []kafka.Message{msg}, nil)
	assert.Empty(t, buf.String())

	logDelivery(log, []kafka.Message{msg}, errors.New("leader not available"))
	out := buf.String()
	assert.Contains(t, out, `"event_id":"evt-1"`)
	assert.Contains(t, out, `"event_type":"booking.created"`)
	assert.Contains(t, out, `"record_id":"65a000000000000000000001"`)
	assert.Contains(t, out, "leader not available")
}

// stuckPublisher never returns until released, whatever its context says.
type stuckPublisher struct {
	release chan struct{}
	gotCtx  chan context.Context
}

func newStuckPublisher() *stuckPublisher {
	return &stuckPublisher{release: make(chan struct{}), gotCtx: make(chan context.Context, 1)}
}

func (p *stuckPublisher) Publish(ctx context.Context, _ Event) error {
	p.gotCtx <- ctx
	<-p.release
	return nil
}

func (p *stuckPublisher) Close() error { return nil }

func TestBoundedPublisher_StopsWaitingAtTimeout(t *testing.T) {
	next := newStuckPublisher()
	defer close(next.release)
	p := NewBoundedPublisher(next, 20*time.Millisecond)

	start := time.Now()
	err := p.Publish(context.Background(), New(Created, "booking", "abc", nil))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestBoundedPublisher_IgnoresCallerCancellation(t *testing.T) {
	w := &fakeWriter{}
	p := NewBoundedPublisher(newKafkaPublisher(w, "hoteldesk", logger.Nop()), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Publish(ctx, New(Deleted, "salary", "abc", nil)))
	assert.Len(t, w.messages, 1)
}

func TestBoundedPublisher_ContextHasDeadline(t *testing.T) {
	next := newStuckPublisher()
	close(next.release)
	p := NewBoundedPublisher(next, time.Second)

	require.NoError(t, p.Publish(context.Background(), New(Created, "booking", "abc", nil)))

	ctx := <-next.gotCtx
	_, ok := ctx.Deadline()
	assert.True(t, ok)
}

func TestBoundedPublisher_PassesErrorsAndClose(t *testing.T) {
	broker := errors.New("broker unavailable")
	w := &fakeWriter{err: broker}
	p := NewBoundedPublisher(newKafkaPublisher(w, "hoteldesk", logger.Nop()), time.Second)

	assert.ErrorIs(t, p.Publish(context.Background(), New(Created, "booking", "abc", nil)), broker)
	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
