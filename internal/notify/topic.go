// Package notify delivers engine notifications to subscribed observers.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Handler receives a published notification.
type Handler[T any] func(T)

// Logger interface for pluggable logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Option configures a subscription.
type Option func(*config)

type config struct {
	logged bool
}

// Logged adds debug logging around the handler.
func Logged() Option {
	return func(c *config) {
		c.logged = true
	}
}

type subscription[T any] struct {
	id uint64
	h  Handler[T]
}

// Topic is an ordered list of observers for one kind of notification.
// Handlers run synchronously on the publishing goroutine, in subscription order.
type Topic[T any] struct {
	name   string
	logger Logger

	mu     sync.RWMutex
	subs   []subscription[T]
	nextID uint64

	published metric.Int64Counter
	topicAttr metric.MeasurementOption
}

// New creates a topic. Uses the global OTel meter for metrics (no-op if not configured).
func New[T any](name string, logger Logger) (*Topic[T], error) {
	t := &Topic[T]{
		name:      name,
		logger:    logger,
		topicAttr: metric.WithAttributes(attribute.String("topic", name)),
	}

	var err error
	t.published, err = meter().Int64Counter(
		"notify.events.published",
		metric.WithDescription("Total notifications published"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating published counter: %w", err)
	}
	return t, nil
}

// Subscribe registers h and returns a function that removes it again.
func (t *Topic[T]) Subscribe(h Handler[T], opts ...Option) (unsubscribe func()) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logged && t.logger != nil {
		h = t.withLogging(h)
	}

	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscription[T]{id: id, h: h})
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, s := range t.subs {
			if s.id == id {
				t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers ev to every current subscriber.
func (t *Topic[T]) Publish(ev T) {
	t.mu.RLock()
	subs := t.subs
	t.mu.RUnlock()

	for _, s := range subs {
		s.h(ev)
	}
	t.published.Add(context.Background(), 1, t.topicAttr)
}

func (t *Topic[T]) withLogging(h Handler[T]) Handler[T] {
	return func(ev T) {
		start := time.Now()
		t.logger.Debug("delivering notification", "topic", t.name)
		h(ev)
		t.logger.Debug("notification delivered", "topic", t.name, "duration", time.Since(start))
	}
}
