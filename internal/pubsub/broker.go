package pubsub

import (
	"context"
	"sync"
	"time"
)

const defaultBufferSize = 64

// Option configures a Broker.
type Option func(*options)

type options struct {
	bufferSize int
	replay     int
}

// WithBuffer sets the per-subscriber channel size.
func WithBuffer(size int) Option {
	return func(o *options) { o.bufferSize = size }
}

// WithReplay keeps the last n events and delivers them to every new
// subscriber before live events. Useful for late listeners such as a log pane
// opened after startup.
func WithReplay(n int) Option {
	return func(o *options) { o.replay = n }
}

// Broker is a generic pub/sub event broker.
// It allows multiple subscribers to receive events published by publishers.
type Broker[T any] struct {
	subs    map[chan Event[T]]struct{}
	mu      sync.RWMutex
	done    chan struct{}
	opts    options
	history []Event[T]
}

var (
	_ Publisher[string]  = (*Broker[string])(nil)
	_ Subscriber[string] = (*Broker[string])(nil)
)

// NewBroker creates a new broker. Without options each subscriber gets a
// 64-event buffer and no history is kept.
func NewBroker[T any](opts ...Option) *Broker[T] {
	o := options{bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.replay > o.bufferSize {
		o.bufferSize = o.replay
	}
	return &Broker[T]{
		subs: make(map[chan Event[T]]struct{}),
		done: make(chan struct{}),
		opts: o,
	}
}

// Subscribe creates a new subscription channel.
// The channel is automatically closed when ctx is cancelled.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		ch := make(chan Event[T])
		close(ch)
		return ch
	default:
	}

	sub := make(chan Event[T], b.opts.bufferSize)
	for _, e := range b.history {
		sub <- e
	}
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()

		select {
		case <-b.done:
			return // Already closed
		default:
		}

		delete(b.subs, sub)
		close(sub)
	}()

	return sub
}

// Publish sends an event without a source to all subscribers.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.PublishFrom("", eventType, payload)
}

// PublishFrom sends an event tagged with source to all subscribers.
// Non-blocking: drops events if a subscriber channel is full.
func (b *Broker[T]) PublishFrom(source string, eventType EventType, payload T) {
	event := Event[T]{
		Type:      eventType,
		Source:    source,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		return
	default:
	}

	if b.opts.replay > 0 {
		b.history = append(b.history, event)
		if over := len(b.history) - b.opts.replay; over > 0 {
			b.history = append(b.history[:0], b.history[over:]...)
		}
	}

	for sub := range b.subs {
		select {
		case sub <- event:
		default:
			// Channel full - drop to prevent blocking
		}
	}
}

// Close shuts down the broker and all subscriber channels.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		return
	default:
	}

	close(b.done)
	for sub := range b.subs {
		close(sub)
	}
	b.subs = nil
	b.history = nil
}

// SubscriberCount returns the number of active subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
