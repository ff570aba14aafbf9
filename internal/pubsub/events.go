// Package pubsub fans events out from widgets, the logger and the config
// watcher to any number of Bubble Tea listeners.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// LoggedEvent carries a formatted log line.
	LoggedEvent EventType = "logged"
	// ChangedEvent carries a value emitted by a form widget.
	ChangedEvent EventType = "changed"
	// ReloadedEvent signals that configuration was re-read from disk.
	ReloadedEvent EventType = "reloaded"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Source    string // Id of the publishing component, if any
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
	PublishFrom(source string, eventType EventType, payload T)
}
