package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenCmd creates a Bubble Tea command that listens for events on a channel.
// Returns the event as a tea.Msg when received, or nil once the context is
// cancelled or the channel is closed.
func ListenCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}

// ContinuousListener keeps one subscription alive across Update calls.
type ContinuousListener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewContinuousListener subscribes to sub. The subscription is cleaned up
// when ctx is cancelled.
func NewContinuousListener[T any](ctx context.Context, sub Subscriber[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{
		ctx: ctx,
		ch:  sub.Subscribe(ctx),
	}
}

// Listen returns a tea.Cmd that waits for the next event.
// Call it again from Update after handling each event to keep receiving.
func (l *ContinuousListener[T]) Listen() tea.Cmd {
	if l == nil {
		return nil
	}
	return ListenCmd(l.ctx, l.ch)
}
