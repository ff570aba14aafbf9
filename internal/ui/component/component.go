// Package component holds the plumbing shared by all form widgets: unique
// ids for mouse zones and the focus contract parents use to move focus into
// a widget.
package component

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Focusable is the imperative handle a parent form holds for a child widget.
// Focus may return a command (e.g. a cursor blink) and is a no-op when the
// widget has nothing focusable.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// NewID returns a unique id with the given prefix, suitable as a bubblezone id.
func NewID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

// ChildID derives a stable id for a part of a widget.
func ChildID(parent, part string) string {
	return parent + ":" + part
}

// NextIndex moves delta steps around a ring of n focus targets, wrapping at
// both ends. A current index of -1 enters the ring at the first (delta > 0)
// or last (delta < 0) target.
func NextIndex(current, n, delta int) int {
	if n <= 0 {
		return -1
	}
	if current < 0 || current >= n {
		if delta < 0 {
			return n - 1
		}
		return 0
	}
	return ((current+delta)%n + n) % n
}
