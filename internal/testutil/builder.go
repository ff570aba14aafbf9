// Package testutil holds helpers shared by widget tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/formkit/internal/daterange"
)

// Builder accumulates preset options for selector tests.
type Builder struct {
	t       *testing.T
	options []daterange.RelativeOption
}

// NewBuilder creates an empty preset builder.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithPreset adds a preset with the given key, amount and unit.
func (b *Builder) WithPreset(key string, amount float64, unit daterange.TimeUnit) *Builder {
	b.options = append(b.options, daterange.RelativeOption{Key: key, Amount: amount, Unit: unit})
	return b
}

// Build validates and returns the accumulated presets.
func (b *Builder) Build() []daterange.RelativeOption {
	b.t.Helper()
	seen := make(map[string]bool, len(b.options))
	for _, o := range b.options {
		require.False(b.t, seen[o.Key], "duplicate preset key %q", o.Key)
		require.True(b.t, o.Unit.Valid(), "preset %q has unknown unit %q", o.Key, o.Unit)
		seen[o.Key] = true
	}
	return append([]daterange.RelativeOption(nil), b.options...)
}
