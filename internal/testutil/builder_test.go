package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/formkit/internal/daterange"
)

func TestBuilder_WithPreset(t *testing.T) {
	opts := NewBuilder(t).
		WithPreset("last-2-days", 2, daterange.UnitDay).
		Build()

	require.Len(t, opts, 1)
	require.Equal(t, "last-2-days", opts[0].Key)
	require.Equal(t, 2.0, opts[0].Amount)
	require.Equal(t, daterange.UnitDay, opts[0].Unit)
}

func TestBuilder_StandardPresets(t *testing.T) {
	opts := NewBuilder(t).WithStandardPresets().Build()
	require.Len(t, opts, 4)

	for _, o := range NewBuilder(t).WithDatePresets().Build() {
		require.True(t, o.Unit.AllowedIn(true), "%s should be legal in date-only mode", o.Key)
	}
}

func TestKeys(t *testing.T) {
	msgs := Keys("1 d")
	require.Len(t, msgs, 3)
	require.Equal(t, "1", msgs[0].String())
	require.Equal(t, " ", msgs[1].String())
}
