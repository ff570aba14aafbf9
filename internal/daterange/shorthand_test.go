package daterange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseShorthand(t *testing.T) {
	tests := []struct {
		in     string
		amount float64
		unit   TimeUnit
	}{
		{in: "7d", amount: 7, unit: UnitDay},
		{in: "15m", amount: 15, unit: UnitMinute},
		{in: "1mo", amount: 1, unit: UnitMonth},
		{in: "2 weeks", amount: 2, unit: UnitWeek},
		{in: "1.5h", amount: 1.5, unit: UnitHour},
		{in: " 3 Years ", amount: 3, unit: UnitYear},
		{in: "-2s", amount: -2, unit: UnitSecond},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShorthand(tt.in)
			require.NoError(t, err)
			require.True(t, got.IsCustom())
			require.Equal(t, tt.amount, got.Amount.Float64())
			require.Equal(t, tt.unit, got.Unit)
			require.Equal(t, TypeRelative, got.Type)
		})
	}
}

func TestParseShorthand_Invalid(t *testing.T) {
	for _, in := range []string{"", "d", "7", "7 fortnights", "seven days"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseShorthand(in)
			require.Error(t, err)
		})
	}
}
