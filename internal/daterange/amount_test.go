package daterange

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		text      string
		wantEmpty bool
		want      float64
	}{
		{text: "", wantEmpty: true},
		{text: "abc", wantEmpty: true},
		{text: "12", want: 12},
		{text: "-3", want: -3},
		{text: "3.5", want: 3.5},
		{text: " 7 ", want: 7},
		{text: "0", want: 0},
		{text: "-", wantEmpty: true},
		{text: "NaN", wantEmpty: true},
		{text: "inf", wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.text), func(t *testing.T) {
			got := ParseAmount(tt.text)
			if tt.wantEmpty {
				require.True(t, got.IsEmpty(), "expected empty amount for %q", tt.text)
				require.True(t, math.IsNaN(got.Float64()), "empty amount surfaces as NaN")
				return
			}
			v, ok := got.Get()
			require.True(t, ok)
			require.Equal(t, tt.want, v)
		})
	}
}

func TestParseAmount_FiniteRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Float64Range(-1e9, 1e9).Draw(rt, "v")
		got := ParseAmount(strconv.FormatFloat(v, 'f', -1, 64))
		require.True(rt, got.Equal(AmountOf(v)))
	})
}

func TestAmount_ZeroValueIsEmpty(t *testing.T) {
	var a Amount
	require.True(t, a.IsEmpty())
	require.Equal(t, "", a.String())
	require.True(t, a.Equal(EmptyAmount()))
	require.False(t, a.Equal(AmountOf(0)))
}

func TestAmount_YAMLEmptyIsNaN(t *testing.T) {
	out, err := yaml.Marshal(Custom(EmptyAmount(), UnitDay))
	require.NoError(t, err)
	require.Contains(t, string(out), "amount: .nan")

	var back RelativeValue
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.True(t, back.Amount.IsEmpty())
	require.Equal(t, UnitDay, back.Unit)
	require.Equal(t, TypeRelative, back.Type)
}
