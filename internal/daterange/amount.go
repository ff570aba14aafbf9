package daterange

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Amount is an optional numeric duration. The zero value is empty, meaning the
// user has not entered a number yet.
//
// Externally an empty amount surfaces as NaN (Float64) and as .nan in YAML.
type Amount struct {
	value float64
	set   bool
}

// EmptyAmount returns the "no value entered" amount.
func EmptyAmount() Amount {
	return Amount{}
}

// AmountOf wraps v. NaN and infinities collapse to the empty amount.
func AmountOf(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{}
	}
	return Amount{value: v, set: true}
}

// ParseAmount parses free text from a duration field. Empty or non-numeric
// text yields the empty amount; it never fails.
func ParseAmount(text string) Amount {
	text = strings.TrimSpace(text)
	if text == "" {
		return Amount{}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Amount{}
	}
	return AmountOf(v)
}

// Get returns the number and whether one is present.
func (a Amount) Get() (float64, bool) {
	return a.value, a.set
}

// IsEmpty reports whether no number is present.
func (a Amount) IsEmpty() bool {
	return !a.set
}

// Float64 returns the number, or NaN when empty.
func (a Amount) Float64() float64 {
	if !a.set {
		return math.NaN()
	}
	return a.value
}

// Equal compares two amounts; two empty amounts are equal.
func (a Amount) Equal(b Amount) bool {
	if a.set != b.set {
		return false
	}
	return !a.set || a.value == b.value
}

// String renders the number in its shortest form, or "" when empty.
func (a Amount) String() string {
	if !a.set {
		return ""
	}
	return strconv.FormatFloat(a.value, 'f', -1, 64)
}

// MarshalYAML encodes the amount as a float, with empty as .nan.
func (a Amount) MarshalYAML() (any, error) {
	return a.Float64(), nil
}

// UnmarshalYAML accepts any YAML float, including .nan.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	var v float64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*a = AmountOf(v)
	return nil
}
