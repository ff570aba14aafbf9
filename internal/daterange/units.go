// Package daterange defines the relative date-range value model shared by the
// range selector, configuration, and CLI output.
package daterange

import (
	"fmt"
	"slices"
	"strings"
)

// TimeUnit is one of the fixed, ordered unit tags a relative range is measured in.
type TimeUnit string

const (
	UnitSecond TimeUnit = "second"
	UnitMinute TimeUnit = "minute"
	UnitHour   TimeUnit = "hour"
	UnitDay    TimeUnit = "day"
	UnitWeek   TimeUnit = "week"
	UnitMonth  TimeUnit = "month"
	UnitYear   TimeUnit = "year"
)

var (
	dayUnits = []TimeUnit{UnitDay, UnitWeek, UnitMonth, UnitYear}
	allUnits = []TimeUnit{UnitSecond, UnitMinute, UnitHour, UnitDay, UnitWeek, UnitMonth, UnitYear}
)

// Units returns the ordered set of units that are legal in the given mode.
// Date-only mode restricts the set to day granularity and coarser.
func Units(dateOnly bool) []TimeUnit {
	if dateOnly {
		return slices.Clone(dayUnits)
	}
	return slices.Clone(allUnits)
}

// DefaultUnit returns the unit a fresh custom range starts with.
func DefaultUnit(dateOnly bool) TimeUnit {
	if dateOnly {
		return UnitDay
	}
	return UnitMinute
}

// Valid reports whether u is one of the seven known unit tags.
func (u TimeUnit) Valid() bool {
	return slices.Contains(allUnits, u)
}

// AllowedIn reports whether u may be used in the given mode.
func (u TimeUnit) AllowedIn(dateOnly bool) bool {
	if dateOnly {
		return slices.Contains(dayUnits, u)
	}
	return u.Valid()
}

// ParseUnit converts a unit tag such as "day" into a TimeUnit.
// Matching is case-insensitive and tolerates a trailing plural "s".
func ParseUnit(s string) (TimeUnit, error) {
	u := TimeUnit(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	if !u.Valid() {
		return "", fmt.Errorf("unknown time unit %q", s)
	}
	return u, nil
}
