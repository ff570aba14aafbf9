package daterange

import (
	"fmt"
	"math"
	"time"
)

// RangeType tags the kind of range a value describes.
type RangeType string

// TypeRelative is the only range type this package produces.
const TypeRelative RangeType = "relative"

// RelativeValue is the externally visible selection: a duration measured
// backwards from now. Key is set only when the value is one of the caller's
// presets.
type RelativeValue struct {
	Key    string    `yaml:"key,omitempty"`
	Amount Amount    `yaml:"amount"`
	Unit   TimeUnit  `yaml:"unit"`
	Type   RangeType `yaml:"type"`
}

// Custom builds a keyless relative value.
func Custom(amount Amount, unit TimeUnit) RelativeValue {
	return RelativeValue{Amount: amount, Unit: unit, Type: TypeRelative}
}

// IsCustom reports whether the value was authored rather than picked from a preset.
func (v RelativeValue) IsCustom() bool {
	return v.Key == ""
}

// Equal compares all fields, treating two empty amounts as equal.
func (v RelativeValue) Equal(o RelativeValue) bool {
	return v.Key == o.Key && v.Unit == o.Unit && v.Type == o.Type && v.Amount.Equal(o.Amount)
}

// Validate checks that the unit is legal for the mode.
func (v RelativeValue) Validate(dateOnly bool) error {
	if !v.Unit.Valid() {
		return fmt.Errorf("unknown time unit %q", v.Unit)
	}
	if !v.Unit.AllowedIn(dateOnly) {
		return fmt.Errorf("unit %q not allowed in date-only mode", v.Unit)
	}
	return nil
}

func (v RelativeValue) String() string {
	if v.Amount.IsEmpty() {
		return fmt.Sprintf("<empty> %s", v.Unit)
	}
	s := fmt.Sprintf("%s %s", v.Amount, v.Unit)
	if v.Key != "" {
		s += " (" + v.Key + ")"
	}
	return s
}

// maxSpanDays bounds the ranges Since resolves, about 2.7 million years.
// Longer ranges report ok=false.
const maxSpanDays = 1e9

// Since resolves the value against now and returns the start of the range.
// Seconds, minutes and hours are exact durations. Days, weeks, months and
// years follow the calendar for the whole part of the amount; fractions are
// approximated with 24 hour days, 30 day months and 365 day years.
func (v RelativeValue) Since(now time.Time) (time.Time, bool) {
	amount, ok := v.Amount.Get()
	if !ok {
		return time.Time{}, false
	}
	whole, frac := math.Modf(amount)

	switch v.Unit {
	case UnitSecond, UnitMinute, UnitHour:
		secs := amount * v.Unit.seconds()
		if math.Abs(secs) > maxSpanDays*86400 {
			return time.Time{}, false
		}
		wholeSecs, fracSecs := math.Modf(secs)
		return subSeconds(now, int64(wholeSecs)).Add(-scale(fracSecs, time.Second)), true
	case UnitDay, UnitWeek:
		days := v.Unit.seconds() / 86400
		if math.Abs(whole*days) > maxSpanDays {
			return time.Time{}, false
		}
		return now.AddDate(0, 0, -int(whole*days)).Add(-scale(frac*days, 24*time.Hour)), true
	case UnitMonth:
		if math.Abs(whole) > maxSpanDays/31 {
			return time.Time{}, false
		}
		return now.AddDate(0, -int(whole), 0).Add(-scale(frac, 30*24*time.Hour)), true
	case UnitYear:
		if math.Abs(whole) > maxSpanDays/366 {
			return time.Time{}, false
		}
		return now.AddDate(-int(whole), 0, 0).Add(-scale(frac, 365*24*time.Hour)), true
	}
	return time.Time{}, false
}

// subSeconds goes through Unix time so that spans beyond the ~292 years a
// Duration holds stay exact.
func subSeconds(t time.Time, secs int64) time.Time {
	return time.Unix(t.Unix()-secs, int64(t.Nanosecond())).In(t.Location())
}

func scale(amount float64, unit time.Duration) time.Duration {
	return time.Duration(math.Round(amount * float64(unit)))
}

// seconds is the fixed length of the unit. Months and years have none.
func (u TimeUnit) seconds() float64 {
	switch u {
	case UnitSecond:
		return 1
	case UnitMinute:
		return 60
	case UnitHour:
		return 3600
	case UnitDay:
		return 86400
	case UnitWeek:
		return 7 * 86400
	}
	return 0
}

// ReservedKey is the key the selector uses internally for its custom entry.
// No preset may use it.
const ReservedKey = "formkit-internal-custom-duration-key"

// RelativeOption is a caller-supplied preset. Keys must be unique within a
// preset list.
type RelativeOption struct {
	Key    string
	Amount float64
	Unit   TimeUnit
}

// Value returns the preset as the value the selector emits for it.
func (o RelativeOption) Value() RelativeValue {
	return RelativeValue{
		Key:    o.Key,
		Amount: AmountOf(o.Amount),
		Unit:   o.Unit,
		Type:   TypeRelative,
	}
}

// FindOption returns the preset with the given key.
func FindOption(options []RelativeOption, key string) (RelativeOption, bool) {
	for _, o := range options {
		if o.Key == key {
			return o, true
		}
	}
	return RelativeOption{}, false
}
