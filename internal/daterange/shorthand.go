package daterange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var shorthandRe = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*([a-z]+)$`)

var unitAliases = map[string]TimeUnit{
	"s": UnitSecond, "sec": UnitSecond, "secs": UnitSecond, "second": UnitSecond, "seconds": UnitSecond,
	"m": UnitMinute, "min": UnitMinute, "mins": UnitMinute, "minute": UnitMinute, "minutes": UnitMinute,
	"h": UnitHour, "hr": UnitHour, "hrs": UnitHour, "hour": UnitHour, "hours": UnitHour,
	"d": UnitDay, "day": UnitDay, "days": UnitDay,
	"w": UnitWeek, "wk": UnitWeek, "wks": UnitWeek, "week": UnitWeek, "weeks": UnitWeek,
	"mo": UnitMonth, "mon": UnitMonth, "month": UnitMonth, "months": UnitMonth,
	"y": UnitYear, "yr": UnitYear, "yrs": UnitYear, "year": UnitYear, "years": UnitYear,
}

// ParseShorthand parses expressions like "7d", "2w", "1mo" or "15 minutes"
// into a custom relative value.
func ParseShorthand(s string) (RelativeValue, error) {
	m := shorthandRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return RelativeValue{}, fmt.Errorf("invalid relative range %q (use e.g. 15m, 7d, 2w, 1mo)", s)
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return RelativeValue{}, fmt.Errorf("invalid amount in %q: %w", s, err)
	}
	unit, ok := unitAliases[m[2]]
	if !ok {
		return RelativeValue{}, fmt.Errorf("unknown time unit %q in %q", m[2], s)
	}
	return Custom(AmountOf(n), unit), nil
}
