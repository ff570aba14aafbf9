// Package i18n provides the display strings and formatters consumed by the
// form widgets. Strings are pure: formatting never mutates the bundle.
package i18n

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/zjrosen/formkit/internal/cachemanager"
	"github.com/zjrosen/formkit/internal/daterange"
)

// Strings is the bundle of labels and formatters a relative range selector renders with.
type Strings struct {
	RelativeRangeSelectionHeading          string
	CustomRelativeRangeOptionLabel         string
	CustomRelativeRangeOptionDescription   string
	CustomRelativeRangeDurationLabel       string
	CustomRelativeRangeDurationPlaceholder string
	CustomRelativeRangeUnitLabel           string

	// FormatRelativeRange renders a preset or custom value, e.g. "Last 7 days".
	FormatRelativeRange func(daterange.RelativeValue) string
	// FormatUnit renders a unit in the number agreeing with amount, e.g. "days".
	FormatUnit func(unit daterange.TimeUnit, amount daterange.Amount) string
}

var supported = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(supported)

type texts struct {
	heading, customLabel, customDescription, durationLabel, durationPlaceholder, unitLabel string
	units                                                                                  map[daterange.TimeUnit][2]string
	lastRange                                                                              string
}

var translations = map[language.Tag]texts{
	language.English: {
		heading:             "Choose a range",
		customLabel:         "Custom range",
		customDescription:   "Set a custom range in the past",
		durationLabel:       "Duration",
		durationPlaceholder: "Enter duration",
		unitLabel:           "Unit of time",
		lastRange:           "Last %[1]s %[2]s",
		units: map[daterange.TimeUnit][2]string{
			daterange.UnitSecond: {"second", "seconds"},
			daterange.UnitMinute: {"minute", "minutes"},
			daterange.UnitHour:   {"hour", "hours"},
			daterange.UnitDay:    {"day", "days"},
			daterange.UnitWeek:   {"week", "weeks"},
			daterange.UnitMonth:  {"month", "months"},
			daterange.UnitYear:   {"year", "years"},
		},
	},
	language.German: {
		heading:             "Bereich auswählen",
		customLabel:         "Benutzerdefinierter Bereich",
		customDescription:   "Einen benutzerdefinierten Bereich in der Vergangenheit festlegen",
		durationLabel:       "Dauer",
		durationPlaceholder: "Dauer eingeben",
		unitLabel:           "Zeiteinheit",
		lastRange:           "Letzte %[1]s %[2]s",
		units: map[daterange.TimeUnit][2]string{
			daterange.UnitSecond: {"Sekunde", "Sekunden"},
			daterange.UnitMinute: {"Minute", "Minuten"},
			daterange.UnitHour:   {"Stunde", "Stunden"},
			daterange.UnitDay:    {"Tag", "Tage"},
			daterange.UnitWeek:   {"Woche", "Wochen"},
			daterange.UnitMonth:  {"Monat", "Monate"},
			daterange.UnitYear:   {"Jahr", "Jahre"},
		},
	},
}

const keyLastRange = "range.last"

func unitKey(u daterange.TimeUnit) string {
	return "unit." + string(u)
}

var buildCatalog = sync.OnceValue(func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, tr := range translations {
		if err := b.SetString(tag, keyLastRange, tr.lastRange); err != nil {
			panic(fmt.Sprintf("i18n: %s %s: %v", tag, keyLastRange, err))
		}
		for unit, forms := range tr.units {
			msg := plural.Selectf(1, "%d", plural.One, forms[0], plural.Other, forms[1])
			if err := b.Set(tag, unitKey(unit), msg); err != nil {
				panic(fmt.Sprintf("i18n: %s %s: %v", tag, unit, err))
			}
		}
	}
	return b
})

// English returns the default bundle.
func English() Strings {
	return ForLanguage(language.English)
}

// bundles holds one Strings per supported language; printers are built once.
var bundles = cachemanager.NewReadThroughCache(
	cachemanager.NewInMemoryCacheManager[Strings]("i18n", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval),
	func(base language.Tag) (Strings, error) { return newStrings(base), nil },
	cachemanager.NoExpiration,
)

// ForLanguage returns the bundle best matching tag, falling back to English.
func ForLanguage(tag language.Tag) Strings {
	_, index, _ := matcher.Match(tag)
	base := supported[index]
	s, _ := bundles.Get(base.String(), base)
	return s
}

func newStrings(base language.Tag) Strings {
	tr := translations[base]
	p := message.NewPrinter(base, message.Catalog(buildCatalog()))

	formatUnit := func(unit daterange.TimeUnit, amount daterange.Amount) string {
		return p.Sprintf(unitKey(unit), pluralCount(amount))
	}

	return Strings{
		RelativeRangeSelectionHeading:          tr.heading,
		CustomRelativeRangeOptionLabel:         tr.customLabel,
		CustomRelativeRangeOptionDescription:   tr.customDescription,
		CustomRelativeRangeDurationLabel:       tr.durationLabel,
		CustomRelativeRangeDurationPlaceholder: tr.durationPlaceholder,
		CustomRelativeRangeUnitLabel:           tr.unitLabel,
		FormatUnit:                             formatUnit,
		FormatRelativeRange: func(v daterange.RelativeValue) string {
			return p.Sprintf(keyLastRange, v.Amount.String(), formatUnit(v.Unit, v.Amount))
		},
	}
}

// Lookup parses a BCP 47 name such as "en" or "de-AT" and returns its bundle.
func Lookup(name string) (Strings, error) {
	if name == "" {
		return English(), nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Strings{}, fmt.Errorf("parsing language %q: %w", name, err)
	}
	return ForLanguage(tag), nil
}

// pluralCount maps an amount onto the integer the plural rules select on.
// Empty and fractional amounts take the "other" form.
func pluralCount(amount daterange.Amount) int {
	v, ok := amount.Get()
	if !ok || v != math.Trunc(v) || math.Abs(v) > 1e9 {
		return 2
	}
	return int(math.Abs(v))
}
