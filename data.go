package locale

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var dayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// NumberSymbols are the localized number symbols of a numbering system.
type NumberSymbols struct {
	Decimal       string
	Group         string
	List          string
	PercentSign   string
	PerMille      string
	PlusSign      string
	MinusSign     string
	Exponential   string
	Infinity      string
	NaN           string
	TimeSeparator string
}

var defaultSymbols = NumberSymbols{
	Decimal:       ".",
	Group:         ",",
	List:          ";",
	PercentSign:   "%",
	PerMille:      "‰",
	PlusSign:      "+",
	MinusSign:     "-",
	Exponential:   "E",
	Infinity:      "∞",
	NaN:           "NaN",
	TimeSeparator: ":",
}

// TimeZoneNames are the localized GMT offset formats.
type TimeZoneNames struct {
	HourFormat    string
	GMTFormat     string
	GMTZeroFormat string
}

// Locale binds a culture to its CLDR document. It is read-only after construction and safe for
// concurrent use.
type Locale struct {
	Tag             language.Tag
	Calendar        string
	NumberingSystem string
	Currency        string // ISO 4217 code

	doc     Document
	digits  DigitTable
	symbols NumberSymbols
}

// NewLocale returns the locale for a culture document. The default currency is derived from the
// tag's region and falls back to USD.
func NewLocale(tag language.Tag, doc Document) (*Locale, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: %v: no document", ErrUnknownCulture, tag)
	}

	l := &Locale{
		Tag:             tag,
		Calendar:        "gregorian",
		NumberingSystem: "latn",
		Currency:        "USD",
		doc:             doc,
	}
	if sys, ok := doc.String("numbers.defaultNumberingSystem"); ok && sys != "" {
		l.NumberingSystem = sys
	}
	if unit, conf := currency.FromTag(tag); conf != language.No {
		l.Currency = unit.String()
	}

	digits, ok := doc.String("numbers.numberingSystems." + l.NumberingSystem + "._digits")
	if !ok {
		if digits, ok = numberingSystems[l.NumberingSystem]; !ok {
			return nil, fmt.Errorf("%w: %v: unsupported numbering system %v", ErrUnknownCulture, tag, l.NumberingSystem)
		}
	}
	var err error
	if l.digits, err = newDigitTable(l.NumberingSystem, digits); err != nil {
		return nil, err
	}

	l.symbols = defaultSymbols
	for _, sys := range []string{"latn", l.NumberingSystem} {
		symbols := doc.Strings("numbers.symbols-numberSystem-" + sys)
		for key, dst := range map[string]*string{
			"decimal":       &l.symbols.Decimal,
			"group":         &l.symbols.Group,
			"list":          &l.symbols.List,
			"percentSign":   &l.symbols.PercentSign,
			"perMille":      &l.symbols.PerMille,
			"plusSign":      &l.symbols.PlusSign,
			"minusSign":     &l.symbols.MinusSign,
			"exponential":   &l.symbols.Exponential,
			"infinity":      &l.symbols.Infinity,
			"nan":           &l.symbols.NaN,
			"timeSeparator": &l.symbols.TimeSeparator,
		} {
			if s := symbols[key]; s != "" {
				*dst = s
			}
		}
	}
	return l, nil
}

// WithCurrency returns a copy of the locale using another default currency.
func (l *Locale) WithCurrency(code string) (*Locale, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurrency, code)
	}
	c := *l
	c.Currency = unit.String()
	return &c, nil
}

func (l *Locale) Document() Document {
	return l.doc
}

func (l *Locale) Digits() DigitTable {
	return l.digits
}

func (l *Locale) Symbols() NumberSymbols {
	return l.symbols
}

func (l *Locale) calendarPath(path string) string {
	return "dates.calendars." + l.Calendar + "." + path
}

// Months returns the twelve month names for a context (format, stand-alone) and width (abbreviated,
// wide, narrow). Missing names fall back to the other context.
func (l *Locale) Months(context, width string) [12]string {
	var names [12]string
	for _, ctx := range []string{context, otherContext(context)} {
		m := l.doc.Strings(l.calendarPath("months." + ctx + "." + width))
		for i := range names {
			if names[i] == "" {
				names[i] = m[strconv.Itoa(i+1)]
			}
		}
	}
	return names
}

// Days returns the weekday names starting at Sunday.
func (l *Locale) Days(context, width string) [7]string {
	var names [7]string
	for _, ctx := range []string{context, otherContext(context)} {
		m := l.doc.Strings(l.calendarPath("days." + ctx + "." + width))
		for i := range names {
			if names[i] == "" {
				names[i] = m[dayKeys[i]]
			}
		}
	}
	return names
}

// DayPeriods returns the am and pm designators in the format context.
func (l *Locale) DayPeriods(width string) [2]string {
	m := l.doc.Strings(l.calendarPath("dayPeriods.format." + width))
	if m["am"] == "" || m["pm"] == "" {
		m = l.doc.Strings(l.calendarPath("dayPeriods.stand-alone." + width))
	}
	return [2]string{m["am"], m["pm"]}
}

// Eras returns the era names keyed by era index, including alt variants such as "0-alt-variant".
func (l *Locale) Eras(width string) map[string]string {
	key := "eraAbbr"
	switch width {
	case "wide":
		key = "eraNames"
	case "narrow":
		key = "eraNarrow"
	}
	return l.doc.Strings(l.calendarPath("eras." + key))
}

func (l *Locale) TimeZoneNames() TimeZoneNames {
	names := TimeZoneNames{
		HourFormat:    "+HH:mm;-HH:mm",
		GMTFormat:     "GMT{0}",
		GMTZeroFormat: "GMT",
	}
	if s, ok := l.doc.String("dates.timeZoneNames.hourFormat"); ok && s != "" {
		names.HourFormat = s
	}
	if s, ok := l.doc.String("dates.timeZoneNames.gmtFormat"); ok && s != "" {
		names.GMTFormat = s
	}
	if s, ok := l.doc.String("dates.timeZoneNames.gmtZeroFormat"); ok && s != "" {
		names.GMTZeroFormat = s
	}
	return names
}

// CurrencySymbol returns the localized symbol of a currency, or the code itself.
func (l *Locale) CurrencySymbol(code string) string {
	if s, ok := l.doc.String("numbers.currencies." + code + ".symbol"); ok && s != "" {
		return s
	} else if s, ok := l.doc.String("numbers.currencies." + code + ".symbol-alt-narrow"); ok && s != "" {
		return s
	}
	return code
}

// NumberPattern returns the standard or accounting pattern of a number kind for the locale's
// numbering system, falling back to latn.
func (l *Locale) NumberPattern(kind NumberKind, accounting bool) (string, bool) {
	length := "standard"
	if accounting {
		length = "accounting"
	}
	for _, sys := range []string{l.NumberingSystem, "latn"} {
		if s, ok := l.doc.String("numbers." + string(kind) + "Formats-numberSystem-" + sys + "." + length); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// FirstDayOfWeek returns the first day of the week for the locale's region from weekData.firstDay,
// keyed by region with 001 as the world default.
func (l *Locale) FirstDayOfWeek() time.Weekday {
	region, _ := l.Tag.Region()
	for _, key := range []string{region.String(), "001"} {
		if day, ok := l.doc.String("weekData.firstDay." + key); ok {
			for i, k := range dayKeys {
				if k == day {
					return time.Weekday(i)
				}
			}
		}
	}
	return time.Monday
}

func otherContext(context string) string {
	if context == "format" {
		return "stand-alone"
	}
	return "format"
}
