package locale

import (
	"time"

	"github.com/dlclark/regexp2"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/text/cases"
)

// ParsedDate holds the fields captured from a date string. Nil fields were absent from the pattern
// or from the text.
type ParsedDate struct {
	Era        *int
	Year       *int
	Month      *int // 1 to 12 when valid
	Day        *int
	Weekday    *int // 0 is Sunday
	Hour       *int
	Minute     *int
	Second     *int
	Nanosecond *int
	Designator string // "am", "pm" or empty
	TimeZone   *int   // offset in minutes east of UTC

	TwoDigitYear bool
	Hour12       bool
}

// Parse parses text relative to the current time. See ParseFrom.
func (p *DateParser) Parse(text string) (time.Time, error) {
	return p.ParseFrom(text, time.Now())
}

// ParseFrom parses text into a time. Fields that the pattern or text lacks are taken from baseline,
// and the result is in baseline's location. It returns ErrNoMatch if the text does not match the
// pattern and ErrDateRange if a field is out of range.
func (p *DateParser) ParseFrom(text string, baseline time.Time) (time.Time, error) {
	fields, ok := p.Extract(text)
	if !ok {
		return time.Time{}, ErrNoMatch
	}
	return AssembleDate(fields, baseline)
}

// Extract matches text and returns its fields. Numeric captures must consist of digits only.
func (p *DateParser) Extract(text string) (ParsedDate, bool) {
	m, err := p.re.FindStringMatch(text)
	if err != nil || m == nil {
		return ParsedDate{}, false
	}

	fields := ParsedDate{Hour12: p.hour12}
	fold := cases.Fold()
	for field, slot := range p.fields {
		s, ok := groupString(m, slot.Group)
		if !ok {
			continue
		}

		var v int
		if field == FieldTimeZone {
			offset, ok := p.zoneOffset(m)
			if !ok {
				return ParsedDate{}, false
			}
			fields.TimeZone = &offset
			continue
		} else if slot.Numeric {
			if v, ok = p.number(s); !ok {
				return ParsedDate{}, false
			}
		} else if v, ok = slot.Names[fold.String(s)]; !ok {
			return ParsedDate{}, false
		}

		switch field {
		case FieldEra:
			fields.Era = &v
		case FieldYear:
			fields.Year = &v
			fields.TwoDigitYear = len([]rune(s)) <= 2
		case FieldMonth:
			fields.Month = &v
		case FieldDay:
			fields.Day = &v
		case FieldWeekday:
			fields.Weekday = &v
		case FieldHour:
			fields.Hour = &v
		case FieldMinute:
			fields.Minute = &v
		case FieldSecond:
			fields.Second = &v
		case FieldFraction:
			n := len([]rune(s))
			for ; n < 9; n++ {
				v *= 10
			}
			for ; 9 < n; n-- {
				v /= 10
			}
			fields.Nanosecond = &v
		case FieldDesignator:
			fields.Designator = "am"
			if v == 1 {
				fields.Designator = "pm"
			}
		}
	}
	return fields, true
}

func (p *DateParser) zoneOffset(m *regexp2.Match) (int, bool) {
	sign, hourGroup, minuteGroup := 1, p.zone.PosHour, p.zone.PosMinute
	if _, ok := groupString(m, p.zone.PosHour); !ok {
		if _, ok := groupString(m, p.zone.NegHour); !ok {
			return 0, true // zero format
		}
		sign, hourGroup, minuteGroup = -1, p.zone.NegHour, p.zone.NegMinute
	}

	offset := 0
	if s, ok := groupString(m, hourGroup); ok {
		hour, ok := p.number(s)
		if !ok {
			return 0, false
		}
		offset = hour * 60
	}
	if s, ok := groupString(m, minuteGroup); ok && minuteGroup != 0 {
		minute, ok := p.number(s)
		if !ok {
			return 0, false
		}
		offset += minute
	}
	return sign * offset, true
}

// number parses a run of Latin or native digits.
func (p *DateParser) number(s string) (int, bool) {
	b := []byte(p.loc.digits.ToLatin(s))
	v, n := strconv.ParseUint(b)
	if n == 0 || n != len(b) || uint64(1<<31-1) < v {
		return 0, false
	}
	return int(v), true
}

func groupString(m *regexp2.Match, group int) (string, bool) {
	if group == 0 {
		return "", false
	}
	g := m.GroupByNumber(group)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}

// AssembleDate builds a time from parsed fields, taking absent fields from baseline. Two-digit
// years without an era take the century of baseline, a month change clamps baseline's day to the month's length,
// and a captured offset shifts the result by the difference to baseline's offset.
func AssembleDate(fields ParsedDate, baseline time.Time) (time.Time, error) {
	year, month, day := baseline.Date()
	hour, minute, second := baseline.Clock()
	nsec := baseline.Nanosecond()

	if fields.Year != nil {
		year = *fields.Year
		if fields.Era != nil && *fields.Era == 0 {
			year = 1 - year
		} else if fields.Era == nil && fields.TwoDigitYear {
			year += baseline.Year() / 100 * 100
		}
	}
	if fields.Hour != nil {
		hour = *fields.Hour
	}
	if fields.Minute != nil {
		minute = *fields.Minute
	}
	if fields.Second != nil {
		second = *fields.Second
	}
	if fields.Nanosecond != nil {
		nsec = *fields.Nanosecond
	}
	if fields.Month != nil {
		if *fields.Month < 1 || 12 < *fields.Month {
			return time.Time{}, ErrDateRange
		}
		month = time.Month(*fields.Month)
		if n := daysIn(year, month); n < day {
			day = n
		}
	}
	if fields.Day != nil {
		if *fields.Day < 1 || 31 < *fields.Day {
			return time.Time{}, ErrDateRange
		}
		day = *fields.Day
	}

	switch fields.Designator {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	t := time.Date(year, month, day, hour, minute, second, nsec, baseline.Location())
	if fields.TimeZone != nil {
		_, offset := t.Zone()
		if delta := offset/60 - *fields.TimeZone; delta != 0 {
			t = t.Add(time.Duration(delta) * time.Minute)
		}
	}
	return t, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
