package locale

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// DateFormat formats times with one pattern. It is immutable and safe for concurrent use.
type DateFormat struct {
	Pattern string

	loc    *Locale
	tokens []dateToken
	logger *slog.Logger
}

// CompileDateFormat resolves a date request and compiles the formatter of the resulting pattern.
func CompileDateFormat(loc *Locale, req DateRequest) (*DateFormat, error) {
	return compileDateFormat(loc, req, slog.Default())
}

func compileDateFormat(loc *Locale, req DateRequest, logger *slog.Logger) (*DateFormat, error) {
	pattern, err := ResolveDatePattern(loc, req)
	if err != nil {
		return nil, err
	}
	tokens, err := tokenizeDatePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &DateFormat{
		Pattern: pattern,
		loc:     loc,
		tokens:  tokens,
		logger:  logger,
	}, nil
}

func (f *DateFormat) Format(t time.Time) string {
	return string(f.AppendFormat([]byte{}, t))
}

func (f *DateFormat) AppendFormat(b []byte, t time.Time) []byte {
	for _, tok := range f.tokens {
		if tok.Kind != dateSymbol {
			b = append(b, tok.Text...)
			continue
		}

		var ok bool
		if b, ok = f.appendSymbol(b, tok, t); !ok {
			f.logger.Info("locale: unsupported date/time format", "symbol", strings.Repeat(string(tok.Letter), tok.N), "pattern", f.Pattern)
		}
	}
	return b
}

func (f *DateFormat) appendNumber(b []byte, v, width int) []byte {
	s := strconv.Itoa(v)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return append(b, f.loc.digits.FromLatin(s)...)
}

func (f *DateFormat) appendSymbol(b []byte, tok dateToken, t time.Time) ([]byte, bool) {
	n := tok.N
	switch tok.Letter {
	case 'G':
		era := "1"
		if t.Year() <= 0 {
			era = "0"
		}
		b = append(b, f.loc.Eras(symbolWidth(n))[era]...)
	case 'y', 'Y', 'u':
		year := t.Year()
		if tok.Letter == 'y' && year <= 0 {
			year = 1 - year
		}
		if n == 2 {
			b = f.appendNumber(b, year%100, 2)
		} else {
			b = f.appendNumber(b, year, n)
		}
	case 'M', 'L':
		if n <= 2 {
			b = f.appendNumber(b, int(t.Month()), n)
			break
		}
		context := "format"
		if tok.Letter == 'L' {
			context = "stand-alone"
		}
		names := f.loc.Months(context, symbolWidth(n))
		name := names[t.Month()-1]
		if name == "" && n == 3 {
			name = f.loc.Months(context, "wide")[t.Month()-1]
		}
		b = append(b, name...)
	case 'd':
		b = f.appendNumber(b, t.Day(), n)
	case 'E', 'c', 'e':
		if tok.Letter != 'E' && n < 3 {
			return b, false
		}
		context := "format"
		if tok.Letter == 'c' {
			context = "stand-alone"
		}
		b = append(b, f.loc.Days(context, symbolWidth(n))[t.Weekday()]...)
	case 'a', 'b':
		period := 0
		if 12 <= t.Hour() {
			period = 1
		}
		b = append(b, f.loc.DayPeriods(symbolWidth(n))[period]...)
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		b = f.appendNumber(b, hour, n)
	case 'K':
		b = f.appendNumber(b, t.Hour()%12, n)
	case 'H':
		b = f.appendNumber(b, t.Hour(), n)
	case 'k':
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		b = f.appendNumber(b, hour, n)
	case 'm':
		b = f.appendNumber(b, t.Minute(), n)
	case 's':
		b = f.appendNumber(b, t.Second(), n)
	case 'S':
		frac := fmt.Sprintf("%09d", t.Nanosecond())
		if n <= 9 {
			frac = frac[:n]
		} else {
			frac += strings.Repeat("0", n-9)
		}
		b = append(b, f.loc.digits.FromLatin(frac)...)
	case 'z', 'Z', 'O':
		b = f.appendZone(b, t, n < 4)
	default:
		return b, false
	}
	return b, true
}

// appendZone writes the localized GMT offset of t, e.g. GMT-8 or GMT-08:00. Hour-only offsets
// append the minutes when they are not zero.
func (f *DateFormat) appendZone(b []byte, t time.Time, hourOnly bool) []byte {
	names := f.loc.TimeZoneNames()
	_, offset := t.Zone()
	offset /= 60
	if offset == 0 {
		return append(b, names.GMTZeroFormat...)
	}

	pos, neg := zoneHourFormats(names.HourFormat, hourOnly)
	format := pos
	if offset < 0 {
		format = neg
		offset = -offset
	}
	hour, minute := offset/60, offset%60

	var z []byte
	for i := 0; i < len(format); {
		c := format[i]
		n := 1
		for i+n < len(format) && format[i+n] == c {
			n++
		}
		switch c {
		case 'H':
			z = f.appendNumber(z, hour, n)
		case 'm':
			z = f.appendNumber(z, minute, n)
		case ':':
			z = append(z, strings.Repeat(f.loc.symbols.TimeSeparator, n)...)
		default:
			z = append(z, format[i:i+n]...)
		}
		i += n
	}
	if hourOnly && minute != 0 {
		z = append(z, f.loc.symbols.TimeSeparator...)
		z = f.appendNumber(z, minute, 2)
	}

	prefix, suffix, _ := strings.Cut(names.GMTFormat, "{0}")
	b = append(b, prefix...)
	b = append(b, z...)
	return append(b, suffix...)
}
