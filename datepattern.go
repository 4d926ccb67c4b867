package locale

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
)

type dateTokenKind int

const (
	dateSymbol  dateTokenKind = iota // run of one pattern letter
	dateLiteral                      // quoted literal
	dateOther                        // any other unquoted character
)

type dateToken struct {
	Kind   dateTokenKind
	Letter byte
	N      int
	Text   string
}

// tokenizeDatePattern splits a CLDR date pattern into runs of equal letters, quoted literals and
// single other characters. Two quotes are a literal quote, inside or outside a quoted literal.
func tokenizeDatePattern(pattern string) ([]dateToken, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty date pattern", ErrInvalidPattern)
	}

	tokens := []dateToken{}
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' {
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}
			tokens = append(tokens, dateToken{Kind: dateSymbol, Letter: c, N: n})
			i += n
		} else if c == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				tokens = append(tokens, dateToken{Kind: dateLiteral, Text: "'"})
				i += 2
				continue
			}

			sb := strings.Builder{}
			j, closed := i+1, false
			for j < len(pattern) {
				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						sb.WriteByte('\'')
						j += 2
						continue
					}
					closed = true
					j++
					break
				}
				sb.WriteByte(pattern[j])
				j++
			}
			if !closed {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrInvalidPattern, pattern)
			}
			tokens = append(tokens, dateToken{Kind: dateLiteral, Text: sb.String()})
			i = j
		} else {
			_, n := utf8.DecodeRuneInString(pattern[i:])
			tokens = append(tokens, dateToken{Kind: dateOther, Text: pattern[i : i+n]})
			i += n
		}
	}
	return tokens, nil
}

// DateField is a semantic field of a date pattern.
type DateField int

const (
	FieldEra DateField = iota
	FieldYear
	FieldMonth
	FieldDay
	FieldWeekday
	FieldHour
	FieldMinute
	FieldSecond
	FieldFraction
	FieldDesignator
	FieldTimeZone
)

var dateFieldNames = [...]string{"era", "year", "month", "day", "weekday", "hour", "minute", "second", "fraction", "designator", "timeZone"}

func (f DateField) String() string {
	if 0 <= f && int(f) < len(dateFieldNames) {
		return dateFieldNames[f]
	}
	return "DateField(" + strconv.Itoa(int(f)) + ")"
}

// fieldSlot is the capture group of a field. Names maps case-folded names to their index for
// textual fields.
type fieldSlot struct {
	Group    int
	Numeric  bool
	HourOnly bool
	Names    map[string]int
}

type zoneGroups struct {
	PosHour, PosMinute int
	NegHour, NegMinute int
}

// regexBuilder writes a regular expression and numbers its capture groups in order of their
// opening parenthesis.
type regexBuilder struct {
	sb     strings.Builder
	groups int
}

func (b *regexBuilder) open() int {
	b.groups++
	b.sb.WriteByte('(')
	return b.groups
}

func (b *regexBuilder) raw(s string) {
	b.sb.WriteString(s)
}

func (b *regexBuilder) literal(s string) {
	b.sb.WriteString(regexp2.Escape(s))
}

func (b *regexBuilder) capture(expr string) int {
	group := b.open()
	b.sb.WriteString(expr)
	b.sb.WriteByte(')')
	return group
}

// DateParser matches date strings of one pattern. It is immutable and safe for concurrent use.
type DateParser struct {
	Pattern string

	loc    *Locale
	re     *regexp2.Regexp
	fields map[DateField]fieldSlot
	zone   zoneGroups
	hour12 bool
}

// CompileDateParser resolves a date request and compiles the matcher of the resulting pattern.
func CompileDateParser(loc *Locale, req DateRequest) (*DateParser, error) {
	return compileDateParser(loc, req, slog.Default())
}

// NewDateParser compiles the matcher of a literal date pattern.
func NewDateParser(loc *Locale, pattern string) (*DateParser, error) {
	return compileDateParser(loc, DateRequest{Pattern: pattern}, slog.Default())
}

func compileDateParser(loc *Locale, req DateRequest, logger *slog.Logger) (*DateParser, error) {
	pattern, err := ResolveDatePattern(loc, req)
	if err != nil {
		return nil, err
	}
	tokens, err := tokenizeDatePattern(pattern)
	if err != nil {
		return nil, err
	}

	p := &DateParser{
		Pattern: pattern,
		loc:     loc,
		fields:  map[DateField]fieldSlot{},
	}
	digit := loc.digits.Class()
	b := &regexBuilder{}
	b.raw("^")
	for i, tok := range tokens {
		switch tok.Kind {
		case dateLiteral:
			b.raw("(?:")
			b.literal(tok.Text)
			b.raw(")?")
		case dateOther:
			b.raw(`(?:\D)?`)
		case dateSymbol:
			if err := p.compileSymbol(b, tok, digit); err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
			} else if _, ok := dateSymbolField(tok); !ok {
				logger.Info("locale: unsupported date/time format", "symbol", strings.Repeat(string(tok.Letter), tok.N), "pattern", pattern)
				b.raw(`(?:\D)?`)
			} else if field, _ := dateSymbolField(tok); p.fields[field].Numeric && i+1 < len(tokens) && tokens[i+1].Kind != dateSymbol {
				// separators are optional, a digit run must not be split over two fields
				b.raw("(?!" + digit + ")")
			}
		}
	}
	b.raw("$")

	if p.re, err = regexp2.Compile(b.sb.String(), regexp2.IgnoreCase); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return p, nil
}

// dateSymbolField returns the field a pattern symbol parses into.
func dateSymbolField(tok dateToken) (DateField, bool) {
	switch tok.Letter {
	case 'G':
		return FieldEra, true
	case 'y', 'Y', 'u':
		return FieldYear, true
	case 'M', 'L':
		return FieldMonth, true
	case 'd':
		return FieldDay, true
	case 'E':
		return FieldWeekday, true
	case 'c', 'e':
		if 3 <= tok.N {
			return FieldWeekday, true
		}
	case 'h', 'H', 'K', 'k':
		return FieldHour, true
	case 'm':
		return FieldMinute, true
	case 's':
		return FieldSecond, true
	case 'S':
		return FieldFraction, true
	case 'a', 'b':
		return FieldDesignator, true
	case 'z', 'Z', 'O':
		return FieldTimeZone, true
	}
	return 0, false
}

// symbolWidth maps the length of a name symbol to a CLDR width.
func symbolWidth(n int) string {
	switch n {
	case 4:
		return "wide"
	case 5:
		return "narrow"
	case 6:
		return "short"
	}
	return "abbreviated"
}

func (p *DateParser) compileSymbol(b *regexBuilder, tok dateToken, digit string) error {
	field, ok := dateSymbolField(tok)
	if !ok {
		return nil
	}

	slot := fieldSlot{Numeric: true}
	switch field {
	case FieldEra:
		names := map[string]int{}
		for key, name := range p.loc.Eras(symbolWidth(tok.N)) {
			idx, _, _ := strings.Cut(key, "-")
			if i, err := strconv.Atoi(idx); err == nil {
				names[name] = i
			}
		}
		slot.Numeric = false
		slot.Group, slot.Names = compileNames(b, names)
	case FieldMonth:
		if tok.N <= 2 {
			slot.Group = b.capture(digit + "{1,2}")
			break
		}
		context := "format"
		if tok.Letter == 'L' {
			context = "stand-alone"
		}
		names := map[string]int{}
		for i, name := range p.loc.Months(context, symbolWidth(tok.N)) {
			if _, ok := names[name]; !ok && name != "" {
				names[name] = i + 1
			}
		}
		slot.Numeric = false
		slot.Group, slot.Names = compileNames(b, names)
	case FieldWeekday:
		context := "format"
		if tok.Letter == 'c' {
			context = "stand-alone"
		}
		names := map[string]int{}
		for i, name := range p.loc.Days(context, symbolWidth(tok.N)) {
			if _, ok := names[name]; !ok && name != "" {
				names[name] = i
			}
		}
		slot.Numeric = false
		slot.Group, slot.Names = compileNames(b, names)
	case FieldDesignator:
		names := map[string]int{}
		for _, width := range []string{"abbreviated", "wide", "narrow"} {
			for i, name := range p.loc.DayPeriods(width) {
				if _, ok := names[name]; !ok && name != "" {
					names[name] = i
				}
			}
		}
		slot.Numeric = false
		slot.Group, slot.Names = compileNames(b, names)
	case FieldYear:
		if tok.N == 2 {
			slot.Group = b.capture(digit + "{2}")
		} else {
			slot.Group = b.capture(digit + "+")
		}
	case FieldFraction:
		slot.Group = b.capture(digit + "+")
	case FieldTimeZone:
		slot.HourOnly = tok.N < 4
		slot.Numeric = false
		slot.Group = p.compileZone(b, slot.HourOnly, digit)
	default:
		if tok.Letter == 'h' || tok.Letter == 'K' {
			p.hour12 = true
		}
		slot.Group = b.capture(digit + "{1,2}")
	}
	if !slot.Numeric && field != FieldTimeZone && len(slot.Names) == 0 {
		return fmt.Errorf("no %v names", field)
	}
	p.fields[field] = slot
	return nil
}

// compileNames writes a capture group alternating the given names, longest first, and returns the
// reverse table keyed by case-folded name.
func compileNames(b *regexBuilder, names map[string]int) (int, map[string]int) {
	if len(names) == 0 {
		return 0, nil
	}

	list := make([]string, 0, len(names))
	for name := range names {
		list = append(list, name)
	}
	sort.Slice(list, func(i, j int) bool {
		if len(list[i]) != len(list[j]) {
			return len(list[j]) < len(list[i])
		}
		return list[i] < list[j]
	})

	fold := cases.Fold()
	table := make(map[string]int, len(names))
	alts := make([]string, 0, len(list))
	for _, name := range list {
		key := fold.String(name)
		if _, ok := table[key]; !ok {
			table[key] = names[name]
			alts = append(alts, regexp2.Escape(name))
		}
	}
	return b.capture(strings.Join(alts, "|")), table
}

// compileZone writes an optional group matching a localized GMT offset: the positive or the negative
// hour format inside the GMT format, or the GMT zero format. Short forms use hour-only offsets.
func (p *DateParser) compileZone(b *regexBuilder, hourOnly bool, digit string) int {
	names := p.loc.TimeZoneNames()
	pos, neg := zoneHourFormats(names.HourFormat, hourOnly)
	prefix, suffix, _ := strings.Cut(names.GMTFormat, "{0}")

	group := b.open()
	b.literal(prefix)
	p.zone.PosHour, p.zone.PosMinute = p.compileOffset(b, pos, digit, hourOnly)
	b.literal(suffix)
	b.raw("|")
	b.literal(prefix)
	p.zone.NegHour, p.zone.NegMinute = p.compileOffset(b, neg, digit, hourOnly)
	b.literal(suffix)
	b.raw("|")
	b.literal(names.GMTZeroFormat)
	b.raw(")?")
	return group
}

// compileOffset writes the hour and minute groups of an hour format. Hour-only formats accept
// optional minutes, as in GMT+5:30.
func (p *DateParser) compileOffset(b *regexBuilder, format, digit string, hourOnly bool) (int, int) {
	hour, minute := 0, 0
	for i := 0; i < len(format); {
		c := format[i]
		n := 1
		for i+n < len(format) && format[i+n] == c {
			n++
		}
		switch c {
		case 'H':
			if n == 1 {
				hour = b.capture(digit + "{1,2}")
			} else {
				hour = b.capture(digit + "{2}")
			}
		case 'm':
			minute = b.capture(digit + "{2}")
		case ':':
			b.literal(strings.Repeat(p.loc.symbols.TimeSeparator, n))
		default:
			_, n = utf8.DecodeRuneInString(format[i:])
			b.literal(format[i : i+n])
		}
		i += n
	}
	if hourOnly && minute == 0 {
		b.raw("(?:")
		b.literal(p.loc.symbols.TimeSeparator)
		minute = b.capture(digit + "{2}")
		b.raw(")?")
	}
	return hour, minute
}

// zoneHourFormats splits an hour format such as "+HH:mm;-HH:mm" into its positive and negative
// halves. Hour-only offsets use "+H;-H".
func zoneHourFormats(hourFormat string, hourOnly bool) (string, string) {
	if hourOnly {
		hourFormat = "+H;-H"
	}
	pos, neg, ok := strings.Cut(hourFormat, ";")
	if !ok {
		neg = strings.Replace(pos, "+", "-", 1)
	}
	return pos, neg
}
