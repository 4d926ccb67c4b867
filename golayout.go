package locale

import "strings"

// goLayoutTokens maps elements of Go's reference time Mon Jan 2 15:04:05 MST 2006 to CLDR date
// symbols. Longer elements come first.
var goLayoutTokens = []struct {
	layout, pattern string
}{
	{"January", "MMMM"},
	{"Monday", "EEEE"},
	{"Z07:00", "ZZZZ"},
	{"-07:00", "ZZZZ"},
	{"-0700", "ZZZZ"},
	{"2006", "yyyy"},
	{"Jan", "MMM"},
	{"Mon", "EEE"},
	{"MST", "z"},
	{"_2", "d"},
	{"01", "MM"},
	{"02", "dd"},
	{"03", "hh"},
	{"04", "mm"},
	{"05", "ss"},
	{"06", "yy"},
	{"15", "HH"},
	{"PM", "a"},
	{"pm", "a"},
	{"1", "M"},
	{"2", "d"},
	{"3", "h"},
	{"4", "m"},
	{"5", "s"},
}

// isGoLayout reports whether layout is written in terms of Go's reference time, which CLDR patterns
// and skeletons never are since they contain no digits.
func isGoLayout(layout string) bool {
	return strings.ContainsAny(layout, "0123456789")
}

// goLayoutToPattern translates a Go time layout such as "2006-01-02 15:04" into a CLDR pattern.
// Other ASCII letters become quoted literals.
func goLayoutToPattern(layout string) string {
	sb := strings.Builder{}
	literal := strings.Builder{}
	flush := func() {
		if 0 < literal.Len() {
			sb.WriteByte('\'')
			sb.WriteString(strings.ReplaceAll(literal.String(), "'", "''"))
			sb.WriteByte('\'')
			literal.Reset()
		}
	}

Next:
	for i := 0; i < len(layout); {
		for _, tok := range goLayoutTokens {
			if strings.HasPrefix(layout[i:], tok.layout) {
				flush()
				sb.WriteString(tok.pattern)
				i += len(tok.layout)
				continue Next
			}
		}

		c := layout[i]
		if n := fractionRun(layout[i:]); 0 < n {
			flush()
			sb.WriteByte(c)
			sb.WriteString(strings.Repeat("S", n))
			i += 1 + n
		} else if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '\'' {
			literal.WriteByte(c)
			i++
		} else {
			flush()
			sb.WriteByte(c)
			i++
		}
	}
	flush()
	return sb.String()
}

// fractionRun returns the number of fractional second digits of a layout starting with ".000" or
// ",999", or zero when the run is followed by another digit.
func fractionRun(layout string) int {
	if len(layout) < 2 || layout[0] != '.' && layout[0] != ',' || layout[1] != '0' && layout[1] != '9' {
		return 0
	}
	n := 1
	for 1+n < len(layout) && layout[1+n] == layout[1] {
		n++
	}
	if 1+n < len(layout) && '0' <= layout[1+n] && layout[1+n] <= '9' {
		return 0
	}
	return n
}
