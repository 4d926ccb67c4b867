package locale

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// affixPart is either literal text or a special pattern symbol (¤ % ‰ - +) that is replaced by
// its localized form.
type affixPart struct {
	Text   string
	Symbol rune
	N      int
}

type affix []affixPart

// numberSubpattern is one branch of a CLDR number pattern, e.g. "¤#,##0.00" or "(#,##0.00)".
type numberSubpattern struct {
	Prefix, Suffix affix

	MinInt         int
	Grouping       bool
	GroupPrimary   int
	GroupSecondary int
	MinFrac        int
	MaxFrac        int
	MinSig         int
	MaxSig         int

	Exponent     bool
	ExponentSign bool
	MinExp       int
}

func (a affix) has(symbol rune) bool {
	for _, part := range a {
		if part.Symbol == symbol {
			return true
		}
	}
	return false
}

// splitNumberPattern splits a pattern on unquoted semicolons.
func splitNumberPattern(pattern string) []string {
	parts := []string{}
	quoted := false
	start := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\'':
			quoted = !quoted
		case ';':
			if !quoted {
				parts = append(parts, pattern[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, pattern[start:])
}

// parseNumberPattern parses a positive, an optional negative and an optional zero subpattern.
func parseNumberPattern(pattern string) (numberSubpattern, *numberSubpattern, *numberSubpattern, error) {
	if pattern == "" {
		return numberSubpattern{}, nil, nil, fmt.Errorf("%w: empty number pattern", ErrInvalidPattern)
	}

	parts := splitNumberPattern(pattern)
	if 3 < len(parts) {
		return numberSubpattern{}, nil, nil, fmt.Errorf("%w: %q: more than three subpatterns", ErrInvalidPattern, pattern)
	}

	subs := make([]numberSubpattern, len(parts))
	for i, part := range parts {
		var err error
		if subs[i], err = parseNumberSubpattern(part); err != nil {
			return numberSubpattern{}, nil, nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}
	}

	var neg, zero *numberSubpattern
	if 1 < len(subs) {
		neg = &subs[1]
	}
	if 2 < len(subs) {
		zero = &subs[2]
	}
	return subs[0], neg, zero, nil
}

func isNumberPatternChar(c byte) bool {
	return c == '#' || c == '@' || c == ',' || c == '.' || '0' <= c && c <= '9'
}

func parseNumberSubpattern(s string) (numberSubpattern, error) {
	sub := numberSubpattern{}
	prefix, i, err := parseAffix(s, 0)
	if err != nil {
		return sub, err
	}
	sub.Prefix = prefix

	var integer, fraction []byte
	decimal, exponent := false, false
Number:
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case exponent:
			if c != '0' {
				break Number
			}
			sub.MinExp++
		case c == '.':
			if decimal {
				return sub, fmt.Errorf("second decimal point")
			}
			decimal = true
		case c == 'E' && 0 < len(integer)+len(fraction):
			exponent = true
			if i+1 < len(s) && s[i+1] == '+' {
				sub.ExponentSign = true
				i++
			}
		case isNumberPatternChar(c):
			if decimal {
				if c == ',' || c == '@' {
					return sub, fmt.Errorf("%q in fraction", c)
				}
				fraction = append(fraction, c)
			} else {
				integer = append(integer, c)
			}
		default:
			break Number
		}
	}
	if len(integer)+len(fraction) == 0 {
		return sub, fmt.Errorf("no digit placeholders")
	} else if exponent && sub.MinExp == 0 {
		return sub, fmt.Errorf("no exponent digits")
	}
	sub.Exponent = exponent

	suffix, j, err := parseAffix(s, i)
	if err != nil {
		return sub, err
	} else if j != len(s) {
		return sub, fmt.Errorf("digit placeholders in suffix")
	}
	sub.Suffix = suffix

	// integer part and grouping
	if last := strings.LastIndexByte(string(integer), ','); last != -1 {
		sub.Grouping = true
		sub.GroupPrimary = len(integer) - last - 1
		if prev := strings.LastIndexByte(string(integer[:last]), ','); prev != -1 {
			sub.GroupSecondary = last - prev - 1
		}
		if sub.GroupPrimary == 0 {
			sub.Grouping = false
		}
	}
	for _, c := range integer {
		switch c {
		case '@':
			sub.MinSig++
			sub.MaxSig++
		case '#':
			if 0 < sub.MinSig {
				sub.MaxSig++
			}
		case ',':
		default:
			sub.MinInt++
		}
	}
	if 0 < sub.MinSig && 0 < sub.MinInt {
		return sub, fmt.Errorf("significant digits mixed with zeros")
	}

	// fraction part
	leading := true
	for _, c := range fraction {
		if c == '#' {
			leading = false
		} else if leading {
			sub.MinFrac++
		}
	}
	sub.MaxFrac = len(fraction)
	return sub, nil
}

// parseAffix reads a prefix or suffix starting at i and returns the index of the first unquoted
// digit placeholder or the end of s.
func parseAffix(s string, i int) (affix, int, error) {
	parts := affix{}
	sb := strings.Builder{}
	flush := func() {
		if sb.Len() != 0 {
			parts = append(parts, affixPart{Text: sb.String()})
			sb.Reset()
		}
	}

	for i < len(s) {
		if isNumberPatternChar(s[i]) {
			break
		}

		r, n := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '\'':
			if i+1 < len(s) && s[i+1] == '\'' {
				sb.WriteByte('\'')
				i += 2
				continue
			}
			j := i + 1
			for {
				if len(s) <= j {
					return nil, 0, fmt.Errorf("unterminated quote")
				} else if s[j] == '\'' {
					if j+1 < len(s) && s[j+1] == '\'' {
						sb.WriteByte('\'')
						j += 2
						continue
					}
					break
				}
				sb.WriteByte(s[j])
				j++
			}
			i = j + 1
			continue
		case '¤', '%', '‰', '-', '+':
			flush()
			m := 1
			for i+m*n < len(s) && strings.HasPrefix(s[i+m*n:], string(r)) {
				m++
			}
			parts = append(parts, affixPart{Symbol: r, N: m})
			i += m * n
			continue
		}
		sb.WriteString(s[i : i+n])
		i += n
	}
	flush()
	return parts, i, nil
}
