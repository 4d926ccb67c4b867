package locale

import (
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

// NumberOptions configures a number format. Nil fields are not supplied and take their value from
// the pattern.
type NumberOptions struct {
	Format   string // skeleton (N2, C, P0, A, E3) or custom pattern, default N
	Currency string // ISO 4217 code, default the locale's currency

	MinimumFractionDigits    *int
	MaximumFractionDigits    *int
	MinimumSignificantDigits *int
	MaximumSignificantDigits *int
	MinimumIntegerDigits     *int
	UseGrouping              *bool
}

// Ptr returns a pointer to v, for use in NumberOptions.
func Ptr[T any](v T) *T {
	return &v
}

func checkDigitRange(name string, v *int, lo, hi int) error {
	if v != nil && (*v < lo || hi < *v) {
		return fmt.Errorf("%w: %v must be in [%d,%d], got %d", ErrDigitRange, name, lo, hi, *v)
	}
	return nil
}

func (opts NumberOptions) validate() error {
	if err := checkDigitRange("minimumFractionDigits", opts.MinimumFractionDigits, 0, 20); err != nil {
		return err
	} else if err := checkDigitRange("maximumFractionDigits", opts.MaximumFractionDigits, 0, 20); err != nil {
		return err
	} else if err := checkDigitRange("minimumSignificantDigits", opts.MinimumSignificantDigits, 1, 21); err != nil {
		return err
	} else if err := checkDigitRange("maximumSignificantDigits", opts.MaximumSignificantDigits, 1, 21); err != nil {
		return err
	} else if err := checkDigitRange("minimumIntegerDigits", opts.MinimumIntegerDigits, 1, 21); err != nil {
		return err
	}
	if opts.MinimumFractionDigits != nil && opts.MaximumFractionDigits != nil && *opts.MaximumFractionDigits < *opts.MinimumFractionDigits {
		return fmt.Errorf("%w: minimumFractionDigits %d exceeds maximumFractionDigits %d", ErrDigitRange, *opts.MinimumFractionDigits, *opts.MaximumFractionDigits)
	}
	if opts.MinimumSignificantDigits != nil && opts.MaximumSignificantDigits != nil && *opts.MaximumSignificantDigits < *opts.MinimumSignificantDigits {
		return fmt.Errorf("%w: minimumSignificantDigits %d exceeds maximumSignificantDigits %d", ErrDigitRange, *opts.MinimumSignificantDigits, *opts.MaximumSignificantDigits)
	}
	return nil
}

// NumberBranch holds the compiled parameters of one subpattern.
type NumberBranch struct {
	Prefix, Suffix string

	IsCurrency bool
	IsPercent  bool
	IsPerMille bool

	Grouping       bool
	GroupPrimary   int
	GroupSecondary int

	MinimumIntegerDigits  int
	MinimumFractionDigits int
	MaximumFractionDigits int // -1 is unbounded

	Significant              bool
	MinimumSignificantDigits int
	MaximumSignificantDigits int

	Scientific            bool
	ExponentSign          bool
	MinimumExponentDigits int

	parsePrefix, parseSuffix string
}

// NumberFormat formats and parses numbers with one pattern. It is immutable and safe for
// concurrent use.
type NumberFormat struct {
	Pattern  string
	Currency string

	Positive NumberBranch
	Negative NumberBranch
	Zero     *NumberBranch

	skeleton   NumberSkeleton
	isSkeleton bool
	symbols    NumberSymbols
	digits     DigitTable
	normalizer *strings.Replacer
}

// CompileNumberFormat resolves the number format of the options and compiles its parameters.
// Caller digit options take precedence over the pattern, except for the explicit fraction digits
// of a skeleton such as N2.
func CompileNumberFormat(loc *Locale, opts NumberOptions) (*NumberFormat, error) {
	return compileNumberFormat(loc, opts, slog.Default())
}

func compileNumberFormat(loc *Locale, opts NumberOptions, logger *slog.Logger) (*NumberFormat, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = "N"
	}
	pattern, err := ResolveNumberPattern(loc, format)
	if err != nil {
		return nil, err
	}

	unit, err := currency.ParseISO(loc.Currency)
	if opts.Currency != "" {
		unit, err = currency.ParseISO(opts.Currency)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurrency, opts.Currency)
	}

	pos, neg, zero, err := parseNumberPattern(pattern)
	if err != nil {
		return nil, err
	}
	if neg == nil {
		n := pos
		n.Prefix = append(affix{{Symbol: '-', N: 1}}, pos.Prefix...)
		neg = &n
	}

	f := &NumberFormat{
		Pattern:  pattern,
		Currency: unit.String(),
		symbols:  loc.symbols,
		digits:   loc.digits,
	}
	f.skeleton, f.isSkeleton = ParseNumberSkeleton(format)
	if f.isSkeleton {
		// all branches share the fraction settings of the positive subpattern
		neg.MinFrac, neg.MaxFrac = pos.MinFrac, pos.MaxFrac
		neg.MinSig, neg.MaxSig = pos.MinSig, pos.MaxSig
	}

	symbol := loc.CurrencySymbol(f.Currency)
	f.Positive = f.compileBranch(pos, symbol, opts, unit)
	f.Negative = f.compileBranch(*neg, symbol, opts, unit)
	if zero != nil {
		z := f.compileBranch(*zero, symbol, opts, unit)
		f.Zero = &z
	}

	pairs := []string{}
	for _, pair := range [][2]string{
		{f.symbols.Decimal, "."},
		{f.symbols.Group, ","},
		{f.symbols.MinusSign, "-"},
		{f.symbols.PlusSign, "+"},
		{f.symbols.PercentSign, "%"},
		{f.symbols.PerMille, "‰"},
		{f.symbols.Exponential, "E"},
	} {
		if pair[0] != "" && pair[0] != pair[1] {
			pairs = append(pairs, pair[0], pair[1])
		}
	}
	if !f.digits.IsLatin() {
		for i, r := range f.digits.Digits {
			pairs = append(pairs, string(r), strconv.Itoa(i))
		}
	}
	f.normalizer = strings.NewReplacer(pairs...)
	f.Positive.parsePrefix, f.Positive.parseSuffix = f.parseAffix(pos.Prefix), f.parseAffix(pos.Suffix)
	f.Negative.parsePrefix, f.Negative.parseSuffix = f.parseAffix(neg.Prefix), f.parseAffix(neg.Suffix)

	logger.Debug("locale: compiled number format", "format", format, "pattern", pattern, "culture", loc.Tag.String())
	return f, nil
}

func (f *NumberFormat) compileBranch(sub numberSubpattern, currencySymbol string, opts NumberOptions, unit currency.Unit) NumberBranch {
	branch := NumberBranch{
		Prefix:                f.renderAffix(sub.Prefix, currencySymbol),
		Suffix:                f.renderAffix(sub.Suffix, currencySymbol),
		IsCurrency:            sub.Prefix.has('¤') || sub.Suffix.has('¤'),
		IsPercent:             sub.Prefix.has('%') || sub.Suffix.has('%'),
		IsPerMille:            sub.Prefix.has('‰') || sub.Suffix.has('‰'),
		Grouping:              sub.Grouping,
		GroupPrimary:          sub.GroupPrimary,
		GroupSecondary:        sub.GroupSecondary,
		MinimumIntegerDigits:  sub.MinInt,
		MinimumFractionDigits: sub.MinFrac,
		MaximumFractionDigits: sub.MaxFrac,
		Scientific:            sub.Exponent,
		ExponentSign:          sub.ExponentSign,
		MinimumExponentDigits: sub.MinExp,
	}
	if 0 < sub.MinSig {
		branch.Significant = true
		branch.MinimumSignificantDigits = sub.MinSig
		branch.MaximumSignificantDigits = sub.MaxSig
	}
	if branch.Scientific && f.isSkeleton {
		branch.MinimumFractionDigits, branch.MaximumFractionDigits = 0, -1
	}

	fractionOverride := opts.MinimumFractionDigits != nil || opts.MaximumFractionDigits != nil
	if f.isSkeleton && f.skeleton.Kind == KindCurrency && f.skeleton.Digits < 0 && !fractionOverride {
		scale, _ := currency.Standard.Rounding(unit)
		branch.MinimumFractionDigits, branch.MaximumFractionDigits = scale, scale
	}
	if opts.MinimumFractionDigits != nil {
		branch.MinimumFractionDigits = *opts.MinimumFractionDigits
	}
	if opts.MaximumFractionDigits != nil {
		branch.MaximumFractionDigits = *opts.MaximumFractionDigits
	}
	if f.isSkeleton && 0 <= f.skeleton.Digits {
		branch.MinimumFractionDigits, branch.MaximumFractionDigits = f.skeleton.Digits, f.skeleton.Digits
	}
	if 0 <= branch.MaximumFractionDigits && branch.MaximumFractionDigits < branch.MinimumFractionDigits {
		if opts.MaximumFractionDigits != nil && opts.MinimumFractionDigits == nil {
			branch.MinimumFractionDigits = branch.MaximumFractionDigits
		} else {
			branch.MaximumFractionDigits = branch.MinimumFractionDigits
		}
	}

	if opts.MinimumSignificantDigits != nil || opts.MaximumSignificantDigits != nil {
		branch.Significant = true
		branch.MinimumSignificantDigits, branch.MaximumSignificantDigits = 1, 21
		if opts.MinimumSignificantDigits != nil {
			branch.MinimumSignificantDigits = *opts.MinimumSignificantDigits
		}
		if opts.MaximumSignificantDigits != nil {
			branch.MaximumSignificantDigits = *opts.MaximumSignificantDigits
		}
	}
	if branch.MaximumSignificantDigits < branch.MinimumSignificantDigits {
		branch.MaximumSignificantDigits = branch.MinimumSignificantDigits
	}

	if opts.MinimumIntegerDigits != nil {
		branch.MinimumIntegerDigits = *opts.MinimumIntegerDigits
	}
	if opts.UseGrouping != nil && !*opts.UseGrouping {
		branch.Grouping = false
	}
	return branch
}

func (f *NumberFormat) renderAffix(a affix, currencySymbol string) string {
	sb := strings.Builder{}
	for _, part := range a {
		switch part.Symbol {
		case 0:
			sb.WriteString(part.Text)
		case '¤':
			if part.N == 1 {
				sb.WriteString(currencySymbol)
			} else {
				sb.WriteString(f.Currency)
			}
		case '%':
			sb.WriteString(f.symbols.PercentSign)
		case '‰':
			sb.WriteString(f.symbols.PerMille)
		case '-':
			sb.WriteString(f.symbols.MinusSign)
		case '+':
			sb.WriteString(f.symbols.PlusSign)
		}
	}
	return sb.String()
}

// parseAffix returns the canonical decoration of an affix as seen by Parse: symbols in ASCII form,
// currency removed and surrounding space trimmed.
func (f *NumberFormat) parseAffix(a affix) string {
	sb := strings.Builder{}
	for _, part := range a {
		switch part.Symbol {
		case 0:
			sb.WriteString(part.Text)
		case '¤':
		default:
			sb.WriteRune(part.Symbol)
		}
	}
	return strings.TrimSpace(sb.String())
}

// Format formats v with the branch matching its sign.
func (f *NumberFormat) Format(v float64) string {
	if math.IsNaN(v) {
		return f.symbols.NaN
	} else if math.IsInf(v, 1) {
		return f.symbols.Infinity
	} else if math.IsInf(v, -1) {
		return f.symbols.MinusSign + f.symbols.Infinity
	}

	branch := &f.Positive
	if v < 0 {
		branch = &f.Negative
		v = -v
	} else if v == 0 {
		v = 0 // drop negative zero
		if f.Zero != nil {
			branch = f.Zero
		}
	}
	if branch.IsPercent {
		v *= 100
	} else if branch.IsPerMille {
		v *= 1000
	}

	sb := strings.Builder{}
	sb.WriteString(branch.Prefix)
	if branch.Scientific {
		sb.WriteString(f.formatScientific(branch, v))
	} else {
		var s string
		if branch.Significant {
			s = formatSignificant(v, branch.MinimumSignificantDigits, branch.MaximumSignificantDigits)
		} else {
			s = formatFraction(v, branch.MinimumFractionDigits, branch.MaximumFractionDigits)
		}
		integer, fraction, hasFraction := strings.Cut(s, ".")
		if len(integer) < branch.MinimumIntegerDigits {
			integer = strings.Repeat("0", branch.MinimumIntegerDigits-len(integer)) + integer
		}
		if branch.Grouping {
			integer = groupInteger(integer, branch.GroupPrimary, branch.GroupSecondary, f.symbols.Group)
		}
		sb.WriteString(f.digits.FromLatin(integer))
		if hasFraction {
			sb.WriteString(f.symbols.Decimal)
			sb.WriteString(f.digits.FromLatin(fraction))
		}
	}
	sb.WriteString(branch.Suffix)
	return sb.String()
}

func (f *NumberFormat) formatScientific(branch *NumberBranch, v float64) string {
	s := strconv.FormatFloat(v, 'e', branch.MaximumFractionDigits, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	if 0 < branch.MinimumFractionDigits {
		integer, fraction, _ := strings.Cut(mantissa, ".")
		if len(fraction) < branch.MinimumFractionDigits {
			fraction += strings.Repeat("0", branch.MinimumFractionDigits-len(fraction))
		}
		mantissa = integer + "." + fraction
	}

	sb := strings.Builder{}
	integer, fraction, hasFraction := strings.Cut(mantissa, ".")
	sb.WriteString(f.digits.FromLatin(integer))
	if hasFraction {
		sb.WriteString(f.symbols.Decimal)
		sb.WriteString(f.digits.FromLatin(fraction))
	}
	sb.WriteString(f.symbols.Exponential)

	negative := exp[0] == '-'
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	if len(exp) < branch.MinimumExponentDigits {
		exp = strings.Repeat("0", branch.MinimumExponentDigits-len(exp)) + exp
	}
	if negative {
		sb.WriteString(f.symbols.MinusSign)
	} else if branch.ExponentSign {
		sb.WriteString(f.symbols.PlusSign)
	}
	sb.WriteString(f.digits.FromLatin(exp))
	return sb.String()
}

// formatFraction keeps the shortest representation of v unless it has fewer than min or more than
// max fraction digits. Rounded values drop trailing zeros down to min. A negative max is unbounded.
func formatFraction(v float64, min, max int) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	n := 0
	if i := strings.IndexByte(s, '.'); i != -1 {
		n = len(s) - i - 1
	}
	if n < min {
		return toFixed(v, min)
	} else if 0 <= max && max < n {
		s = toFixed(v, max)
		if i := strings.IndexByte(s, '.'); i != -1 {
			end := len(s)
			for i+1+min < end && s[end-1] == '0' {
				end--
			}
			s = strings.TrimSuffix(s[:end], ".")
		}
	}
	return s
}

// formatSignificant rounds v to max significant digits, drops trailing zeros and pads back to min
// significant digits.
func formatSignificant(v float64, min, max int) string {
	r, _ := strconv.ParseFloat(toPrecision(v, max), 64)
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if significantDigits(s) < min {
		return toPrecision(r, min)
	}
	return s
}

func significantDigits(s string) int {
	s = strings.TrimLeft(strings.Replace(s, ".", "", 1), "0")
	return len(s)
}

// toPrecision formats v with p significant digits in positional notation.
func toPrecision(v float64, p int) string {
	s := strconv.FormatFloat(v, 'e', p-1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	if prec := p - 1 - e; 0 <= prec {
		return toFixed(v, prec)
	}
	digits := strings.Replace(mantissa, ".", "", 1)
	return digits + strings.Repeat("0", e+1-len(digits))
}

// toFixed formats a non-negative v with prec fraction digits. Exact ties round up, unlike
// strconv which rounds them to even.
func toFixed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || 1e21 <= v {
		return s
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec)), nil)
	x := new(big.Float).SetPrec(256).SetFloat64(v)
	x.Mul(x, new(big.Float).SetPrec(256).SetInt(scale))
	n, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(x, new(big.Float).SetPrec(256).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return s
	}

	digits := n.Add(n, big.NewInt(1)).String()
	if len(digits) <= prec {
		digits = strings.Repeat("0", prec-len(digits)+1) + digits
	}
	if prec == 0 {
		return digits
	}
	return digits[:len(digits)-prec] + "." + digits[len(digits)-prec:]
}

// groupInteger inserts group separators, primary sized for the lowest group and secondary sized
// for the others, e.g. 12,34,567 for primary 3 and secondary 2.
func groupInteger(s string, primary, secondary int, sep string) string {
	if primary <= 0 || len(s) <= primary {
		return s
	}

	groups := []string{}
	size := primary
	for size < len(s) {
		groups = append(groups, s[len(s)-size:])
		s = s[:len(s)-size]
		if 0 < secondary {
			size = secondary
		}
	}
	groups = append(groups, s)

	sb := strings.Builder{}
	for i := len(groups) - 1; 0 <= i; i-- {
		sb.WriteString(groups[i])
		if i != 0 {
			sb.WriteString(sep)
		}
	}
	return sb.String()
}
