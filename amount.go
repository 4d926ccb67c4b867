package locale

import (
	"database/sql/driver"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/text/currency"
)

const AmountPrecision = 3 // extra decimals for arithmetics

var int64Scales = [...]int64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000, // 1e6
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000, // 1e12
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000, // 1e18
}

// Amount is a fixed-point amount of money in units of 10^-(digits+AmountPrecision) of its currency.
type Amount struct {
	currency.Unit
	amount            int64
	digits, increment int
}

func currencyRounding(unit currency.Unit) (int, int) {
	digits, increment := currency.Standard.Rounding(unit)
	if increment < 1 {
		increment = 1
	}
	return digits, increment
}

// ParseAmount parses a plain decimal such as "-1234.5".
func ParseAmount(unit currency.Unit, s string) (Amount, error) {
	return ParseAmountBytes(unit, []byte(s))
}

func ParseAmountBytes(unit currency.Unit, b []byte) (Amount, error) {
	amount, dec, n := strconv.ParseNumber(b, 0, '.')
	if n != len(b) || len(b) == 0 {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, string(b))
	}
	return NewAmount(unit, amount, dec), nil
}

// ParseAmountLocale parses an amount formatted by the currency skeleton of loc, such as "1.234,50 €"
// for German or "($1,234.50)" for English accounting.
func ParseAmountLocale(loc *Locale, unit currency.Unit, s string) (Amount, error) {
	f, err := CompileNumberFormat(loc, NumberOptions{Format: "A", Currency: unit.String()})
	if err != nil {
		return Amount{}, err
	}
	v, ok := f.Parse(s)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return NewAmountFromFloat64(unit, v), nil
}

// NewAmount returns amount*10^-dec in unit. It panics when the amount does not fit.
func NewAmount(unit currency.Unit, amount int64, dec int) Amount {
	digits, increment := currencyRounding(unit)
	scale := digits + AmountPrecision
	if dec < scale {
		scaleMul := int64Scales[scale-dec]
		if math.MaxInt64/scaleMul < amount {
			panic("overflow")
		} else if amount < math.MinInt64/scaleMul {
			panic("underflow")
		}
		amount *= scaleMul
	} else if scale < dec {
		amount /= int64Scales[dec-scale]
	}
	return Amount{unit, amount, digits, increment}
}

func NewAmountFromFloat64(unit currency.Unit, amount float64) Amount {
	digits, increment := currencyRounding(unit)
	a := int64(math.RoundToEven(amount * math.Pow10(digits+AmountPrecision)))
	return Amount{unit, a, digits, increment}
}

func (a Amount) IsZero() bool {
	return a.amount == 0
}

// Round performs banker's rounding to the currency's increments.
func (a Amount) Round() Amount {
	return a.round(a.increment)
}

func (a Amount) round(incr int) Amount {
	unit := int64Scales[AmountPrecision] * int64(incr)
	q, r := a.amount/unit, a.amount%unit
	if r < 0 {
		r = -r
	}
	if half := unit - 2*r; half < 0 || half == 0 && q%2 != 0 {
		if a.amount < 0 {
			q--
		} else {
			q++
		}
	}
	a.amount = q * unit
	return a
}

func (a Amount) Neg() Amount {
	if a.amount == math.MinInt64 {
		panic("overflow")
	}
	a.amount = -a.amount
	return a
}

func (a Amount) Abs() Amount {
	if a.amount < 0 {
		return a.Neg()
	}
	return a
}

func (a Amount) Add(b Amount) Amount {
	if a.Unit != b.Unit {
		panic(fmt.Sprintf("currencies don't match: %v != %v", a.Unit, b.Unit))
	} else if 0 < b.amount && math.MaxInt64-b.amount < a.amount {
		panic("overflow")
	} else if b.amount < 0 && a.amount < math.MinInt64-b.amount {
		panic("underflow")
	}
	a.amount += b.amount
	return a
}

func (a Amount) Sub(b Amount) Amount {
	if b.amount == math.MinInt64 {
		panic("overflow")
	}
	b.amount = -b.amount
	return a.Add(b)
}

func (a Amount) Mul(f int) Amount {
	if f == -1 {
		return a.Neg()
	} else if f != 0 && (a.amount*int64(f))/int64(f) != a.amount {
		panic("overflow")
	}
	a.amount *= int64(f)
	return a
}

// Div divides and rounds to the nearest sub-unit.
func (a Amount) Div(f int) Amount {
	q, r := a.amount/int64(f), a.amount%int64(f)
	if 2*abs64(r) >= abs64(int64(f)) {
		if (a.amount < 0) != (f < 0) {
			q--
		} else {
			q++
		}
	}
	a.amount = q
	return a
}

func abs64(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}

func (a Amount) Float64() float64 {
	return float64(a.amount) / math.Pow10(a.digits+AmountPrecision)
}

// Amount returns the amount in minor units of the currency and the number of decimals.
func (a Amount) Amount() (int64, int) {
	a = a.round(1)
	return a.amount / int64Scales[AmountPrecision], a.digits
}

func (a Amount) StringAmount() string {
	var b []byte
	amount, dec := a.Amount()
	b = strconv.AppendNumber(b, amount, dec, 0, 0, '.')
	return string(b)
}

func (a Amount) String() string {
	return a.Unit.String() + " " + a.StringAmount()
}

// Localize formats the amount rounded to its currency with a currency skeleton of loc, "C" when
// format is empty.
func (a Amount) Localize(loc *Locale, format string) (string, error) {
	if format == "" {
		format = "C"
	}
	f, err := CompileNumberFormat(loc, NumberOptions{Format: format, Currency: a.Unit.String()})
	if err != nil {
		return "", err
	}
	return f.Format(a.Round().Float64()), nil
}

func (a *Amount) Scan(isrc any) error {
	var b []byte
	switch src := isrc.(type) {
	case Amount:
		*a = src
		return nil
	case []byte:
		b = src
	case string:
		b = []byte(src)
	default:
		return fmt.Errorf("unexpected type for amount: %T", isrc)
	}

	if len(b) < 4 {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, string(b))
	}
	unit, err := currency.ParseISO(string(b[:3]))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCurrency, err)
	}
	i := 3
	if b[i] == ' ' {
		i++
	}
	amount, err := ParseAmountBytes(unit, b[i:])
	if err != nil {
		return err
	}
	*a = amount
	return nil
}

func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

type NullAmount struct {
	Amount
	Valid bool
}

// Scan implements the Scanner interface.
func (n *NullAmount) Scan(value any) error {
	if value == nil {
		n.Amount, n.Valid = Amount{}, false
		return nil
	}
	n.Valid = true
	return n.Amount.Scan(value)
}

// Value implements the driver Valuer interface.
func (n NullAmount) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Amount.Value()
}

// AmountFormatter is a fmt.Formatter that formats Amount with a currency skeleton of Locale.
type AmountFormatter struct {
	Locale *Locale
	Amount
	Layout string
}

func (f AmountFormatter) Format(state fmt.State, verb rune) {
	s, err := f.Amount.Localize(f.Locale, f.Layout)
	if err != nil {
		fmt.Fprintf(state, "%%!%c(%v)", verb, err)
		return
	}
	state.Write([]byte(s))
}
