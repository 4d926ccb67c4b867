package locale

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/text/currency"
)

func TestAmount(t *testing.T) {
	var tests = []struct {
		cur currency.Unit
		a   string
		r   string
	}{
		{currency.EUR, "16", "EUR 16.00"},
		{currency.EUR, "16.5", "EUR 16.50"},
		{currency.EUR, "16.50", "EUR 16.50"},
		{currency.EUR, "16.505", "EUR 16.50"},
		{currency.EUR, "16.506", "EUR 16.51"},
		{currency.EUR, "16.514", "EUR 16.51"},
		{currency.EUR, "16.515", "EUR 16.52"},
		{currency.EUR, "-16.515", "EUR -16.52"},
		{currency.JPY, "1234.5", "JPY 1234"},
		{currency.JPY, "1235.5", "JPY 1236"},
	}
	for _, tt := range tests {
		t.Run(tt.a, func(t *testing.T) {
			amount, err := ParseAmount(tt.cur, tt.a)
			test.Error(t, err)
			test.String(t, amount.String(), tt.r)
		})
	}
}

func TestAmountError(t *testing.T) {
	for _, s := range []string{"", "abc", "1.2.3", "1,000"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseAmount(currency.EUR, s)
			test.That(t, errors.Is(err, ErrInvalidAmount), err)
		})
	}
}

func TestAmountOperation(t *testing.T) {
	tests := []struct {
		a Amount
		r string
	}{
		{NewAmount(currency.EUR, 105, 3).Round(), "EUR 0.10"},
		{NewAmount(currency.EUR, 115, 3).Round(), "EUR 0.12"},
		{NewAmount(currency.EUR, 1000, 2).Mul(2).Div(3), "EUR 6.67"},
		{NewAmount(currency.EUR, -1000, 2).Div(3), "EUR -3.33"},
		{NewAmount(currency.EUR, 1000, 2).Add(NewAmount(currency.EUR, 250, 2)).Sub(NewAmount(currency.EUR, 75, 2)), "EUR 11.75"},
		{NewAmount(currency.EUR, -5, 0).Abs(), "EUR 5.00"},
		{NewAmount(currency.EUR, 5, 0).Neg(), "EUR -5.00"},
		{NewAmount(currency.EUR, 5, 0).Mul(-1), "EUR -5.00"},
		{NewAmountFromFloat64(currency.USD, 0.1+0.2), "USD 0.30"},
	}
	for _, tt := range tests {
		t.Run(tt.r, func(t *testing.T) {
			test.String(t, tt.a.String(), tt.r)
		})
	}

	a := NewAmount(currency.EUR, 16505, 3)
	test.Float(t, a.Float64(), 16.505)
	minor, dec := a.Amount()
	test.T(t, minor, int64(1650))
	test.T(t, dec, 2)
	test.String(t, a.StringAmount(), "16.50")
	test.That(t, !a.IsZero())
	test.That(t, NewAmount(currency.EUR, 0, 0).IsZero())
}

func TestAmountLocalize(t *testing.T) {
	var tests = []struct {
		loc    *Locale
		a      Amount
		format string
		r      string
	}{
		{en, NewAmount(currency.EUR, 123450, 2), "", "€1,234.50"},
		{en, NewAmount(currency.USD, -123450, 2), "A", "($1,234.50)"},
		{en, NewAmount(currency.USD, -123450, 2), "C0", "-$1,235"},
		{en, NewAmount(currency.JPY, 12345, 1), "", "¥1,234"},
		{de, NewAmount(currency.EUR, 123450, 2), "", "1.234,50 €"},
		{arQA, NewAmount(currency.MustParseISO("QAR"), 1, 0), "", "\u200f١٫٠٠ ر.ق.\u200f"},
	}
	for _, tt := range tests {
		t.Run(tt.r, func(t *testing.T) {
			s, err := tt.a.Localize(tt.loc, tt.format)
			test.Error(t, err)
			test.String(t, s, tt.r)
		})
	}

	_, err := NewAmount(currency.EUR, 1, 0).Localize(en, "0E")
	test.That(t, errors.Is(err, ErrInvalidPattern), err)

	test.String(t, NewPrinter(de, nil).T(NewAmount(currency.EUR, 5, 0)), "5,00 €")
	test.String(t, NewPrinter(en, nil).T(NewAmount(currency.USD, -5, 0), "A"), "($5.00)")
}

func TestParseAmountLocale(t *testing.T) {
	var tests = []struct {
		loc *Locale
		cur currency.Unit
		s   string
		r   string
	}{
		{en, currency.USD, "$1,234.50", "USD 1234.50"},
		{en, currency.USD, "($1,234.50)", "USD -1234.50"},
		{en, currency.USD, "-$1,234.50", "USD -1234.50"},
		{en, currency.USD, "1234.5", "USD 1234.50"},
		{de, currency.EUR, "1.234,50 €", "EUR 1234.50"},
		{de, currency.EUR, "-1.234,50 €", "EUR -1234.50"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			a, err := ParseAmountLocale(tt.loc, tt.cur, tt.s)
			test.Error(t, err)
			test.String(t, a.String(), tt.r)
		})
	}

	for _, s := range []string{"", "abc", "∞"} {
		_, err := ParseAmountLocale(en, currency.USD, s)
		test.That(t, errors.Is(err, ErrInvalidAmount), s, err)
	}
}

func TestAmountScan(t *testing.T) {
	var tests = []struct {
		src any
		r   string
	}{
		{"EUR 16.50", "EUR 16.50"},
		{"EUR16.5", "EUR 16.50"},
		{[]byte("USD -3"), "USD -3.00"},
		{NewAmount(currency.JPY, 7, 0), "JPY 7"},
	}
	for _, tt := range tests {
		t.Run(tt.r, func(t *testing.T) {
			var a Amount
			test.Error(t, a.Scan(tt.src))
			test.String(t, a.String(), tt.r)
			v, err := a.Value()
			test.Error(t, err)
			test.T(t, v, any(tt.r))
		})
	}

	var a Amount
	test.That(t, a.Scan(42) != nil)
	test.That(t, errors.Is(a.Scan("EU"), ErrInvalidAmount))
	test.That(t, errors.Is(a.Scan("ZZZ 1"), ErrInvalidCurrency))
	test.That(t, errors.Is(a.Scan("EUR x"), ErrInvalidAmount))

	var n NullAmount
	test.Error(t, n.Scan(nil))
	test.That(t, !n.Valid)
	v, err := n.Value()
	test.Error(t, err)
	test.That(t, v == nil)

	test.Error(t, n.Scan("USD 1"))
	test.That(t, n.Valid)
	v, err = n.Value()
	test.Error(t, err)
	test.T(t, v, any("USD 1.00"))
}
