package locale

import "errors"

// Configuration errors, returned wrapped from the Compile functions.
var (
	ErrUnresolvedFormat = errors.New("locale: unresolved format")
	ErrInvalidPattern   = errors.New("locale: invalid pattern")
	ErrDigitRange       = errors.New("locale: digit option out of range")
	ErrUnknownCulture   = errors.New("locale: unknown culture")
	ErrInvalidCurrency  = errors.New("locale: invalid currency")
)

var ErrInvalidAmount = errors.New("locale: invalid amount")

// Data errors, returned as is by DateParser.
var (
	ErrNoMatch   = errors.New("locale: text does not match pattern")
	ErrDateRange = errors.New("locale: date field out of range")
)
