// Package money provides the fixed-point monetary amount used for balances.
//
// Invariants:
//   - Amounts are exact decimals; binary floating point never touches them.
//   - Parsing is total: every input yields an Amount or ErrInvalidAmount.
//   - Display always uses the currency's fractional digits (two for USD).
package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern accepts an optional sign, digits with optional thousands
// groups, and an optional fractional part. Exponents are not accepted.
var amountPattern = regexp.MustCompile(`^([+-]?)(\d{1,3}(?:,\d{3})+|\d*)(?:\.(\d*))?$`)

// Amount is an exact decimal monetary value. The zero value is 0.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{}

// New wraps a decimal value.
func New(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// NewFromInt creates an amount of whole units.
func NewFromInt(units int64) Amount {
	return Amount{d: decimal.NewFromInt(units)}
}

// Must parses s and panics on failure. Use it for constants and tests.
func Must(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%q): %v", s, err))
	}
	return a
}

// Parse converts user input into an Amount.
// Leading and trailing whitespace is ignored. Thousands separators are
// accepted only in well-formed groups of three ("1,250.00").
func Parse(input string) (Amount, error) {
	s := strings.TrimSpace(input)
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	sign, whole, frac := m[1], strings.ReplaceAll(m[2], ",", ""), m[3]
	if whole == "" && frac == "" {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	if whole == "" {
		whole = "0"
	}
	normalized := sign + whole
	if frac != "" {
		normalized += "." + frac
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	return Amount{d: d}, nil
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// Add returns a + other.
func (a Amount) Add(other Amount) Amount {
	return Amount{d: a.d.Add(other.d)}
}

// Sub returns a - other.
func (a Amount) Sub(other Amount) Amount {
	return Amount{d: a.d.Sub(other.d)}
}

// SubNonNegative returns a - other, or ErrNegativeAmount if the result
// would be below zero.
func (a Amount) SubNonNegative(other Amount) (Amount, error) {
	r := a.d.Sub(other.d)
	if r.IsNegative() {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{d: r}, nil
}

// Cmp compares a and other: -1 if a < other, 0 if equal, +1 if a > other.
func (a Amount) Cmp(other Amount) int {
	return a.d.Cmp(other.d)
}

// Equal reports whether a and other have the same value (1.5 equals 1.50).
func (a Amount) Equal(other Amount) bool {
	return a.d.Equal(other.d)
}

// GreaterThan reports whether a > other.
func (a Amount) GreaterThan(other Amount) bool {
	return a.d.GreaterThan(other.d)
}

// IsPositive reports whether a > 0.
func (a Amount) IsPositive() bool {
	return a.d.IsPositive()
}

// IsNegative reports whether a < 0.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// IsZero reports whether a == 0.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// String returns the amount with two fractional digits, without a symbol.
func (a Amount) String() string {
	return a.d.StringFixed(DefaultCurrency.Decimals)
}

// Format returns the amount in the default currency, e.g. "$1250.00".
func (a Amount) Format() string {
	return DefaultCurrency.Format(a)
}
