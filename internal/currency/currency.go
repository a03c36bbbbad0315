// Package currency renders monetary amounts as localized currency text.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter renders amounts in a fixed display currency with the currency's
// symbol, grouping, and fraction digits.
type Formatter struct {
	cur money.Currency
}

// NewFormatter creates a Formatter for the given ISO 4217 code.
// Unknown codes fall back to go-money's default currency handling.
func NewFormatter(code string) *Formatter {
	// The Money constructor is the one way to get a never-nil currency.
	return &Formatter{cur: *money.New(0, code).Currency()}
}

// Code returns the formatter's ISO 4217 currency code.
func (f *Formatter) Code() string { return f.cur.Code }

// Format renders a float amount, rounding to the currency's fraction digits.
func (f *Formatter) Format(amount float64) string {
	return f.FormatDecimal(decimal.NewFromFloat(amount))
}

// FormatDecimal renders an exact decimal amount. Rounding happens only here,
// at display time.
func (f *Formatter) FormatDecimal(d decimal.Decimal) string {
	minor := d.Shift(int32(f.cur.Fraction)).Round(0)
	return f.cur.Formatter().Format(minor.IntPart())
}
