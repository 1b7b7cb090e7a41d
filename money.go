package notes

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

// currency returns the go-money currency for code, never nil.
func currency(code string) money.Currency {
	if code == "" {
		code = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// FormatMoney formats an amount in the given currency, e.g. "$1,052.50".
// Amounts are rounded to the currency fraction.
func FormatMoney(amount decimal.Decimal, code string) string {
	cur := currency(code)
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatNullMoney is FormatMoney for a nullable amount. Null amounts are
// rendered as "n/a", never as zero.
func FormatNullMoney(amount decimal.NullDecimal, code string) string {
	if !amount.Valid {
		return "n/a"
	}
	return FormatMoney(amount.Decimal, code)
}

var hundred = decimal.NewFromInt(100)

// FormatRate formats an annual rate fraction as a percentage, "7%" for 0.07.
func FormatRate(rate decimal.NullDecimal) string {
	if !rate.Valid {
		return "n/a"
	}
	return rate.Decimal.Mul(hundred).String() + "%"
}
