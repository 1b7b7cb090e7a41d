package notes

import (
	"strings"

	"github.com/etnz/notes/date"
	"github.com/shopspring/decimal"
)

// DaysPerMonth approximates a month for maturity computation. It is not
// calendar arithmetic.
const DaysPerMonth = 30

var twelve = decimal.NewFromInt(12)

// MaturityDate returns origin plus months*30 days.
func MaturityDate(origin date.Date, months int) date.Date {
	return origin.Add(DaysPerMonth * months)
}

// ParseMaturityDate is MaturityDate for an origin typed as text, either
// "2006-01-02" or "01/02/2006".
func ParseMaturityDate(origin string, months int) (date.Date, error) {
	d, err := date.Parse(origin)
	if err != nil {
		return date.Date{}, &ParseError{Column: ColOrigin, Value: origin, Err: err}
	}
	return MaturityDate(d, months), nil
}

// Payoff returns principal + principal*rate*months/12 rounded to cents
// (half away from zero).
func Payoff(principal, rate decimal.Decimal, months int) decimal.Decimal {
	interest := principal.Mul(rate).Mul(decimal.NewFromInt(int64(months))).Div(twelve)
	return principal.Add(interest).Round(2)
}

// ParsePayoff is Payoff for a principal and rate typed as text. The result is
// null when either is not a number.
func ParsePayoff(principal, rate string, months int) decimal.NullDecimal {
	p, err := decimal.NewFromString(strings.TrimSpace(principal))
	if err != nil {
		return decimal.NullDecimal{}
	}
	r, err := decimal.NewFromString(strings.TrimSpace(rate))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(Payoff(p, r, months))
}

// Compute recomputes Maturity and Payoff from the other fields. A derived
// field whose inputs are missing becomes null.
func (r *Record) Compute() {
	delete(r.Verbatim, ColMaturity)
	delete(r.Verbatim, ColPayoff)

	r.Maturity = date.Date{}
	if !r.Origin.IsZero() && r.Term > 0 {
		r.Maturity = MaturityDate(r.Origin, r.Term)
	}

	r.Payoff = decimal.NullDecimal{}
	if r.Principal.Valid && r.Rate.Valid && r.Term > 0 {
		r.Payoff = decimal.NewNullDecimal(Payoff(r.Principal.Decimal, r.Rate.Decimal, r.Term))
	}
}
