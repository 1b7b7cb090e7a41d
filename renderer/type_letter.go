package renderer

import (
	"strconv"

	"github.com/etnz/notes"
)

// Letter is the view of a record addressed to its client.
type Letter struct {
	FirstName string
	LastName  string
	Project   string
	Origin    string
	Term      string
	Maturity  string
	Principal string
	Rate      string
	Payoff    string
	Firm      string
}

// NewLetter returns the letter for r, amounts formatted in currency.
func NewLetter(r notes.Record, currency, firm string) *Letter {
	l := &Letter{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Project:   r.Project,
		Origin:    r.Cell(notes.ColOrigin),
		Term:      r.Cell(notes.ColTerm),
		Maturity:  r.Cell(notes.ColMaturity),
		Principal: verbatimOr(r, notes.ColPrincipal, notes.FormatNullMoney(r.Principal, currency)),
		Rate:      verbatimOr(r, notes.ColRate, notes.FormatRate(r.Rate)),
		Payoff:    verbatimOr(r, notes.ColPayoff, notes.FormatNullMoney(r.Payoff, currency)),
		Firm:      firm,
	}
	if r.Term > 0 {
		l.Term = strconv.Itoa(r.Term)
	}
	return l
}

// verbatimOr returns the unparsed cell of c if there is one, formatted
// otherwise.
func verbatimOr(r notes.Record, c notes.Column, formatted string) string {
	if v, ok := r.Verbatim[c]; ok {
		return v
	}
	return formatted
}
