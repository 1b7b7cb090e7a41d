package notes

import (
	"errors"
	"fmt"

	"github.com/etnz/notes/date"
	"github.com/shopspring/decimal"
)

// Rollover describes one renewed note.
type Rollover struct {
	Before Record
	After  Record
}

// Matured returns the records whose maturity date is strictly before asOf.
// Records with a missing or unparseable maturity date are not reported.
func (b *Book) Matured(asOf date.Date) []Record {
	var matured []Record
	for _, r := range b.All() {
		if r.Maturity.IsZero() {
			continue
		}
		if r.Maturity.Before(asOf) {
			matured = append(matured, r)
		}
	}
	return matured
}

// Renew returns the note that follows r: it starts on r's maturity date with
// r's payoff as principal, and keeps r's term and rate.
func Renew(r Record) (Record, error) {
	switch {
	case r.Maturity.IsZero():
		return Record{}, &ParseError{Column: ColMaturity, Value: r.Cell(ColMaturity), Err: ErrUncalculated}
	case !r.Payoff.Valid:
		return Record{}, &ParseError{Column: ColPayoff, Value: r.Cell(ColPayoff), Err: ErrUncalculated}
	case !r.Rate.Valid:
		return Record{}, &ParseError{Column: ColRate, Value: r.Cell(ColRate), Err: ErrUncalculated}
	case r.Term <= 0:
		return Record{}, &ParseError{Column: ColTerm, Value: r.Cell(ColTerm), Err: ErrUncalculated}
	}

	next := r.clone()
	for _, c := range []Column{ColOrigin, ColPrincipal, ColMaturity, ColPayoff} {
		delete(next.Verbatim, c)
	}
	next.Origin = r.Maturity
	next.Principal = r.Payoff
	next.Maturity = MaturityDate(next.Origin, r.Term)
	next.Payoff = decimal.NewNullDecimal(Payoff(next.Principal.Decimal, r.Rate.Decimal, r.Term))
	return next, nil
}

// locate returns the index of a record previously read from b: by ID when it
// has one, by RolloverKey otherwise.
func (b *Book) locate(r Record) (int, error) {
	if r.ID != "" {
		return b.Index(r.ID)
	}
	return b.Find(RolloverKey(r))
}

// Rollover renews every record of matured in place.
//
// Each record is updated atomically: origin, principal, maturity and payoff
// change together or not at all. The batch is not atomic: a failing record
// is left untouched, the others are still renewed. The renewals applied are
// returned together with all failures joined.
func (b *Book) Rollover(matured []Record) ([]Rollover, error) {
	var (
		done []Rollover
		errs []error
	)
	for _, r := range matured {
		i, err := b.locate(r)
		if err != nil {
			errs = append(errs, fmt.Errorf("rollover %s: %w", r.Name(), err))
			continue
		}
		before := b.At(i)
		after, err := Renew(before)
		if err != nil {
			errs = append(errs, fmt.Errorf("rollover %s: %w", r.Name(), err))
			continue
		}
		b.Set(i, after)
		done = append(done, Rollover{Before: before, After: after})
	}
	return done, errors.Join(errs...)
}
