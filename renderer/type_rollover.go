package renderer

import (
	"github.com/etnz/notes"
	"github.com/etnz/notes/date"
)

// RolloverReport is the view of a rollover batch.
type RolloverReport struct {
	AsOf     string
	Rolled   []RolledNote
	Failures []string
}

// RolledNote describes one renewed note.
type RolledNote struct {
	Name         string
	Project      string
	OldPrincipal string
	NewPrincipal string
	Origin       string
	Maturity     string
	Payoff       string
}

// NewRolloverReport returns the report of rollovers done on asOf. err is
// the joined error returned by the rollover, if any.
func NewRolloverReport(asOf date.Date, done []notes.Rollover, err error, currency string) *RolloverReport {
	rep := &RolloverReport{AsOf: asOf.String()}
	for _, ro := range done {
		rep.Rolled = append(rep.Rolled, RolledNote{
			Name:         ro.After.Name(),
			Project:      ro.After.Project,
			OldPrincipal: notes.FormatNullMoney(ro.Before.Principal, currency),
			NewPrincipal: notes.FormatNullMoney(ro.After.Principal, currency),
			Origin:       ro.After.Origin.String(),
			Maturity:     ro.After.Maturity.String(),
			Payoff:       notes.FormatNullMoney(ro.After.Payoff, currency),
		})
	}
	for _, e := range unjoin(err) {
		rep.Failures = append(rep.Failures, e.Error())
	}
	return rep
}

// unjoin flattens errors built with errors.Join.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	j, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var errs []error
	for _, e := range j.Unwrap() {
		errs = append(errs, unjoin(e)...)
	}
	return errs
}
