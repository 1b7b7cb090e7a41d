package notes

import (
	"maps"
	"strconv"
	"strings"

	"github.com/etnz/notes/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is one client investment note.
//
// Maturity and Payoff are derived from the other fields (see Compute). A
// null (invalid) Payoff means uncalculated and must never be read as zero.
type Record struct {
	ID           string
	FirstName    string
	LastName     string
	Project      string
	Origin       date.Date
	Term         int // in months
	Maturity     date.Date
	Principal    decimal.NullDecimal
	Rate         decimal.NullDecimal // annualized fraction, 0.07 is 7%
	Payoff       decimal.NullDecimal // principal plus interest at maturity
	AutoRollover *bool

	// Verbatim holds the text of cells that could not be parsed into their
	// typed field, and of columns unknown to this version. They are written
	// back as-is.
	Verbatim map[Column]string
}

// newID returns a fresh surrogate identifier.
func newID() string { return uuid.NewString() }

// Name returns "first last".
func (r Record) Name() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Cell returns the canonical text of column c.
func (r Record) Cell(c Column) string {
	if v, ok := r.Verbatim[c]; ok {
		return v
	}
	switch c {
	case ColFirstName:
		return r.FirstName
	case ColLastName:
		return r.LastName
	case ColProject:
		return r.Project
	case ColOrigin:
		return r.Origin.String()
	case ColTerm:
		if r.Term == 0 {
			return ""
		}
		return strconv.Itoa(r.Term)
	case ColMaturity:
		return r.Maturity.String()
	case ColPrincipal:
		return decimalCell(r.Principal)
	case ColRate:
		return decimalCell(r.Rate)
	case ColPayoff:
		return decimalCell(r.Payoff)
	case ColAutoRollover:
		if r.AutoRollover == nil {
			return ""
		}
		return strconv.FormatBool(*r.AutoRollover)
	case ColID:
		return r.ID
	}
	return ""
}

func decimalCell(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// SetCell parses value into the field of column c. Empty values set the
// field to null. Values that do not parse are kept verbatim and the typed
// field is reset, so that the record never holds a stale typed value.
func (r *Record) SetCell(c Column, value string) {
	delete(r.Verbatim, c)
	trimmed := strings.TrimSpace(value)
	ok := true
	switch c {
	case ColFirstName:
		r.FirstName = value
	case ColLastName:
		r.LastName = value
	case ColProject:
		r.Project = value
	case ColID:
		r.ID = trimmed
	case ColOrigin:
		r.Origin, ok = parseDateCell(trimmed)
	case ColMaturity:
		r.Maturity, ok = parseDateCell(trimmed)
	case ColTerm:
		r.Term = 0
		if trimmed != "" {
			n, err := parseMonths(trimmed)
			// Terms below one month have no typed form and stay verbatim.
			ok = err == nil && n > 0
			if ok {
				r.Term = n
			}
		}
	case ColPrincipal:
		r.Principal, ok = parseDecimalCell(trimmed)
	case ColRate:
		r.Rate, ok = parseDecimalCell(trimmed)
	case ColPayoff:
		r.Payoff, ok = parseDecimalCell(trimmed)
	case ColAutoRollover:
		r.AutoRollover = nil
		if trimmed != "" {
			b, err := strconv.ParseBool(trimmed)
			ok = err == nil
			if ok {
				r.AutoRollover = &b
			}
		}
	default:
		ok = value == ""
	}
	if !ok {
		if r.Verbatim == nil {
			r.Verbatim = make(map[Column]string)
		}
		r.Verbatim[c] = value
	}
}

func parseDateCell(s string) (date.Date, bool) {
	if s == "" {
		return date.Date{}, true
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, false
	}
	return d, true
}

func parseDecimalCell(s string) (decimal.NullDecimal, bool) {
	if s == "" {
		return decimal.NullDecimal{}, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, false
	}
	return decimal.NewNullDecimal(d), true
}

// clone returns a copy of r that shares no mutable state with it.
func (r Record) clone() Record {
	if r.AutoRollover != nil {
		b := *r.AutoRollover
		r.AutoRollover = &b
	}
	r.Verbatim = maps.Clone(r.Verbatim)
	return r
}
