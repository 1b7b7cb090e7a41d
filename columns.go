package notes

import (
	"strconv"
	"strings"

	"github.com/etnz/notes/date"
	"github.com/shopspring/decimal"
)

// Column is the label of a persisted column, as it appears in the header of
// the store file.
type Column string

const (
	ColFirstName    Column = "First Name"
	ColLastName     Column = "Last Name"
	ColProject      Column = "Project Name"
	ColOrigin       Column = "Note Origin Date"
	ColTerm         Column = "Months To Maturity"
	ColMaturity     Column = "Note Maturity Date"
	ColPrincipal    Column = "Principal"
	ColRate         Column = "Interest Rate"
	ColPayoff       Column = "Principal + Interest"
	ColAutoRollover Column = "Auto Rollover"
	ColID           Column = "Note ID"
)

// Schema lists the columns of the current schema in canonical order.
var Schema = []Column{
	ColFirstName, ColLastName, ColProject,
	ColOrigin, ColTerm, ColMaturity,
	ColPrincipal, ColRate, ColPayoff,
	ColAutoRollover, ColID,
}

// Displayed lists the columns shown to the user, in display order. Their
// values form the natural key of a record.
var Displayed = Schema[:9]

// Kind classifies how a column value is parsed and normalized.
type Kind int

const (
	TextKind Kind = iota
	DateKind
	MonthsKind
	DecimalKind
	BoolKind
)

// Kind returns the kind of values stored in c. Unknown columns are text.
func (c Column) Kind() Kind {
	switch c {
	case ColOrigin, ColMaturity:
		return DateKind
	case ColTerm:
		return MonthsKind
	case ColPrincipal, ColRate, ColPayoff:
		return DecimalKind
	case ColAutoRollover:
		return BoolKind
	default:
		return TextKind
	}
}

// Known reports whether c belongs to the current schema.
func (c Column) Known() bool {
	for _, s := range Schema {
		if s == c {
			return true
		}
	}
	return false
}

// Normalize returns the canonical text of value for column c, the form
// returned by Record.Cell. Values that cannot be parsed for the column kind
// are returned unchanged, so that they still compare equal to verbatim cells.
func Normalize(c Column, value string) string {
	if c.Kind() == TextKind {
		return value
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	switch c.Kind() {
	case DateKind:
		if d, err := date.Parse(trimmed); err == nil {
			return d.String()
		}
	case MonthsKind:
		if n, err := parseMonths(trimmed); err == nil {
			return strconv.Itoa(n)
		}
	case DecimalKind:
		if d, err := decimal.NewFromString(trimmed); err == nil {
			return d.String()
		}
	case BoolKind:
		if b, err := strconv.ParseBool(trimmed); err == nil {
			return strconv.FormatBool(b)
		}
	}
	return value
}

// parseMonths accepts "9" as well as the "9.0" spreadsheets tend to produce.
func parseMonths(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, strconv.ErrSyntax
	}
	return int(d.IntPart()), nil
}
