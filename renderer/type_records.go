package renderer

import (
	"strings"

	"github.com/etnz/notes"
	"github.com/etnz/notes/date"
)

// RecordTable is the tabular view of a list of records.
type RecordTable struct {
	Title    string
	Rows     []RecordRow
	DueDays  int
	DueCount int
}

// RecordRow is one line of a RecordTable, values already formatted.
type RecordRow struct {
	Due       bool // matures within DueDays or is past due
	FirstName string
	LastName  string
	Project   string
	Origin    string
	Term      string
	Maturity  string
	Principal string
	Rate      string
	Payoff    string
	Auto      string
	ID        string
}

// NewRecordTable returns the table of records. Rows maturing within dueDays
// of asOf are flagged.
func NewRecordTable(title string, records []notes.Record, asOf date.Date, dueDays int, currency string) *RecordTable {
	t := &RecordTable{Title: title, DueDays: dueDays}
	for _, r := range records {
		row := RecordRow{
			Due:       !r.Maturity.IsZero() && r.Maturity.Sub(asOf) <= dueDays,
			FirstName: cell(r.FirstName),
			LastName:  cell(r.LastName),
			Project:   cell(r.Project),
			Origin:    cell(r.Cell(notes.ColOrigin)),
			Term:      cell(r.Cell(notes.ColTerm)),
			Maturity:  cell(r.Cell(notes.ColMaturity)),
			Principal: amount(r, notes.ColPrincipal, currency),
			Rate:      cell(r.Cell(notes.ColRate)),
			Payoff:    amount(r, notes.ColPayoff, currency),
			Auto:      cell(r.Cell(notes.ColAutoRollover)),
			ID:        r.ID,
		}
		if row.Due {
			t.DueCount++
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// amount formats a money column, keeping unparsed cells visible as-is.
func amount(r notes.Record, c notes.Column, currency string) string {
	if v, ok := r.Verbatim[c]; ok {
		return cell(v)
	}
	switch c {
	case notes.ColPrincipal:
		return cell(notes.FormatNullMoney(r.Principal, currency))
	default:
		return cell(notes.FormatNullMoney(r.Payoff, currency))
	}
}

// cell escapes a value for a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
