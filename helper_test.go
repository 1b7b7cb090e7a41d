package notes

import (
	"strings"
	"testing"

	"github.com/etnz/notes/date"
	"github.com/shopspring/decimal"
)

// D is a helper for tests to create decimals from constants.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ND is a helper for tests to create non-null decimals from constants.
func ND(s string) decimal.NullDecimal { return decimal.NewNullDecimal(D(s)) }

// note is a helper for tests to create a computed record.
func note(first, last, project, origin string, term int, principal, rate string) Record {
	r := Record{
		FirstName: first,
		LastName:  last,
		Project:   project,
		Origin:    date.MustParse(origin),
		Term:      term,
		Principal: ND(principal),
		Rate:      ND(rate),
	}
	r.Compute()
	return r
}

// bookOf decodes a book from csv-like lines: the first one is the header.
func bookOf(t *testing.T, lines ...string) *Book {
	t.Helper()
	var tbl Table
	for i, l := range lines {
		cells := strings.Split(l, ",")
		if i == 0 {
			tbl.Header = cells
			continue
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	b, err := DecodeBook(tbl)
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}
	return b
}

const testHeader = "First Name,Last Name,Project Name,Note Origin Date,Months To Maturity,Note Maturity Date,Principal,Interest Rate,Principal + Interest,Auto Rollover,Note ID"

// memStore is a Store that keeps the book in memory.
type memStore struct {
	book  *Book
	saves int
}

func (s *memStore) Load() (*Book, error) {
	if s.book == nil {
		s.book = NewBook()
	}
	return s.book, nil
}

func (s *memStore) Save(b *Book) error {
	s.book = b
	s.saves++
	return nil
}
