package notes

import (
	"fmt"
	"slices"
	"strings"
)

// Table is the tabular form of a Book, as read from or written to a store
// file: a header row of column labels and one row of cells per record.
type Table struct {
	Header []string
	Rows   [][]string
}

// DecodeBook builds a Book from a table.
//
// Columns of the schema missing from the header are back-filled with null
// values; unknown columns are kept and written back by EncodeBook. Rows
// without a Note ID get a fresh one, counted by Book.NewIDs. Rows shorter
// than the header are padded with empty cells, cells beyond the header go
// to placeholder "Column N" columns.
func DecodeBook(t Table) (*Book, error) {
	cols := make([]Column, len(t.Header))
	seen := make(map[Column]bool, len(t.Header))
	b := NewBook()
	for i, h := range t.Header {
		c := Column(strings.TrimSpace(h))
		if c == "" {
			c = unnamed(i, seen)
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate column %q in header", c)
		}
		seen[c] = true
		cols[i] = c
		if !c.Known() {
			b.extra = append(b.extra, c)
		}
	}

	for _, row := range t.Rows {
		if isBlank(row) {
			continue
		}
		if len(row) > len(cols) && isBlank(row[len(cols):]) {
			row = row[:len(cols)]
		}
		for i := len(cols); i < len(row); i++ {
			c := unnamed(i, seen)
			seen[c] = true
			cols = append(cols, c)
			b.extra = append(b.extra, c)
		}
		var r Record
		for i, c := range cols {
			var v string
			if i < len(row) {
				v = row[i]
			}
			r.SetCell(c, v)
		}
		if r.ID == "" {
			r.ID = newID()
			b.newIDs++
		}
		b.records = append(b.records, r)
	}
	return b, nil
}

// EncodeBook returns the table of b: schema columns first, then unknown ones.
func EncodeBook(b *Book) Table {
	cols := b.Columns()
	t := Table{
		Header: make([]string, len(cols)),
		Rows:   make([][]string, 0, len(b.records)),
	}
	for i, c := range cols {
		t.Header[i] = string(c)
	}
	for _, r := range b.records {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = r.Cell(c)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// unnamed returns the placeholder name of the i-th column, made unique
// against seen.
func unnamed(i int, seen map[Column]bool) Column {
	c := Column(fmt.Sprintf("Column %d", i+1))
	for n := 2; seen[c]; n++ {
		c = Column(fmt.Sprintf("Column %d (%d)", i+1, n))
	}
	return c
}

func isBlank(row []string) bool {
	return !slices.ContainsFunc(row, func(s string) bool { return strings.TrimSpace(s) != "" })
}
