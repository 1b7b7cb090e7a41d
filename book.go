package notes

import (
	"iter"
	"slices"
	"strings"

	"github.com/etnz/notes/date"
)

// Book is the ordered, in-memory collection of records.
//
// Records are returned by value: mutating a returned Record does not change
// the Book, use Set.
type Book struct {
	records []Record
	extra   []Column // columns found in the store but unknown to the schema
	newIDs  int      // Note IDs assigned by DecodeBook
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{records: make([]Record, 0)}
}

// NewIDs returns the number of records DecodeBook gave a Note ID because
// the store had none. Those IDs only last if the book is saved.
func (b *Book) NewIDs() int { return b.newIDs }

// Len returns the number of records.
func (b *Book) Len() int { return len(b.records) }

// At returns the i-th record.
func (b *Book) At(i int) Record { return b.records[i].clone() }

// All iterates over the records in order.
func (b *Book) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range b.records {
			if !yield(i, r.clone()) {
				return
			}
		}
	}
}

// Records returns a copy of all records.
func (b *Book) Records() []Record {
	out := make([]Record, 0, len(b.records))
	for _, r := range b.All() {
		out = append(out, r)
	}
	return out
}

// Append adds r at the end and returns its index.
func (b *Book) Append(r Record) int {
	b.records = append(b.records, r.clone())
	return len(b.records) - 1
}

// Set replaces the i-th record.
func (b *Book) Set(i int, r Record) { b.records[i] = r.clone() }

// Remove drops the i-th record, keeping the order of the others.
func (b *Book) Remove(i int) { b.records = slices.Delete(b.records, i, i+1) }

// Columns returns the columns of the book: the schema, then any unknown
// column carried over from the store.
func (b *Book) Columns() []Column {
	return append(slices.Clone(Schema), b.extra...)
}

// Search returns the records whose project name contains query, ignoring
// case. An empty query returns every record.
func (b *Book) Search(query string) []Record {
	query = strings.ToLower(query)
	var found []Record
	for _, r := range b.All() {
		if strings.Contains(strings.ToLower(r.Project), query) {
			found = append(found, r)
		}
	}
	return found
}

// DueWithin returns the records maturing no later than days after asOf,
// including the ones already past due. Records without a maturity date are
// skipped.
func (b *Book) DueWithin(asOf date.Date, days int) []Record {
	var found []Record
	for _, r := range b.All() {
		if r.Maturity.IsZero() {
			continue
		}
		if r.Maturity.Sub(asOf) <= days {
			found = append(found, r)
		}
	}
	return found
}
