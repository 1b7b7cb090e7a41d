package notes

import (
	"fmt"
	"strings"
)

// Field is one column value of a Key.
type Field struct {
	Column Column
	Value  string
}

// Key selects records by value. A record matches when, for every field, the
// normalized value equals the record cell.
//
// Keys are natural keys: nothing guarantees that a key selects a single
// record, see Book.Find.
type Key []Field

func (k Key) String() string {
	parts := make([]string, len(k))
	for i, f := range k {
		parts[i] = fmt.Sprintf("%s=%q", f.Column, f.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Matches reports whether r matches every field of k.
func (k Key) Matches(r Record) bool {
	for _, f := range k {
		if Normalize(f.Column, f.Value) != r.Cell(f.Column) {
			return false
		}
	}
	return true
}

// KeyOf returns the key made of the given columns of r.
func KeyOf(r Record, cols ...Column) Key {
	k := make(Key, len(cols))
	for i, c := range cols {
		k[i] = Field{Column: c, Value: r.Cell(c)}
	}
	return k
}

// FullKey returns the key made of all displayed values of r.
func FullKey(r Record) Key { return KeyOf(r, Displayed...) }

// RolloverKey returns the reduced key used to locate a matured record: first
// name, last name, maturity date and payoff. It is weaker than FullKey: two
// notes of the same client maturing the same day for the same payoff collide.
func RolloverKey(r Record) Key {
	return KeyOf(r, ColFirstName, ColLastName, ColMaturity, ColPayoff)
}

// KeyFromValues builds a full key from the displayed values in display
// order, as a table selection yields them.
func KeyFromValues(values ...string) (Key, error) {
	if len(values) != len(Displayed) {
		return nil, fmt.Errorf("a record key has %d values, got %d", len(Displayed), len(values))
	}
	k := make(Key, len(values))
	for i, v := range values {
		k[i] = Field{Column: Displayed[i], Value: v}
	}
	return k, nil
}

// FindAll returns the indexes of all records matching key, in scan order.
func (b *Book) FindAll(key Key) []int {
	var found []int
	for i, r := range b.records {
		if key.Matches(r) {
			found = append(found, i)
		}
	}
	return found
}

// Find returns the index of the record matching key.
//
// It returns ErrNotFound when there is none. When several records match, it
// returns the first index in scan order along with an *AmbiguousMatchError;
// the caller decides whether the first match is acceptable.
func (b *Book) Find(key Key) (int, error) {
	found := b.FindAll(key)
	switch len(found) {
	case 0:
		return -1, fmt.Errorf("key %s: %w", key, ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return found[0], &AmbiguousMatchError{Key: key, Indexes: found}
	}
}

// Index returns the index of the record with the given surrogate ID.
func (b *Book) Index(id string) (int, error) {
	if id != "" {
		for i, r := range b.records {
			if r.ID == id {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("id %q: %w", id, ErrNotFound)
}
