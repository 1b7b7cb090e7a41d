package notes

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record matches a key or an ID.
	ErrNotFound = errors.New("record not found")
	// ErrAmbiguousMatch is wrapped by AmbiguousMatchError.
	ErrAmbiguousMatch = errors.New("ambiguous match")
	// ErrUncalculated is returned when a derived value (payoff, maturity) is
	// null and an operation needs it.
	ErrUncalculated = errors.New("value not calculated")
	// ErrRequired is wrapped by a ParseError for a missing mandatory value.
	ErrRequired = errors.New("value is required")
)

// ParseError reports a date or numeric value that could not be parsed.
type ParseError struct {
	Column Column
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrRequired) {
		return fmt.Sprintf("%s: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AmbiguousMatchError reports a key matching more than one record. Indexes
// lists every match in scan order.
type AmbiguousMatchError struct {
	Key     Key
	Indexes []int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("key %s matches %d records (rows %v)", e.Key, len(e.Indexes), e.Indexes)
}

func (e *AmbiguousMatchError) Unwrap() error { return ErrAmbiguousMatch }
