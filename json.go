package notes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	keyBytes, _ := json.Marshal(key)
	w.Write(keyBytes)
	w.WriteString(":")
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// MarshalJSON finalizes the JSON object construction, wraps the content in
// braces, and returns the complete JSON byte slice.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}

// MarshalJSON encodes r as an object keyed by column labels, in schema
// order. Nulls are encoded as null, decimals as numbers, and cells kept
// verbatim as strings.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, c := range Schema {
		w.Append(string(c), r.jsonValue(c))
	}
	var unknown []Column
	for c := range r.Verbatim {
		if !c.Known() {
			unknown = append(unknown, c)
		}
	}
	slices.Sort(unknown)
	for _, c := range unknown {
		w.Append(string(c), r.Verbatim[c])
	}
	return w.MarshalJSON()
}

func (r Record) jsonValue(c Column) any {
	if v, ok := r.Verbatim[c]; ok {
		return v
	}
	switch c.Kind() {
	case DecimalKind:
		var d decimal.NullDecimal
		switch c {
		case ColPrincipal:
			d = r.Principal
		case ColRate:
			d = r.Rate
		case ColPayoff:
			d = r.Payoff
		}
		if !d.Valid {
			return nil
		}
		return d.Decimal
	case MonthsKind:
		if r.Term == 0 {
			return nil
		}
		return r.Term
	case BoolKind:
		return r.AutoRollover
	}
	if s := r.Cell(c); s != "" {
		return s
	}
	return nil
}
