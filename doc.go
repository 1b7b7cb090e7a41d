// Package notes provides the types and functions to track client investment
// notes: principal, interest rate, origin and maturity dates, and rollover
// behaviour. It is designed to be local-first: the whole record set lives in
// a single spreadsheet file that the user owns.
//
// The core functionalities include:
//   - Calculation: maturity dates use 30-day months and payoffs use simple
//     interest rounded to cents, with exact decimal arithmetic.
//   - Matching: records are located by their surrogate ID when known, or by
//     the tuple of their displayed values. Ambiguous tuples are reported.
//   - Rollover: a matured note is renewed in place, its payoff becoming the
//     principal of a new note with the same term and rate.
//   - Persistence: the tabular encoding of a Book, with additive schema
//     backfill so older files keep loading.
//
// This package serves as the foundational logic for the `notes` command-line
// tool. The Controller is the only mutator of a Book.
package notes
