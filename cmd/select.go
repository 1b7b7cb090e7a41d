package cmd

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/notes"
)

// selection designates a single record on the command line, by surrogate
// ID or by the nine displayed values.
type selection struct {
	id    string
	key   string
	first bool
}

func (s *selection) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.id, "id", "", "Note ID of the record.")
	f.StringVar(&s.key, "key", "", `The nine displayed values of the record, comma separated, e.g. "John,Doe,Alpha,2024-01-01,9,2024-09-27,1000,0.07,1052.5".`)
	f.BoolVar(&s.first, "first", false, "When -key matches several records, use the first one.")
}

func (s *selection) empty() bool { return s.id == "" && s.key == "" }

func (s *selection) validate() error {
	switch {
	case s.id != "" && s.key != "":
		return errors.New("-id and -key cannot be used together")
	case s.empty():
		return errors.New("a record must be selected with -id or -key")
	}
	return nil
}

// parseKey parses a comma separated list of values. Values may be quoted to
// contain commas.
func parseKey(s string) (notes.Key, error) {
	r := csv.NewReader(strings.NewReader(s))
	r.TrimLeadingSpace = true
	values, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return notes.KeyFromValues(values...)
}

// get returns the selected record.
func (s *selection) get(c *notes.Controller) (notes.Record, error) {
	if s.id != "" {
		return c.Get(s.id)
	}
	key, err := parseKey(s.key)
	if err != nil {
		return notes.Record{}, err
	}
	c.FirstMatch = s.first
	return c.Find(key)
}

// entryFlags holds the user input for a record.
type entryFlags struct {
	firstName, lastName string
	project             string
	origin              string
	term                int
	principal, rate     string
	auto                string
}

func (e *entryFlags) SetFlags(f *flag.FlagSet, defaultTerm int) {
	f.StringVar(&e.firstName, "first-name", "", "Client first name.")
	f.StringVar(&e.lastName, "last-name", "", "Client last name.")
	f.StringVar(&e.project, "project", "", "Project name.")
	f.StringVar(&e.origin, "origin", "0d", "Origin date of the note. See the user manual for supported date formats.")
	f.IntVar(&e.term, "term", defaultTerm, "Term of the note in months.")
	f.StringVar(&e.principal, "principal", "", "Principal amount.")
	f.StringVar(&e.rate, "rate", "", "Annual interest rate as a decimal fraction, e.g. 0.07.")
	f.StringVar(&e.auto, "auto", "", "Auto rollover flag (true or false).")
}

// apply overrides e with the flags set on the command line.
func (e *entryFlags) apply(f *flag.FlagSet, entry notes.Entry) (notes.Entry, error) {
	var err error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "first-name":
			entry.FirstName = e.firstName
		case "last-name":
			entry.LastName = e.lastName
		case "project":
			entry.Project = e.project
		case "origin":
			d, perr := parseDay(e.origin)
			if perr != nil {
				err = errors.Join(err, fmt.Errorf("invalid -origin: %w", perr))
				return
			}
			entry.Origin = d.String()
		case "term":
			entry.Term = e.term
		case "principal":
			entry.Principal = e.principal
		case "rate":
			entry.Rate = e.rate
		case "auto":
			if e.auto == "" {
				entry.AutoRollover = nil
				return
			}
			b, perr := strconv.ParseBool(e.auto)
			if perr != nil {
				err = errors.Join(err, fmt.Errorf("invalid -auto: %w", perr))
				return
			}
			entry.AutoRollover = &b
		}
	})
	return entry, err
}

// entry returns the entry of a new record: flags with their defaults.
func (e *entryFlags) entry(f *flag.FlagSet) (notes.Entry, error) {
	d, err := parseDay(e.origin)
	if err != nil {
		return notes.Entry{}, fmt.Errorf("invalid -origin: %w", err)
	}
	return e.apply(f, notes.Entry{Origin: d.String(), Term: e.term})
}
