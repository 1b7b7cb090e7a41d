// Package cmd implements the CLI application to manage investment notes.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/notes"
	"github.com/etnz/notes/config"
	"github.com/etnz/notes/date"
	"github.com/etnz/notes/letter"
	"github.com/etnz/notes/logger"
	"github.com/etnz/notes/store"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&deleteCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&queryCmd{}, "records")

	c.Register(&maturedCmd{}, "maturity")
	c.Register(&dueCmd{}, "maturity")
	c.Register(&rolloverCmd{}, "maturity")

	c.Register(&exportCmd{}, "letters")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storeFile = flag.String("store", "", "Path to the investments store file (.xlsx or .csv). Defaults to $NOTES_STORE or investments.xlsx.")
	outputDir = flag.String("output", "", "Directory for exported letters. Defaults to $NOTES_OUTPUT_DIR or output.")
	currency  = flag.String("currency", "", "Currency of amounts in letters and reports. Defaults to $NOTES_CURRENCY or USD.")
	Verbose   = flag.Bool("v", false, "Log every change to stderr.")
)

// settings returns the configuration with global flags applied.
func settings() *config.Config {
	cfg := config.Load()
	if *storeFile != "" {
		cfg.StorePath = *storeFile
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	logger.Init(cfg.Env, cfg.LogLevel)
	return cfg
}

// OpenController loads the store configured by flags and environment.
func OpenController() (*notes.Controller, error) {
	cfg := settings()
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, err
	}
	return notes.Open(st, logger.Get())
}

// newExporter returns the letter exporter configured by flags and
// environment. Empty arguments keep the configured value.
func newExporter(dir, format string) (*letter.Exporter, error) {
	cfg := settings()
	if dir == "" {
		dir = cfg.OutputDir
	}
	if format == "" {
		format = cfg.LetterFormat
	}
	f, err := letter.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &letter.Exporter{Dir: dir, Format: f, Currency: cfg.Currency, Firm: cfg.Firm}, nil
}

// parseDay parses a date flag, relative to today.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.ParseRelative(s, date.Today())
}

// save persists the changes unless dryRun is set.
func save(c *notes.Controller, dryRun bool) subcommands.ExitStatus {
	if !c.Dirty() {
		return subcommands.ExitSuccess
	}
	if dryRun {
		fmt.Println("Dry run, changes not saved.")
		return subcommands.ExitSuccess
	}
	if err := c.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %q: %v\n", settings().StorePath, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved %s\n", settings().StorePath)
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, or prints it as-is when it
// cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
