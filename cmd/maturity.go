package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/notes"
	"github.com/etnz/notes/renderer"
	"github.com/google/subcommands"
)

type maturedCmd struct {
	date string
}

func (*maturedCmd) Name() string     { return "matured" }
func (*maturedCmd) Synopsis() string { return "list matured notes" }
func (*maturedCmd) Usage() string {
	return `notes matured [-d <date>]

  Lists the notes whose maturity date is strictly before the date. Notes
  without a valid maturity date are never listed.
`
}

func (c *maturedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Reference date. See the user manual for supported date formats.")
}

func (c *maturedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ctrl, err := OpenController()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := settings()
	title := fmt.Sprintf("Notes matured before %s", on)
	printMarkdown(renderer.RenderRecords(renderer.NewRecordTable(title, ctrl.FindMatured(on), on, cfg.DueDays, cfg.Currency)))
	return subcommands.ExitSuccess
}

type dueCmd struct {
	date string
	days int
}

func (*dueCmd) Name() string     { return "due" }
func (*dueCmd) Synopsis() string { return "list notes maturing soon" }
func (*dueCmd) Usage() string {
	return `notes due [-d <date>] [-days <n>]

  Lists the notes maturing within n days of the date, or already past due.
`
}

func (c *dueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Reference date. See the user manual for supported date formats.")
	f.IntVar(&c.days, "days", 0, "Number of days ahead. Defaults to $NOTES_DUE_DAYS or 7.")
}

func (c *dueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg := settings()
	days := c.days
	if days <= 0 {
		days = cfg.DueDays
	}

	ctrl, err := OpenController()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	title := fmt.Sprintf("Notes due within %d days of %s", days, on)
	printMarkdown(renderer.RenderRecords(renderer.NewRecordTable(title, ctrl.DueSoon(on, days), on, days, cfg.Currency)))
	return subcommands.ExitSuccess
}

type rolloverCmd struct {
	date   string
	auto   bool
	dryRun bool
}

func (*rolloverCmd) Name() string     { return "rollover" }
func (*rolloverCmd) Synopsis() string { return "renew matured notes" }
func (*rolloverCmd) Usage() string {
	return `notes rollover [-d <date>] [-auto] [-n]

  Renews every note matured before the date: the new origin is the old
  maturity, the new principal is the old payoff, and the maturity and payoff
  are computed again with the same term and rate.

  Notes that cannot be renewed are reported and left untouched; the others
  are saved.
`
}

func (c *rolloverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Reference date. See the user manual for supported date formats.")
	f.BoolVar(&c.auto, "auto", false, "Only renew notes flagged for auto rollover.")
	f.BoolVar(&c.dryRun, "n", false, "Dry run: show the renewals but do not save them.")
}

func (c *rolloverCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ctrl, err := OpenController()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	matured := ctrl.FindMatured(on)
	if c.auto {
		matured = autoRollover(matured)
	}
	done, rollErr := ctrl.Rollover(matured)
	printMarkdown(renderer.RenderRollover(renderer.NewRolloverReport(on, done, rollErr, settings().Currency)))

	status := save(ctrl, c.dryRun)
	if rollErr != nil {
		return subcommands.ExitFailure
	}
	return status
}

// autoRollover keeps the records flagged for auto rollover.
func autoRollover(records []notes.Record) []notes.Record {
	var auto []notes.Record
	for _, r := range records {
		if r.AutoRollover != nil && *r.AutoRollover {
			auto = append(auto, r)
		}
	}
	return auto
}
