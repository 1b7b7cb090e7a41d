package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/notes"
	"github.com/etnz/notes/config"
	"github.com/etnz/notes/date"
	"github.com/etnz/notes/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	entryFlags
	dryRun bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new investment note" }
func (*addCmd) Usage() string {
	return `notes add -first-name <name> -last-name <name> -project <name> -principal <amount> -rate <rate> [-origin <date>] [-term <months>] [-auto <bool>] [-n]

  Adds a note to the store. The maturity date and the payoff are computed
  from the origin, the term, the principal and the rate.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.entryFlags.SetFlags(f, config.Load().DefaultTerm)
	f.BoolVar(&c.dryRun, "n", false, "Dry run: show the record but do not save it.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entry, err := c.entry(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ctrl, err := OpenController()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := ctrl.Add(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid note:\n%v\n", err)
		return subcommands.ExitFailure
	}
	cfg := settings()
	printMarkdown(renderer.RenderRecords(renderer.NewRecordTable("Added", []notes.Record{r}, date.Today(), cfg.DueDays, cfg.Currency)))
	return save(ctrl, c.dryRun)
}

type editCmd struct {
	selection
	entryFlags
	dryRun bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an investment note" }
func (*editCmd) Usage() string {
	return `notes edit (-id <id> | -key <values> [-first]) [-first-name <name>] [-last-name <name>] [-project <name>] [-origin <date>] [-term <months>] [-principal <amount>] [-rate <rate>] [-auto <bool>] [-n]

  Edits the selected note. Only the fields given on the command line change;
  the maturity date and the payoff are computed again.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	c.entryFlags.SetFlags(f, config.Load().DefaultTerm)
	f.BoolVar(&c.dryRun, "n", false, "Dry run: show the record but do not save it.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ctrl, err := OpenController()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	old, err := c.get(ctrl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	entry, err := c.apply(f, notes.EntryOf(old))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	r, err := ctrl.EditID(old.ID, entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid note:\n%v\n", err)
		return subcommands.ExitFailure
	}
	cfg := settings()
	printMarkdown(renderer.RenderRecords(renderer.NewRecordTable("Edited", []notes.Record{r}, date.Today(), cfg.DueDays, cfg.Currency)))
	return save(ctrl, c.dryRun)
}

type deleteCmd struct {
	selection
	dryRun bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an investment note" }
func (*deleteCmd) Usage() string {
	return `notes delete (-id <id> | -key <values> [-first]) [-n]

  Deletes the selected note from the store.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	f.BoolVar(&c.dryRun, "n", false, "Dry run: show the record but do not delete it.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ctrl, err := OpenController()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := c.get(ctrl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := ctrl.DeleteID(r.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cfg := settings()
	printMarkdown(renderer.RenderRecords(renderer.NewRecordTable("Deleted", []notes.Record{r}, date.Today(), cfg.DueDays, cfg.Currency)))
	return save(ctrl, c.dryRun)
}
