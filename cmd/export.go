package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/notes"
	"github.com/etnz/notes/date"
	"github.com/etnz/notes/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	selection
	project string
	all     bool
	matured bool
	date    string
	output  string
	format  string
	dryRun  bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export client letters" }
func (*exportCmd) Usage() string {
	return `notes export (-id <id> | -key <values> [-first] | -p <project> | -all | -matured [-d <date>] [-n]) [-o <dir>] [-format md|html|pdf]

  Writes one letter per selected note into the output directory, named
  <first>_<last>.<ext>. An existing letter with the same name is replaced.

  With -matured, every note matured before the date is renewed and the
  letters describe the notes as they were before the renewal. Renewals are
  saved unless -n is set.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	f.StringVar(&c.project, "p", "", "Export the notes whose project name contains this text (case-insensitive).")
	f.BoolVar(&c.all, "all", false, "Export every note.")
	f.BoolVar(&c.matured, "matured", false, "Renew and export the notes matured before the date.")
	f.StringVar(&c.date, "d", "0d", "Reference date for -matured.")
	f.StringVar(&c.output, "o", "", "Output directory. Defaults to the -output global flag.")
	f.StringVar(&c.format, "format", "", "Letter format: md, html or pdf. Defaults to $NOTES_LETTER_FORMAT or pdf.")
	f.BoolVar(&c.dryRun, "n", false, "With -matured, do not save the renewals.")
}

// modes counts the selection modes set on the command line.
func (c *exportCmd) modes() int {
	n := 0
	for _, set := range []bool{!c.selection.empty(), c.project != "", c.all, c.matured} {
		if set {
			n++
		}
	}
	return n
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.modes() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -id, -key, -p, -all or -matured is required")
		return subcommands.ExitUsageError
	}
	if c.id != "" && c.key != "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -key cannot be used together")
		return subcommands.ExitUsageError
	}
	exp, err := newExporter(c.output, c.format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
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

	if c.matured {
		return c.exportMatured(ctrl, exp, on)
	}

	var records []notes.Record
	switch {
	case c.all:
		records = ctrl.Records()
	case c.project != "":
		records = ctrl.Search(c.project)
	default:
		r, err := c.get(ctrl)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		records = []notes.Record{r}
	}
	if len(records) == 0 {
		fmt.Println("No notes to export.")
		return subcommands.ExitSuccess
	}

	paths, err := ctrl.Export(exp, records)
	printPaths(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting letters: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *exportCmd) exportMatured(ctrl *notes.Controller, exp notes.Exporter, on date.Date) subcommands.ExitStatus {
	if c.dryRun {
		matured := ctrl.FindMatured(on)
		done, rollErr := ctrl.Rollover(matured)
		printMarkdown(renderer.RenderRollover(renderer.NewRolloverReport(on, done, rollErr, settings().Currency)))
		fmt.Println("Dry run, no letter written and changes not saved.")
		if rollErr != nil {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	done, paths, err := ctrl.ExportMatured(exp, on)
	if len(done) == 0 && err == nil {
		fmt.Println("No matured notes.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderRollover(renderer.NewRolloverReport(on, done, err, settings().Currency)))
	printPaths(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting matured notes: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printPaths(paths []string) {
	for _, p := range paths {
		fmt.Println("Wrote", p)
	}
}
