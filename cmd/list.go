package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/notes"
	"github.com/etnz/notes/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	project string
	date    string
	json    bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list investment notes" }
func (*listCmd) Usage() string {
	return `notes list [-p <project>] [-d <date>] [-json]

  Lists the notes in the store. Notes maturing within the due period of the
  date (or already past due) are flagged.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "p", "", "Only list notes whose project name contains this text (case-insensitive).")
	f.StringVar(&c.date, "d", "0d", "Reference date to flag notes due soon.")
	f.BoolVar(&c.json, "json", false, "Print the notes as JSON.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	records := ctrl.Search(c.project)
	if c.json {
		if records == nil {
			records = []notes.Record{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding notes: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	cfg := settings()
	title := "Investment Notes"
	if c.project != "" {
		title = fmt.Sprintf("Investment Notes matching %q", c.project)
	}
	printMarkdown(renderer.RenderRecords(renderer.NewRecordTable(title, records, on, cfg.DueDays, cfg.Currency)))
	return subcommands.ExitSuccess
}
