package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query notes with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `notes query <jsonpath>

  Evaluates a JSONPath expression against the list of notes, in their JSON
  form, and prints the result as JSON. For instance:

    notes query '$[?(@.Project == "Alpha")]["Payoff Amount"]'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query takes exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	ctrl, err := OpenController()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := query(f.Arg(0), ctrl.Records())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// query evaluates path against the JSON form of v.
func query(path string, v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cannot encode notes: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode notes: %w", err)
	}
	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return result, nil
}
