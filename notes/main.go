// Command notes tracks client investment notes.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/notes/cmd"
	"github.com/etnz/notes/docs"
	"github.com/etnz/notes/logger"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "notes")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	completion(commander).Complete("notes")

	flag.Parse()
	defer logger.Sync()

	// Try to run an extension when the subcommand is unknown.
	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	logger.Sync()
	os.Exit(int(status))
}

func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			found = true
		}
	})
	return found
}

// completion returns the shell completion tree of the commands and their
// flags.
func completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"store":    predict.Files("*.xlsx"),
			"output":   predict.Dirs("*"),
			"currency": predict.Set{"USD", "EUR", "GBP", "CHF"},
			"v":        predict.Nothing,
		},
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		cc := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			cc.Flags[f.Name] = flagPredictor(f.Name)
		})
		root.Sub[sub.Name()] = cc
	})
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func flagPredictor(name string) complete.Predictor {
	switch name {
	case "format":
		return predict.Set{"md", "html", "pdf"}
	case "o":
		return predict.Dirs("*")
	case "auto":
		return predict.Set{"true", "false"}
	case "d", "origin":
		return predict.Set{"0d", "-1d", "+1w", "+1m"}
	}
	return predict.Something
}
