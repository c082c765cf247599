// Package cmd implements the CLI application to manage a freelance business.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/canvaproptk-png/ProFin-Management"
	"github.com/canvaproptk-png/ProFin-Management/renderer"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addProjectCmd{},
	&updateProjectCmd{},
	&deleteProjectCmd{},
	&listProjectsCmd{},

	&addIncomeCmd{},
	&updateIncomeCmd{},
	&deleteIncomeCmd{},
	&listIncomesCmd{},

	&addExpenseCmd{},
	&updateExpenseCmd{},
	&deleteExpenseCmd{},
	&listExpensesCmd{},

	&profileCmd{},
	&dashboardCmd{},
	&adviseCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFile = flag.String("state", defaultStateFile(), "Path to the state file")

func defaultStateFile() string {
	if p := os.Getenv("PROFIN_STATE_FILE"); p != "" {
		return p
	}
	return "profin.json"
}

// OpenStore is the central function to open the state store. A missing or
// unreadable state file yields a store seeded with sample data.
func OpenStore() *profin.Store {
	return profin.NewStore(profin.NewFileGateway(*stateFile))
}

// apply runs one command against the store and reports the outcome.
// A flush failure is a warning, not a failure: the change is applied in
// memory and the next successful save will persist it.
func apply(store *profin.Store, cmd profin.Command) subcommands.ExitStatus {
	_, err := store.Apply(cmd)
	var flushErr *profin.FlushError
	if errors.As(err, &flushErr) {
		fmt.Fprintf(os.Stderr, "Warning: change applied but not saved: %v\n", flushErr)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// currency returns the profile currency code of the store.
func currency(store *profin.Store) string {
	return store.Snapshot().Profile.Currency
}

// parseMoney parses a CLI amount flag.
func parseMoney(flagName, value string) (profin.Money, error) {
	m, err := profin.ParseMoney(value)
	if err != nil {
		return profin.Money{}, fmt.Errorf("invalid -%s value %q: %w", flagName, value, err)
	}
	return m, nil
}

func printMarkdown(md string) {
	fmt.Print(renderer.Terminal(md))
}
