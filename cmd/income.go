package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/canvaproptk-png/ProFin-Management"
	"github.com/canvaproptk-png/ProFin-Management/renderer"
	"github.com/google/subcommands"
)

type addIncomeCmd struct {
	client      string
	category    string
	description string
	amount      string
}

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "record an income entry" }
func (*addIncomeCmd) Usage() string {
	return `profin add-income -category <category> -amount <amount> [-client <client>] [-description <text>]

  Records an income. Category is one of: Event, Photoshoot, Videography,
  Commercial, Music Compose, Voice Record.
`
}

func (c *addIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client name, free text.")
	f.StringVar(&c.category, "category", string(profin.CategoryEvent), "Income category.")
	f.StringVar(&c.description, "description", "", "Short description of the payment.")
	f.StringVar(&c.amount, "amount", "0", "Amount received.")
}

func (c *addIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, status := c.income()
	if status != subcommands.ExitSuccess {
		return status
	}
	store := OpenStore()
	return apply(store, profin.AddIncome{Income: in})
}

type updateIncomeCmd struct {
	addIncomeCmd
	id string
}

func (*updateIncomeCmd) Name() string     { return "update-income" }
func (*updateIncomeCmd) Synopsis() string { return "update an income entry" }
func (*updateIncomeCmd) Usage() string {
	return `profin update-income -id <id> -category <category> -amount <amount> [-client <client>] [-description <text>]

  Replaces the income fields. The entry date and list position are preserved.
`
}

func (c *updateIncomeCmd) SetFlags(f *flag.FlagSet) {
	c.addIncomeCmd.SetFlags(f)
	f.StringVar(&c.id, "id", "", "ID of the income to update.")
}

func (c *updateIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, status := c.income()
	if status != subcommands.ExitSuccess {
		return status
	}
	in.ID = c.id
	store := OpenStore()
	return apply(store, profin.UpdateIncome{Income: in})
}

func (c *addIncomeCmd) income() (profin.Income, subcommands.ExitStatus) {
	amount, err := parseMoney("amount", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return profin.Income{}, subcommands.ExitUsageError
	}
	return profin.Income{
		Client:      c.client,
		Category:    profin.Category(c.category),
		Description: c.description,
		Amount:      amount,
	}, subcommands.ExitSuccess
}

type deleteIncomeCmd struct {
	id string
}

func (*deleteIncomeCmd) Name() string     { return "delete-income" }
func (*deleteIncomeCmd) Synopsis() string { return "delete an income entry" }
func (*deleteIncomeCmd) Usage() string {
	return `profin delete-income -id <id>
`
}

func (c *deleteIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the income to delete.")
}

func (c *deleteIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	return apply(store, profin.DeleteIncome{ID: c.id})
}

type listIncomesCmd struct{}

func (*listIncomesCmd) Name() string     { return "incomes" }
func (*listIncomesCmd) Synopsis() string { return "list all income entries" }
func (*listIncomesCmd) Usage() string {
	return `profin incomes
`
}

func (c *listIncomesCmd) SetFlags(f *flag.FlagSet) {}

func (c *listIncomesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	s := store.Snapshot()
	printMarkdown(renderer.IncomesMarkdown(s.Incomes, s.Profile.Currency))
	return subcommands.ExitSuccess
}
