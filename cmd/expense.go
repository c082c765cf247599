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

type addExpenseCmd struct {
	description string
	amount      string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense" }
func (*addExpenseCmd) Usage() string {
	return `profin add-expense -description <text> -amount <amount>

  Records an expense. The description doubles as its breakdown group.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "What the money was spent on.")
	f.StringVar(&c.amount, "amount", "0", "Amount spent.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := c.expense()
	if status != subcommands.ExitSuccess {
		return status
	}
	store := OpenStore()
	return apply(store, profin.AddExpense{Expense: e})
}

type updateExpenseCmd struct {
	addExpenseCmd
	id string
}

func (*updateExpenseCmd) Name() string     { return "update-expense" }
func (*updateExpenseCmd) Synopsis() string { return "update an expense" }
func (*updateExpenseCmd) Usage() string {
	return `profin update-expense -id <id> -description <text> -amount <amount>

  Replaces the expense fields. The entry date and list position are preserved.
`
}

func (c *updateExpenseCmd) SetFlags(f *flag.FlagSet) {
	c.addExpenseCmd.SetFlags(f)
	f.StringVar(&c.id, "id", "", "ID of the expense to update.")
}

func (c *updateExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := c.expense()
	if status != subcommands.ExitSuccess {
		return status
	}
	e.ID = c.id
	store := OpenStore()
	return apply(store, profin.UpdateExpense{Expense: e})
}

func (c *addExpenseCmd) expense() (profin.Expense, subcommands.ExitStatus) {
	amount, err := parseMoney("amount", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return profin.Expense{}, subcommands.ExitUsageError
	}
	return profin.Expense{
		Description: c.description,
		Amount:      amount,
	}, subcommands.ExitSuccess
}

type deleteExpenseCmd struct {
	id string
}

func (*deleteExpenseCmd) Name() string     { return "delete-expense" }
func (*deleteExpenseCmd) Synopsis() string { return "delete an expense" }
func (*deleteExpenseCmd) Usage() string {
	return `profin delete-expense -id <id>
`
}

func (c *deleteExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the expense to delete.")
}

func (c *deleteExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	return apply(store, profin.DeleteExpense{ID: c.id})
}

type listExpensesCmd struct{}

func (*listExpensesCmd) Name() string     { return "expenses" }
func (*listExpensesCmd) Synopsis() string { return "list all expenses" }
func (*listExpensesCmd) Usage() string {
	return `profin expenses
`
}

func (c *listExpensesCmd) SetFlags(f *flag.FlagSet) {}

func (c *listExpensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	s := store.Snapshot()
	printMarkdown(renderer.ExpensesMarkdown(s.Expenses, s.Profile.Currency))
	return subcommands.ExitSuccess
}
