package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/canvaproptk-png/ProFin-Management"
	"github.com/canvaproptk-png/ProFin-Management/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "get financial advice on your aggregate figures" }
func (*adviseCmd) Usage() string {
	return `profin advise

  Sends your aggregate figures (never individual records) to Gemini and
  prints a short piece of advice. Needs GEMINI_API_KEY; prints a generic
  tip when the call cannot complete.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	s := store.Snapshot()
	figures := agent.Figures{
		TotalIncome:        profin.TotalIncome(&s),
		TotalExpenses:      profin.TotalExpenses(&s),
		Balance:            profin.Balance(&s),
		PendingReceivables: profin.PendingReceivables(&s),
		ProjectCount:       len(s.Projects),
		Currency:           s.Profile.Currency,
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		fmt.Println(agent.Fallback)
		return subcommands.ExitSuccess
	}

	fmt.Println(agent.New(client).Advise(ctx, figures))
	return subcommands.ExitSuccess
}
