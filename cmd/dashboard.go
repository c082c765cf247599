package cmd

import (
	"context"
	"flag"

	"github.com/canvaproptk-png/ProFin-Management"
	"github.com/canvaproptk-png/ProFin-Management/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the business overview" }
func (*dashboardCmd) Usage() string {
	return `profin dashboard

  Shows totals, the income summary, the income versus expenses chart,
  the expense breakdown, and recent activity.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	s := store.Snapshot()
	d := profin.NewDashboard(&s)
	printMarkdown(renderer.DashboardMarkdown(d, s.Profile.Currency))
	return subcommands.ExitSuccess
}
