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

type addProjectCmd struct {
	name    string
	client  string
	total   string
	advance string
	status  string
}

func (*addProjectCmd) Name() string     { return "add-project" }
func (*addProjectCmd) Synopsis() string { return "add a new project" }
func (*addProjectCmd) Usage() string {
	return `profin add-project -name <name> [-client <client>] [-total <amount>] [-advance <amount>] [-status <status>]

  Adds a project. The due amount is derived as total minus advance.
`
}

func (c *addProjectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Project name.")
	f.StringVar(&c.client, "client", "", "Client name, free text.")
	f.StringVar(&c.total, "total", "0", "Total amount agreed for the project.")
	f.StringVar(&c.advance, "advance", "0", "Advance already received.")
	f.StringVar(&c.status, "status", string(profin.StatusPending), "Project status (Pending or Completed).")
}

func (c *addProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := c.project()
	if status != subcommands.ExitSuccess {
		return status
	}
	store := OpenStore()
	return apply(store, profin.AddProject{Project: p})
}

type updateProjectCmd struct {
	addProjectCmd
	id string
}

func (*updateProjectCmd) Name() string     { return "update-project" }
func (*updateProjectCmd) Synopsis() string { return "update an existing project" }
func (*updateProjectCmd) Usage() string {
	return `profin update-project -id <id> -name <name> [-client <client>] [-total <amount>] [-advance <amount>] [-status <status>]

  Replaces the project fields. The creation timestamp and list position
  are preserved; the due amount is derived again.
`
}

func (c *updateProjectCmd) SetFlags(f *flag.FlagSet) {
	c.addProjectCmd.SetFlags(f)
	f.StringVar(&c.id, "id", "", "ID of the project to update.")
}

func (c *updateProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := c.project()
	if status != subcommands.ExitSuccess {
		return status
	}
	p.ID = c.id
	store := OpenStore()
	return apply(store, profin.UpdateProject{Project: p})
}

// project builds the project record from the shared flags.
func (c *addProjectCmd) project() (profin.Project, subcommands.ExitStatus) {
	total, err := parseMoney("total", c.total)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return profin.Project{}, subcommands.ExitUsageError
	}
	advance, err := parseMoney("advance", c.advance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return profin.Project{}, subcommands.ExitUsageError
	}
	return profin.Project{
		Name:           c.name,
		Client:         c.client,
		TotalAmount:    total,
		AdvancePayment: advance,
		Status:         profin.Status(c.status),
	}, subcommands.ExitSuccess
}

type deleteProjectCmd struct {
	id string
}

func (*deleteProjectCmd) Name() string     { return "delete-project" }
func (*deleteProjectCmd) Synopsis() string { return "delete a project" }
func (*deleteProjectCmd) Usage() string {
	return `profin delete-project -id <id>

  Deletes the project. Incomes recorded for its client are kept.
`
}

func (c *deleteProjectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the project to delete.")
}

func (c *deleteProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	return apply(store, profin.DeleteProject{ID: c.id})
}

type listProjectsCmd struct{}

func (*listProjectsCmd) Name() string     { return "projects" }
func (*listProjectsCmd) Synopsis() string { return "list all projects" }
func (*listProjectsCmd) Usage() string {
	return `profin projects

  Lists every project with amounts and status.
`
}

func (c *listProjectsCmd) SetFlags(f *flag.FlagSet) {}

func (c *listProjectsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	s := store.Snapshot()
	printMarkdown(renderer.ProjectsMarkdown(s.Projects, s.Profile.Currency))
	return subcommands.ExitSuccess
}
