package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/canvaproptk-png/ProFin-Management"
	"github.com/google/subcommands"
)

type profileCmd struct {
	name     string
	business string
	pic      string
	currency string
	theme    string
	color    string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or update the business profile" }
func (*profileCmd) Usage() string {
	return `profin profile [-name <name>] [-business <name>] [-pic <url>] [-currency <code>] [-theme <theme>] [-color <color>]

  Without flags, shows the profile. With flags, updates only the fields
  you pass and keeps the rest.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Your name.")
	f.StringVar(&c.business, "business", "", "Business name.")
	f.StringVar(&c.pic, "pic", "", "Profile picture URL.")
	f.StringVar(&c.currency, "currency", "", "ISO currency code, e.g. USD.")
	f.StringVar(&c.theme, "theme", "", "UI theme (light or dark).")
	f.StringVar(&c.color, "color", "", fmt.Sprintf("Accent color, one of %s.", strings.Join(profin.PrimaryColors, ", ")))
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Only flags the user actually passed become part of the update,
	// so an empty -name clears the name but an absent one keeps it.
	var u profin.ProfileUpdate
	touched := false
	f.Visit(func(fl *flag.Flag) {
		touched = true
		switch fl.Name {
		case "name":
			u.Name = &c.name
		case "business":
			u.BusinessName = &c.business
		case "pic":
			u.ProfilePic = &c.pic
		case "currency":
			u.Currency = &c.currency
		case "theme":
			theme := profin.Theme(c.theme)
			u.Theme = &theme
		case "color":
			u.PrimaryColor = &c.color
		}
	})

	store := OpenStore()
	if !touched {
		p := store.Snapshot().Profile
		fmt.Printf("Name:     %s\n", p.Name)
		fmt.Printf("Business: %s\n", p.BusinessName)
		fmt.Printf("Picture:  %s\n", p.ProfilePic)
		fmt.Printf("Currency: %s\n", p.Currency)
		fmt.Printf("Theme:    %s\n", p.Theme)
		fmt.Printf("Color:    %s\n", p.PrimaryColor)
		return subcommands.ExitSuccess
	}
	if status := apply(store, profin.UpdateProfile{Update: u}); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintln(os.Stdout, "Profile updated.")
	return subcommands.ExitSuccess
}
