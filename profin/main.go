package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/canvaproptk-png/ProFin-Management/cmd"
	"github.com/google/subcommands"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
