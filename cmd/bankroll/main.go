package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Chart   ChartCmd         `cmd:"" default:"withargs" help:"Render the bankroll chart from hand history exports"`
	Inspect InspectCmd       `cmd:"" help:"List per-hand results and the running total"`
	Export  ExportCmd        `cmd:"" help:"Export parsed hands as a PHH session file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bankroll"),
		kong.Description("Parse poker hand history exports and graph hero winnings over time"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
