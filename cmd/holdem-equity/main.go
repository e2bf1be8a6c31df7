package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"info" enum:"trace,debug,info,warn,error"`
	LogJSON  bool   `name:"log-json" help:"Write logs as JSON"`
	NoColor  bool   `name:"no-color" help:"Disable colored table output" env:"NO_COLOR"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Grade   GradeCmd         `cmd:"" help:"Grade the best five-card hand in a pool of 5 to 7 cards"`
	Equity  EquityCmd        `cmd:"" help:"Estimate a hand's chance of winning by Monte Carlo simulation"`
	Batch   BatchCmd         `cmd:"" help:"Run every scenario in an HCL file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-equity"),
		kong.Description("Texas Hold'em hand grading and equity estimation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
