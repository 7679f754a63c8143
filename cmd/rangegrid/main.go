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
	Config   string           `short:"c" help:"Path to HCL config file" default:"rangegrid.hcl" env:"RANGEGRID_CONFIG"`
	LogLevel string           `help:"Log level (debug, info, warn, error); overrides the config file" env:"RANGEGRID_LOG_LEVEL"`
	NoColor  bool             `help:"Disable colored output" env:"RANGEGRID_NO_COLOR"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`
}

type CLI struct {
	Globals

	Grid    GridCmd    `cmd:"" default:"withargs" help:"Open the interactive range grid"`
	Count   CountCmd   `cmd:"" help:"Count the combinations in a range"`
	Cone    ConeCmd    `cmd:"" help:"Show the hands that dominate a hand"`
	Compare CompareCmd `cmd:"" help:"Compare two ranges rank by rank"`
	Hands   HandsCmd   `cmd:"" help:"List the 169 starting hands"`
	Init    InitCmd    `cmd:"" help:"Write a default config file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rangegrid"),
		kong.Description("Starting-hand range selector and combination counter"),
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
