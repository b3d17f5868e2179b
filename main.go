package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"swayclock/cli"
	"swayclock/config"
	"swayclock/logging"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Log at debug level."`

	Run     cli.RunCmd     `cmd:"" help:"Write the clock to swaybar." default:"1"`
	Set     cli.SetCmd     `cmd:"" help:"Change a setting of the running clock."`
	Preview cli.PreviewCmd `cmd:"" help:"Print the clock in the terminal."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("swayclock"),
		kong.Description("Clock, date and greeting for swaybar"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, cfgErr := config.Load(CLI.Config)
	if err := logging.Init(logging.Config{Debug: CLI.Debug || cfg.Debug, File: cfg.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logging: %v\n", err)
		os.Exit(1)
	}
	if cfgErr != nil {
		logging.Warn("config", "error", cfgErr)
	}

	if err := ctx.Run(&cli.Context{Config: cfg}); err != nil {
		logging.Error("command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
