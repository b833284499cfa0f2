package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	LogLevel string `default:"warn" enum:"debug,info,warn,error" env:"TRUCO_LOG_LEVEL" help:"Log level (debug|info|warn|error)"`
	EnvFile  string `default:".env" help:"Environment file to load before running"`
	NoColor  bool   `env:"NO_COLOR" help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Decide   DecideCmd        `cmd:"" help:"Ask a bot for its decisions on a game snapshot"`
	Strength StrengthCmd      `cmd:"" help:"Show the card strength table for a vira"`
	Duel     DuelCmd          `cmd:"" help:"Play bots against each other over independent hands"`
	Bots     BotsCmd          `cmd:"" help:"List the available bots"`
}

func main() {
	// The env file has to be loaded before kong resolves env-backed flags
	if err := loadEnvFile(envFileFromArgs(os.Args[1:])); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("trucoforbots"),
		kong.Description("Rule-based Truco bots and a harness to compare them"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// Logger returns a stderr logger at the configured level
func (g *Globals) Logger() *log.Logger {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: level == log.DebugLevel,
	})
}

// loadEnvFile loads variables from path without overriding the environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func envFileFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
		if path, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return path
		}
	}
	return ".env"
}
