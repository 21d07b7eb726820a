package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// A local .env file fills in for unset variables; the process
	// environment always wins.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	app := &cli.App{
		Name:  "anchorage",
		Usage: "Bitcoin-anchored ledger wire-format and message-signing CLI",
		Description: `A command-line tool for inspecting ledger wire data and working with
BIP-322 message signatures.

Use this CLI to decode runtime and processed transactions, compute canonical
identifiers, sign and verify messages with Taproot keys, and translate
instruction error codes.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Commands: []*cli.Command{
			txCommands(),
			processedCommands(),
			messageCommands(),
			errcodeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setupLogger creates a structured logger with the given log level.
func setupLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
