package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/yartemiuk/assistant/internal/cli"
	"github.com/yartemiuk/assistant/internal/config"
	"github.com/yartemiuk/assistant/internal/iocli"
	"github.com/yartemiuk/assistant/internal/storage"
	"github.com/yartemiuk/assistant/internal/storage/boltdb"
	"github.com/yartemiuk/assistant/internal/storage/jsonfile"
	"github.com/yartemiuk/assistant/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	dataDir := flag.String("data", "", "Override the data directory")
	backend := flag.String("storage", "", "Override the storage backend (json, bolt, sqlite)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *backend != "" {
		cfg.Storage = *backend
	}

	ctx := context.Background()
	stdio := iocli.NewStdio()

	store, err := openStorage(ctx, cfg, stdio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	contacts, notes, err := store.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load data: %v\n", err)
		os.Exit(1)
	}

	runLoop(stdio, cli.New(contacts, notes), func() {
		if err := store.Save(ctx, contacts, notes); err != nil {
			slog.Error("failed to save data", "error", err)
		}
	})
}

// openStorage выбирает backend по конфигурации
func openStorage(ctx context.Context, cfg *config.Config, stdio iocli.IO) (storage.Storage, error) {
	switch cfg.Storage {
	case config.BackendBolt:
		if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
			return nil, err
		}
		return boltdb.New(ctx, cfg.SnapshotPath())
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
			return nil, err
		}
		return sqlite.New(ctx, cfg.SnapshotPath())
	default:
		var passphrase string
		if cfg.Encrypt {
			var err error
			passphrase, err = readPassphrase(stdio)
			if err != nil {
				return nil, err
			}
		}
		return jsonfile.New(cfg.SnapshotPath(), passphrase), nil
	}
}

// readPassphrase reads the snapshot passphrase with priority:
// 1. ASSISTANT_PASSPHRASE environment variable
// 2. Interactive prompt (fallback)
func readPassphrase(stdio iocli.IO) (string, error) {
	if env := os.Getenv("ASSISTANT_PASSPHRASE"); env != "" {
		return env, nil
	}
	passphrase, err := stdio.ReadPassword("Passphrase: ")
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	if passphrase == "" {
		return "", fmt.Errorf("passphrase cannot be empty")
	}
	return passphrase, nil
}

// runLoop is the interactive read-evaluate-print loop. The save
// callback runs exactly once, on exit.
func runLoop(stdio iocli.IO, c *cli.Cli, save func()) {
	stdio.Println("Welcome to the assistant bot!")
	for {
		line, err := stdio.ReadInput("Enter a command: ")
		if err != nil {
			// EOF: сохраняемся так же, как при exit
			stdio.Println("")
			break
		}
		if line == "" {
			continue
		}

		command, args := cli.ParseInput(line)
		if command == "exit" || command == "close" {
			break
		}

		output, err := c.Execute(command, args)
		if err != nil {
			stdio.Println(err.Error())
			continue
		}
		stdio.Println(output)
	}

	save()
	stdio.Println("Good bye!")
}

func printVersion() {
	fmt.Printf("Assistant\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
