package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"prestadores/config"
	logs "prestadores/internal/infra/log"
	"prestadores/internal/infra/persistence/migration"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:      apply all pending migrations
// - down:    roll back N migrations
// - version: print the current schema version
// - force:   set the version and clear the dirty flag

func main() {
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	forceCmd := flag.NewFlagSet("force", flag.ExitOnError)
	forceVersion := forceCmd.Int("version", -1, "Schema version to record")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Only the database settings are needed here, so the full service validation is skipped.
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadWithEnv[config.Config]("config", "config", "../config", "../../config")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], cfg, logger, downCmd, downSteps, forceCmd, forceVersion); err != nil {
		logger.Error("Migration command failed", slog.String("command", os.Args[1]), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(
	command string,
	args []string,
	cfg *config.Config,
	logger *slog.Logger,
	downCmd *flag.FlagSet,
	downSteps *int,
	forceCmd *flag.FlagSet,
	forceVersion *int,
) error {
	switch command {
	case "up", "down", "version", "force":
	default:
		printUsage()

		return errors.Errorf("unknown command: %s", command)
	}

	if strings.TrimSpace(cfg.Database.URL) == "" {
		return errors.New("database.url (DATABASE_URL) must be set")
	}

	migrator, err := migration.New(cfg.Database.URL, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil {
			logger.Warn("Failed to close migrator", slog.Any("error", closeErr))
		}
	}()

	switch command {
	case "up":
		return migrator.Up()
	case "down":
		if err := downCmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return migrator.Down(*downSteps)
	case "force":
		if err := forceCmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}
		if *forceVersion < 0 {
			return errors.New("force requires -version")
		}

		return migrator.Force(*forceVersion)
	default:
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)

		return nil
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                   Apply all pending migrations")
	fmt.Println("  down -steps N        Roll back N migrations (default 1)")
	fmt.Println("  version              Print the current schema version")
	fmt.Println("  force -version V     Record version V and clear the dirty flag")
}
