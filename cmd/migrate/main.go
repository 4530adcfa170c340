package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"crm/config"
	logs "crm/internal/infra/log"
	"crm/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      Apply every pending migration
// - down:    Roll back the given number of migrations
// - version: Print the applied schema version

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], upCmd, downCmd, versionCmd, downSteps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, upCmd, downCmd, versionCmd *flag.FlagSet, downSteps *int) error {
	var fs *flag.FlagSet
	switch command {
	case "up":
		fs = upCmd
	case "down":
		fs = downCmd
	case "version":
		fs = versionCmd
	default:
		printUsage()

		return errors.Errorf("unknown command: %s", command)
	}
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	migrator, closeDB, err := openMigrator()
	if err != nil {
		return err
	}
	defer closeDB()

	switch command {
	case "up":
		return migrator.Up()
	case "down":
		if *downSteps < 1 {
			return errors.New("steps must be at least 1")
		}

		return migrator.Down(*downSteps)
	default:
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)

		return nil
	}
}

func openMigrator() (*postgres.Migrator, func(), error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Postgres == nil {
		return nil, nil, errors.New("postgres config must be provided")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	closeDB := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}

	return postgres.NewMigrator(sqlDB, logger), closeDB, nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                 Apply every pending migration")
	fmt.Println("  down -steps N      Roll back N migrations (default 1)")
	fmt.Println("  version            Print the applied schema version")
}
