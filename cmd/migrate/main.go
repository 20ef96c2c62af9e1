// Command migrate applies or reports the card store schema.
//
// Usage:
//
//	migrate [--config path] [up|status]
//
// For the postgres driver it runs the embedded goose migrations. The sqlite
// store creates its schema when opened, so "up" just opens the file.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	action := "up"
	if fs.NArg() > 0 {
		action = fs.Arg(0)
	}
	if action != "up" && action != "status" {
		return fmt.Errorf("unknown action %q: want up or status", action)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if cfg.Store.Driver == domain.StoreDriverSQLite {
		store, err := sqlite.Open(ctx, cfg.SQLite.Path, nil)
		if err != nil {
			return err
		}
		logger.Info("sqlite schema ready", slog.String("path", cfg.SQLite.Path))
		return store.Close()
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if action == "up" {
		return postgres.Migrate(ctx, pool, logger)
	}

	statuses, err := postgres.MigrationStatus(ctx, pool)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		applied := "pending"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Printf("%-6d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
	}
	return nil
}
