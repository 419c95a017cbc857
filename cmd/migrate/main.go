// Command migrate applies or inspects the embedded schema migrations.
//
// Usage: migrate [up|down|status]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"nms/config"
	"nms/internal/errors"
	"nms/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(context.Background(), command); err != nil {
		slog.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	provider, err := postgres.NewMigrationProvider(sqlDB)
	if err != nil {
		return err
	}
	defer provider.Close()

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to apply migrations")
		}
		for _, result := range results {
			slog.Info("Applied migration", slog.String("source", result.Source.Path), slog.Duration("duration", result.Duration))
		}
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to roll back migration")
		}
		if result != nil {
			slog.Info("Rolled back migration", slog.String("source", result.Source.Path))
		}
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to read migration status")
		}
		for _, status := range statuses {
			fmt.Printf("%-8d %-10s %s\n", status.Source.Version, status.State, status.Source.Path)
		}
	default:
		return errors.Errorf("unknown command %q, expected up, down or status", command)
	}

	return nil
}
