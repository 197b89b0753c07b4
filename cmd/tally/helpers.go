package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Suvadipmandal/tally/internal/config"
	"github.com/Suvadipmandal/tally/internal/ledger"
	"github.com/Suvadipmandal/tally/internal/model"
	"github.com/Suvadipmandal/tally/internal/service"
	"github.com/Suvadipmandal/tally/internal/storage"
)

// openRepository opens the configured database, runs migrations, seeds the
// category defaults on first use, and returns the repository plus a cleanup
// function.
func openRepository(ctx context.Context) (*ledger.Repository, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repo := ledger.NewRepository(store)
	if err := repo.Init(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to seed categories: %w", err)
	}

	return repo, func() { _ = store.Close() }, nil
}

// parseDateRange builds an inclusive range from --from/--to values. Both
// must be given together; empty strings mean no range filter.
func parseDateRange(from, to string) (*service.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("--from and --to must be used together")
	}

	start, err := model.ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := model.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start.Time) {
		return nil, fmt.Errorf("range end %s is before start %s", end, start)
	}

	return &service.DateRange{Start: start, End: end}, nil
}

// confirm prints a prompt and reads a y/N answer from stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false
	}
	return response == "y" || response == "Y"
}
