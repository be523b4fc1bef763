package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shamsu/conops/internal/basespec"
	"github.com/shamsu/conops/internal/cli"
	"github.com/shamsu/conops/internal/db"
	"github.com/shamsu/conops/internal/export"
	"github.com/shamsu/conops/internal/repository"
	"github.com/shamsu/conops/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wire runs after flag and config resolution, so services see the
	// final paths. The DB handle outlives command execution; close it on
	// the way out.
	var cleanup func() error

	app := &cli.App{}
	app.Wire = func(a *cli.App) error {
		database, err := db.OpenDB(a.Config.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		cleanup = database.Close

		observer := service.UseCaseObserver(service.NoopUseCaseObserver{})
		if a.Config.Verbose {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			slog.SetDefault(logger)
			observer = service.NewSlogUseCaseObserver(logger)
		}

		store := basespec.NewStore(a.Config.BaseSpecDir)
		a.Validation = service.NewValidationService(observer)
		a.Projects = service.NewProjectService(repository.NewSQLiteProjectRepo(database), observer)
		a.Export = service.NewExportService(export.NewWriter(a.Config.ExportsDir), store, a.Config.BaseSpec, observer)
		a.Templates = store
		return nil
	}

	root := cli.NewRootCmd(app)
	err := root.ExecuteContext(ctx)
	if cleanup != nil {
		if cerr := cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("closing database: %w", cerr)
		}
	}
	return err
}
