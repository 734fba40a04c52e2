package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cardinalkit/surveybuilder/internal/cli"
	"github.com/cardinalkit/surveybuilder/internal/config"
	"github.com/cardinalkit/surveybuilder/internal/db"
	"github.com/cardinalkit/surveybuilder/internal/repository"
	"github.com/cardinalkit/surveybuilder/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := cli.NewRootCmd(config.LoadConfig(), wire)
	return rootCmd.Execute()
}

// wire opens the draft store and builds the services. It runs after flag
// parsing so --db and --compress are already applied to cfg.
func wire(cfg config.Config) (*cli.App, func() error, error) {
	logger, logCloser, err := cfg.NewLogger()
	if err != nil {
		return nil, nil, err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		logCloser.Close()
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	observer := service.NewLogUseCaseObserver(logger)
	drafts := service.NewDraftService(repository.NewSQLiteDraftRepo(database, cfg.Compress), observer)

	app := &cli.App{
		Drafts: drafts,
		Import: service.NewImportService(observer),
		Export: service.NewExportService(drafts, observer),
		Config: cfg,
		Logger: logger,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	logger.Info("store opened", "path", cfg.DBPath, "compress", cfg.Compress)

	closeAll := func() error {
		return errors.Join(database.Close(), logCloser.Close())
	}
	return app, closeAll, nil
}
