package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/trackline/internal/cli"
	"github.com/alexanderramin/trackline/internal/config"
	"github.com/alexanderramin/trackline/internal/db"
	"github.com/alexanderramin/trackline/internal/repository"
	"github.com/alexanderramin/trackline/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load config: env var wins over the config file for the DB location.
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	dbPath := os.Getenv("TRACKLINE_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".trackline", "trackline.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	trackerRepo := repository.NewSQLiteTrackerRepo(database)

	app := &cli.App{
		Trackers: service.NewTrackerService(trackerRepo),
		Layouts:  service.NewLayoutService(trackerRepo),
		Import:   service.NewImportService(trackerRepo),
		Config:   cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
