package main

import (
	"fmt"
	"os"

	"github.com/TheIllusionist93/DOCTOR/internal/cli"
	"github.com/TheIllusionist93/DOCTOR/internal/config"
	"github.com/TheIllusionist93/DOCTOR/internal/logger"
	"github.com/TheIllusionist93/DOCTOR/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr so stdout stays clean for summaries.
	colors := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	log := logger.New(cfg, os.Stderr, colors)

	app := &cli.App{
		Snapshots: service.NewSnapshotService(service.NewLogUseCaseObserver(log)),
		Config:    cfg,
		Logger:    log,
	}

	return cli.NewRootCmd(app).Execute()
}
