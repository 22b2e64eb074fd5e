package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/focusflow/backend/internal/config"
	"github.com/JonnyWalker81/focusflow/backend/internal/logger"
	"github.com/JonnyWalker81/focusflow/backend/internal/repository"
	"github.com/JonnyWalker81/focusflow/backend/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "focusflow-api",
	Short: "FocusFlow analytics server",
	Long:  `A REST API and reporting CLI for the FocusFlow personal productivity tracker.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
}

// app is the wiring shared by every subcommand
type app struct {
	cfg       *config.Config
	store     *repository.FileStore
	clock     service.Clock
	profiles  service.ProfileService
	analytics service.AnalyticsService
	tracking  service.TrackingService
}

func newApp(cfg *config.Config) (*app, error) {
	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	}))

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	store, err := repository.NewFileStore(cfg.Data.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}

	clock := service.SystemClock(loc)
	return &app{
		cfg:       cfg,
		store:     store,
		clock:     clock,
		profiles:  service.NewProfileService(store, clock),
		analytics: service.NewAnalyticsService(store, clock),
		tracking:  service.NewTrackingService(store, clock),
	}, nil
}

// loadApp loads configuration and wires the app
func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return newApp(cfg)
}

const shutdownTimeout = 10 * time.Second
