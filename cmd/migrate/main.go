// Package main is the schema migration CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/infrastructure/migrate"
)

func main() {
	var (
		configPath     string
		migrationsPath string
		steps          int
	)

	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (overrides config)")
	flag.IntVar(&steps, "steps", 0, "Number of migrations to apply or roll back (0 applies all pending on up)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()

	args := flag.Args()
	if len(args) == 0 {
		logger.Fatal("Please specify a command: up, down, or version")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	path := migrationsPath
	if databaseURL == "" || path == "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if databaseURL == "" {
			databaseURL = cfg.Database.GetURL()
		}
		if path == "" {
			path = cfg.Database.Migrations
		}
	}

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: path,
	}, logger)

	switch args[0] {
	case "up":
		if err := runner.Up(steps); err != nil {
			logger.Fatal("Failed to run migrations up", zap.Error(err))
		}
	case "down":
		if err := runner.Down(steps); err != nil {
			logger.Fatal("Failed to run migrations down", zap.Error(err))
		}
	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			logger.Fatal("Failed to get version", zap.Error(err))
		}
		logger.Info("Current schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	default:
		logger.Fatal("Unknown command, use up, down, or version", zap.String("command", args[0]))
	}
}
