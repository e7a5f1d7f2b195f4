// Package migrate applies the SQL schema under migrations/ with golang-migrate.
package migrate

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file source for migrations
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var ErrDirty = errors.New("database is in dirty state")

type Config struct {
	DatabaseURL    string
	MigrationsPath string
}

type Runner struct {
	config *Config
	logger *zap.Logger
}

func NewRunner(config *Config, logger *zap.Logger) *Runner {
	return &Runner{
		config: config,
		logger: logger,
	}
}

// session opens a migrate instance and hands it to fn. The connection is
// closed afterwards.
func (r *Runner) session(fn func(m *migrate.Migrate) error) error {
	db, err := sql.Open("postgres", r.config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			r.logger.Warn("Failed to close migration connection", zap.Error(closeErr))
		}
	}()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+r.config.MigrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return fn(m)
}

// Up applies steps pending migrations, or all of them when steps <= 0.
func (r *Runner) Up(steps int) error {
	return r.session(func(m *migrate.Migrate) error {
		var err error
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		return r.report(m, "Migrations applied")
	})
}

// Down rolls back steps migrations.
func (r *Runner) Down(steps int) error {
	if steps <= 0 {
		steps = 1
	}
	return r.session(func(m *migrate.Migrate) error {
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to roll back migrations: %w", err)
		}
		return r.report(m, "Migrations rolled back")
	})
}

// Version returns the current schema version; zero means no migration ran yet.
func (r *Runner) Version() (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := r.session(func(m *migrate.Migrate) error {
		var err error
		version, dirty, err = m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		return nil
	})
	return version, dirty, err
}

func (r *Runner) report(m *migrate.Migrate, msg string) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		r.logger.Info(msg, zap.Uint("version", 0))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirty, version)
	}

	r.logger.Info(msg, zap.Uint("version", version))
	return nil
}
