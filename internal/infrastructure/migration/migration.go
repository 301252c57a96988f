// Package migration runs versioned SQL schema migrations via golang-migrate.
package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"curator/internal/shared/logger"
)

const DefaultScriptsPath = "internal/infrastructure/migration/scripts"

// Runner applies migration scripts against the active database connection.
type Runner struct {
	scriptsPath string
	logger      logger.Interface
}

func NewRunner(scriptsPath string) *Runner {
	if scriptsPath == "" {
		scriptsPath = DefaultScriptsPath
	}
	return &Runner{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration"),
	}
}

func (r *Runner) instance(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driver, err := mysql.WithInstance(sqlDB, &mysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+r.scriptsPath, "mysql", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// Up applies all pending migrations.
func (r *Runner) Up(db *gorm.DB) error {
	m, err := r.instance(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Infow("no pending migrations")
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	r.logger.Infow("migrations applied")
	return nil
}

// Down rolls back the most recent migration.
func (r *Runner) Down(db *gorm.DB) error {
	m, err := r.instance(db)
	if err != nil {
		return err
	}

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	r.logger.Infow("rolled back one migration")
	return nil
}

// Version reports the current schema version.
func (r *Runner) Version(db *gorm.DB) (uint, bool, error) {
	m, err := r.instance(db)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}
	return version, dirty, nil
}
