package persistence

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/stdlib"
)

// ApplyMigrations runs every pending up migration in dir and returns the
// resulting schema version. Running it on an up-to-date schema is a no-op.
func (db *DB) ApplyMigrations(dir string) (uint, error) {
	m, err := db.migrator(dir)
	if err != nil {
		return 0, err
	}
	defer closeMigrator(m)

	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return 0, db.migrationError(err)
		}
		db.logger.Info("no new migrations found")
	}

	return schemaVersion(m)
}

// RollbackMigrations runs every down migration in dir, leaving an empty
// schema.
func (db *DB) RollbackMigrations(dir string) error {
	m, err := db.migrator(dir)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return db.migrationError(err)
	}

	db.logger.Info("migrations rolled back")
	return nil
}

// migrator opens a dedicated database/sql handle so closing the migrator
// never touches the shared pool.
func (db *DB) migrator(dir string) (*migrate.Migrate, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations dir %s: %w", dir, err)
	}
	source := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}

	connCfg := db.Pool.Config().ConnConfig
	sqlDB := stdlib.OpenDB(*connCfg)

	driver, err := migratepgx.WithInstance(sqlDB, &migratepgx.Config{
		DatabaseName: connCfg.Database,
		SchemaName:   "public",
	})
	if err != nil {
		_ = sqlDB.Close()
		db.logger.Error("failed to create migration driver", "error", err)
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source.String(), connCfg.Database, driver)
	if err != nil {
		_ = driver.Close()
		db.logger.Error("failed to load migrations", "dir", abs, "error", err)
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

func (db *DB) migrationError(err error) error {
	var dirtyErr migrate.ErrDirty
	if errors.As(err, &dirtyErr) {
		db.logger.Error("migration left a dirty schema", "version", dirtyErr.Version)
		return fmt.Errorf("migration failed: dirty database version %d", dirtyErr.Version)
	}

	db.logger.Error("migration failed", "error", err)
	return fmt.Errorf("migration failed: %w", err)
}

func schemaVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("migration failed: dirty database version %d", version)
	}
	return version, nil
}

func closeMigrator(m *migrate.Migrate) {
	_, _ = m.Close()
}
