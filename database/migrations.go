// Copyright (C) 2025 infratrack-dev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationsTable = "schema_migrations"

// ErrNoMigrationApplied is returned by GetMigrationVersionWithDB on an
// empty schema.
var ErrNoMigrationApplied = migrate.ErrNilVersion

var (
	migratorOnce sync.Once
	migrator     *migrate.Migrate
	migratorErr  error
)

// newMigrator is shared by the server, the cli and the health endpoint.
// golang-migrate keeps a lock per instance, so there is only one.
func newMigrator(gormDB *gorm.DB) (*migrate.Migrate, error) {
	migratorOnce.Do(func() {
		migrator, migratorErr = buildMigrator(gormDB)
	})
	return migrator, migratorErr
}

func buildMigrator(gormDB *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get sql handle: %w", err)
	}
	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return nil, fmt.Errorf("could not create migration driver: %w", err)
	}
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not read embedded migrations: %w", err)
	}
	return migrate.NewWithInstance("iofs", source, "postgres", driver)
}

// RunMigrationsWithDB applies all pending migrations. An up to date schema
// is not an error.
func RunMigrationsWithDB(gormDB *gorm.DB) error {
	m, err := newMigrator(gormDB)
	if err != nil {
		return err
	}
	return logMigration("up", m.Up())
}

// RollbackMigrationsWithDB reverts the given number of migrations.
func RollbackMigrationsWithDB(gormDB *gorm.DB, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	m, err := newMigrator(gormDB)
	if err != nil {
		return err
	}
	return logMigration("down", m.Steps(-steps))
}

func logMigration(direction string, err error) error {
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("no migrations to apply", "direction", direction)
		return nil
	case err != nil:
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}
	slog.Info("migrations applied", "direction", direction)
	return nil
}

// GetMigrationVersionWithDB returns the current schema version and whether
// the last migration failed halfway.
func GetMigrationVersionWithDB(gormDB *gorm.DB) (uint, bool, error) {
	m, err := newMigrator(gormDB)
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}
