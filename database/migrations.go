package database

import (
	"embed"
	"log/slog"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/pkg/errors"
)

// MigrationsTable keeps the migration state of this service apart from the
// tables the catalog itself migrates in the same database.
const MigrationsTable = "deppkg_schema_migrations"

var (
	migratorOnce sync.Once
	migrator     *migrate.Migrate
	migratorErr  error
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func getMigrator(gormDB shared.DB) (*migrate.Migrate, error) {
	migratorOnce.Do(func() {
		sqlDB, err := gormDB.DB()
		if err != nil {
			migratorErr = err
			return
		}

		driver, err := postgres.WithInstance(sqlDB, &postgres.Config{MigrationsTable: MigrationsTable})
		if err != nil {
			migratorErr = errors.Wrap(err, "could not create migration driver")
			return
		}

		source, err := iofs.New(migrationFiles, "migrations")
		if err != nil {
			migratorErr = errors.Wrap(err, "could not read embedded migrations")
			return
		}

		migrator, migratorErr = migrate.NewWithInstance("iofs", source, "postgres", driver)
	})

	return migrator, migratorErr
}

// RunMigrationsWithDB brings the dependency, vulnerability and config tables
// up to the newest embedded migration. A dirty schema is reported, never forced.
func RunMigrationsWithDB(gormDB shared.DB) error {
	m, err := getMigrator(gormDB)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	from, dirty, err := versionOf(m)
	if err != nil {
		return err
	}
	if dirty {
		return errors.Errorf("schema is dirty at version %d, fix it manually before starting", from)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("database schema is up to date", "version", from)
			return nil
		}
		return errors.Wrap(err, "failed to run migrations")
	}

	to, _, err := versionOf(m)
	if err != nil {
		return err
	}
	slog.Info("migrated database schema", "from", from, "to", to)
	return nil
}

// GetMigrationVersionWithDB returns the applied schema version and whether it is dirty.
// An empty database reports version 0.
func GetMigrationVersionWithDB(gormDB shared.DB) (uint, bool, error) {
	m, err := getMigrator(gormDB)
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to create migrator")
	}
	return versionOf(m)
}

func versionOf(m *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "could not read schema version")
	}
	return version, dirty, nil
}
