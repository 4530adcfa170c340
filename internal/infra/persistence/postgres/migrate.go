package postgres

import (
	"database/sql"
	"log/slog"

	"crm/internal/errors"
	"crm/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator applies the embedded schema migrations.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator builds a Migrator over an open connection.
func NewMigrator(db *sql.DB, logger *slog.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

func (m *Migrator) instance() (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	driver, err := migratepg.WithInstance(m.db, &migratepg.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "create migration driver")
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "create migrator")
	}

	return migrator, nil
}

// Up applies every pending migration.
func (m *Migrator) Up() error {
	migrator, err := m.instance()
	if err != nil {
		return err
	}

	err = migrator.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	m.logger.Info("Migrations applied successfully")

	return nil
}

// Down rolls back a number of migrations.
func (m *Migrator) Down(steps int) error {
	migrator, err := m.instance()
	if err != nil {
		return err
	}

	err = migrator.Steps(-steps)
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to roll back")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "roll back migrations")
	}

	m.logger.Info("Migrations rolled back", slog.Int("steps", steps))

	return nil
}

// Version returns the applied schema version. A fresh database reports 0.
func (m *Migrator) Version() (uint, bool, error) {
	migrator, err := m.instance()
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "read migration version")
	}

	return version, dirty, nil
}
