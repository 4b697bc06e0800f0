// Package migration applies the embedded SQL schema with golang-migrate.
package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"prestadores/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Migrator wraps a golang-migrate instance bound to the embedded migrations.
type Migrator struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// New opens a dedicated connection for migrations. The migrate postgres driver
// closes its *sql.DB on Close, so it must not share the application pool.
func New(databaseURL string, logger *slog.Logger) (*Migrator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open migration connection")
	}

	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	src, err := NewSource()
	if err != nil {
		_ = driver.Close()

		return nil, err
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return nil, errors.Wrap(err, "failed to create migrator")
	}
	m.Log = &migrateLogger{logger: logger}

	return &Migrator{m: m, logger: logger}, nil
}

// NewSource returns the embedded migration files as a golang-migrate source.
func NewSource() (source.Driver, error) {
	src, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to load embedded migrations")
	}

	return src, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (mg *Migrator) Up() error {
	err := mg.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info("No migrations to run")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	mg.logVersion("Migrations applied")

	return nil
}

// Down rolls back the given number of migrations.
func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}

	err := mg.m.Steps(-steps)
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to roll back migrations")
	}

	mg.logVersion("Migrations rolled back")

	return nil
}

// Version reports the current schema version and whether the last run left it dirty.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read schema version")
	}

	return version, dirty, nil
}

// Force sets the schema version without running migrations, clearing the dirty flag.
func (mg *Migrator) Force(version int) error {
	if err := mg.m.Force(version); err != nil {
		return errors.Wrapf(err, "failed to force version %d", version)
	}

	return nil
}

// Close releases the source and the dedicated database connection.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil {
		return errors.Wrap(srcErr, "failed to close migration source")
	}
	if dbErr != nil {
		return errors.Wrap(dbErr, "failed to close migration database")
	}

	return nil
}

func (mg *Migrator) logVersion(msg string) {
	version, dirty, err := mg.Version()
	if err != nil {
		mg.logger.Warn(msg, slog.Any("error", err))

		return
	}

	mg.logger.Info(msg, slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}

// migrateLogger adapts slog to migrate.Logger.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
