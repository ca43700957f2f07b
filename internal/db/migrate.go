package db

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/rotisserie/eris"

	"affiliate-ledger/migrations"
)

// Migrate brings the schema at addr to migrations.Version. It refuses to
// run against a database left dirty by a failed migration.
func Migrate(addr string) error {
	conn, err := sql.Open("postgres", addr)
	if err != nil {
		return eris.Wrap(err, "db: open migration connection")
	}
	defer conn.Close()

	dbDriver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return eris.Wrap(err, "db: migration driver")
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return eris.Wrap(err, "db: migration source")
	}

	mg, err := migrate.NewWithInstance("iofs", source, "postgres", dbDriver)
	if err != nil {
		return eris.Wrap(err, "db: migrator")
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return eris.Wrap(err, "db: read schema version")
	}

	if dirty {
		return eris.New("db: database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return eris.Wrap(err, "db: migrate")
	}

	return nil
}
