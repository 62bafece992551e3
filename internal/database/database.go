package database

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // SQLite driver, used for local runs and tests
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

//go:embed schema/*.sql
var schemaFiles embed.FS

// Open connects to the record store. maxOpenConns <= 0 means a single shared connection.
func Open(driver, dsn string, maxOpenConns int) (*sqlx.DB, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if maxOpenConns <= 0 {
		maxOpenConns = 1
	}
	db.SetMaxOpenConns(maxOpenConns)

	if driver == DriverSQLite {
		if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set busy timeout: %w", err)
		}
	}

	log.Info().Str("driver", driver).Int("max_open_conns", maxOpenConns).Msg("Connected to the database")
	return db, nil
}

// ApplySchema creates any missing tables and indexes for the connection's dialect.
func ApplySchema(db *sqlx.DB) error {
	content, err := schemaFiles.ReadFile("schema/" + db.DriverName() + ".sql")
	if err != nil {
		return fmt.Errorf("no schema for driver %s: %w", db.DriverName(), err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("could not execute schema script: %w", err)
	}
	log.Info().Str("driver", db.DriverName()).Msg("Database schema applied")
	return nil
}

// OpenInMemory returns a migrated in-memory SQLite store on one connection.
func OpenInMemory() (*sqlx.DB, error) {
	db, err := Open(DriverSQLite, ":memory:", 1)
	if err != nil {
		return nil, err
	}
	if err := ApplySchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
