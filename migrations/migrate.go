// Package migrations embeds the SQL schema of the fastm8 ledger and applies
// it with goose. Each supported dialect has its own directory of scripts.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DriverName returns the database/sql driver registered for d.
func (d Dialect) DriverName() string {
	switch d {
	case DialectPostgres:
		return "pgx"
	case DialectSQLite:
		return "sqlite3"
	default:
		return ""
	}
}

var ErrUnknownDialect = errors.New("unknown sql dialect")

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its configuration in package globals
var mu sync.Mutex

// Migrate applies every pending migration of dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	driver := dialect.DriverName()
	if driver == "" {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{logger.FromContext(ctx)})

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, string(dialect)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through the request logger.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("func", "goose").Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.WithLevel(zerolog.FatalLevel).Str("func", "goose").Msgf(format, v...)
}
