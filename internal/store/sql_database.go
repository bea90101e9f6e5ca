package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/MKhiriev/fastm8/internal/config"
	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/MKhiriev/fastm8/migrations"
	"github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB with the dialect-specific pieces every repository
// needs: the statement builder, the error classifier and the per-statement
// timeout.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	queryTimeout       time.Duration
	logger             *logger.Logger
}

// NewConnect opens the backend selected by cfg.DSN: a postgres:// or
// postgresql:// URL opens PostgreSQL, anything else is a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if IsPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// IsPostgresDSN reports whether dsn is a PostgreSQL connection URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newDB(conn *sql.DB, dialect migrations.Dialect, queryTimeout time.Duration, log *logger.Logger) *DB {
	var classifier ErrorClassificator
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	switch dialect {
	case migrations.DialectPostgres:
		classifier = NewPostgresErrorClassifier()
		placeholder = squirrel.Dollar
	default:
		classifier = NewSQLiteErrorClassifier()
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		queryTimeout:       queryTimeout,
		logger:             log,
	}
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(db.logger.WithContext(ctx), db.DB, db.dialect)
}

// withTimeout bounds ctx by the configured query timeout.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}
