package store

import (
	"time"

	"github.com/MKhiriev/fastm8/migrations"
	"github.com/MKhiriev/fastm8/models"
)

const (
	usersTable    = "users"
	fastLogsTable = "fast_logs"
)

var (
	userColumns    = []string{"id", "username", "email", "password_hash", "created_at"}
	sessionColumns = []string{"id", "user_id", "start_time", "end_time", "duration", "is_complete", "created_at"}
)

func (db *DB) buildCreateUserQuery(user models.User, createdAt time.Time) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, createdAt).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildFindUserByEmailQuery(email string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where("email = ?", email).
		Limit(1).
		ToSql()
}

func (db *DB) buildCreateSessionQuery(session models.FastingSession) (string, []any, error) {
	return db.builder.
		Insert(fastLogsTable).
		Columns("user_id", "start_time", "end_time", "duration", "is_complete", "created_at").
		Values(session.UserID, session.StartTime, session.EndTime, session.Duration, session.IsComplete, session.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildListSessionsQuery selects the sessions matching filter, most recent
// start first.
func (db *DB) buildListSessionsQuery(filter models.SessionFilter) (string, []any, error) {
	query := db.builder.
		Select(sessionColumns...).
		From(fastLogsTable).
		Where("user_id = ?", filter.UserID)

	if filter.OnlyOpen {
		query = query.Where("is_complete = ?", false)
	}
	if filter.From != nil {
		query = query.Where("start_time >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		if filter.ToExclusive {
			query = query.Where("start_time < ?", filter.To.UTC())
		} else {
			query = query.Where("start_time <= ?", filter.To.UTC())
		}
	}

	return query.OrderBy("start_time DESC", "id DESC").ToSql()
}

// buildSelectOwnedSessionQuery reads one session by id, only if owned by
// userID. PostgreSQL locks the row for the rest of the transaction.
func (db *DB) buildSelectOwnedSessionQuery(id, userID int64) (string, []any, error) {
	query := db.builder.
		Select(sessionColumns...).
		From(fastLogsTable).
		Where("id = ?", id).
		Where("user_id = ?", userID)

	if db.dialect == migrations.DialectPostgres {
		query = query.Suffix("FOR UPDATE")
	}

	return query.ToSql()
}

// buildUpdateSessionQuery writes the columns touched by patch, taking the
// values from merged. A duration derived by [models.FastingSession.Apply]
// is written too.
func (db *DB) buildUpdateSessionQuery(current, merged models.FastingSession, patch models.SessionPatch) (string, []any, error) {
	query := db.builder.Update(fastLogsTable)

	if patch.StartTime.Set {
		query = query.Set("start_time", merged.StartTime)
	}
	if patch.EndTime.Set {
		query = query.Set("end_time", merged.EndTime)
	}
	if patch.Duration.Set || !equalDuration(current.Duration, merged.Duration) {
		query = query.Set("duration", merged.Duration)
	}
	if patch.IsComplete.Set {
		query = query.Set("is_complete", merged.IsComplete)
	}

	return query.
		Where("id = ?", merged.ID).
		Where("user_id = ?", merged.UserID).
		ToSql()
}

func (db *DB) buildDeleteOpenSessionsQuery(userID int64) (string, []any, error) {
	return db.builder.
		Delete(fastLogsTable).
		Where("user_id = ?", userID).
		Where("is_complete = ?", false).
		ToSql()
}

func equalDuration(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
