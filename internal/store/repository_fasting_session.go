package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/MKhiriev/fastm8/models"
)

// fastingSessionRepository is the SQL-backed implementation of
// [FastingSessionRepository] over the "fast_logs" table.
type fastingSessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFastingSessionRepository constructs a [FastingSessionRepository]
// backed by db.
func NewFastingSessionRepository(db *DB, logger *logger.Logger) FastingSessionRepository {
	logger.Debug().Msg("creating fasting session repository")
	return &fastingSessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession inserts session and returns it with ID and CreatedAt set.
// An unknown owner yields [ErrNoUserWasFound].
func (r *fastingSessionRepository) CreateSession(ctx context.Context, session models.FastingSession) (models.FastingSession, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = models.NewTimestamp(time.Now())
	}

	query, args, err := r.db.buildCreateSessionQuery(session)
	if err != nil {
		log.Err(err).Str("func", "*fastingSessionRepository.CreateSession").Msg("failed to build insert query")
		return models.FastingSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.ID); err != nil {
		log.Err(err).
			Str("func", "*fastingSessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Msg("error inserting fasting session")

		if r.db.errorClassificator.Classify(err) == ForeignKeyViolation {
			return models.FastingSession{}, ErrNoUserWasFound
		}
		return models.FastingSession{}, r.db.wrapError(err, ErrExecutingQuery)
	}

	log.Debug().
		Str("func", "*fastingSessionRepository.CreateSession").
		Int64("user_id", session.UserID).
		Int64("id", session.ID).
		Msg("fasting session created")

	return session, nil
}

// ListSessions returns the sessions selected by filter. The result is never
// nil so it serializes as an empty JSON array.
func (r *fastingSessionRepository) ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.FastingSession, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := r.db.buildListSessionsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*fastingSessionRepository.ListSessions").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fastingSessionRepository.ListSessions").Msg("failed to execute select query")
		return nil, r.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	sessions := make([]models.FastingSession, 0)
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*fastingSessionRepository.ListSessions").Msg("failed to scan row")
			return nil, r.db.wrapError(scanErr, ErrScanningRows)
		}
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*fastingSessionRepository.ListSessions").Msg("error iterating rows")
		return nil, r.db.wrapError(err, ErrScanningRows)
	}

	log.Debug().
		Str("func", "*fastingSessionRepository.ListSessions").
		Int64("user_id", filter.UserID).
		Int("count", len(sessions)).
		Msg("listed fasting sessions")

	return sessions, nil
}

// EditSessions merges each patch into the stored session, rejects a merged
// state that breaks the completion invariant, and writes only the touched
// columns. Re-applying the same batch counts the same sessions again.
//
// The whole batch is rolled back when any merge is invalid; the returned
// error then wraps [models.ErrInvalidSession].
func (r *fastingSessionRepository) EditSessions(ctx context.Context, userID int64, ids []int64, patches []models.SessionPatch) (int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) != len(patches) {
		return 0, fmt.Errorf("%w: %d ids and %d patches", ErrBuildingSQLQuery, len(ids), len(patches))
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var updated int64
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		for idx, id := range ids {
			patch := patches[idx]
			if patch.Empty() {
				continue
			}

			current, err := r.selectOwnedSession(ctx, tx, id, userID)
			if errors.Is(err, sql.ErrNoRows) {
				log.Debug().
					Str("func", "*fastingSessionRepository.EditSessions").
					Int("iteration", idx+1).
					Int64("id", id).
					Msg("session not found for user, skipping")
				continue
			}
			if err != nil {
				log.Err(err).
					Str("func", "*fastingSessionRepository.EditSessions").
					Int64("id", id).
					Msg("failed to read session")
				return r.db.wrapError(err, ErrScanningRow)
			}

			merged := current.Apply(patch)
			if err = merged.CheckState(); err != nil {
				log.Warn().
					Err(err).
					Str("func", "*fastingSessionRepository.EditSessions").
					Int64("id", id).
					Msg("edit leaves session in an invalid state")
				return fmt.Errorf("session %d: %w", id, err)
			}

			query, args, err := r.db.buildUpdateSessionQuery(current, merged, patch)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "*fastingSessionRepository.EditSessions").
					Int64("id", id).
					Msg("failed to execute update")
				return r.db.wrapError(err, ErrExecutingStatement)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().
		Str("func", "*fastingSessionRepository.EditSessions").
		Int64("user_id", userID).
		Int("requested", len(ids)).
		Int64("updated", updated).
		Msg("edited fasting sessions")

	return updated, nil
}

func (r *fastingSessionRepository) selectOwnedSession(ctx context.Context, tx DBTX, id, userID int64) (models.FastingSession, error) {
	query, args, err := r.db.buildSelectOwnedSessionQuery(id, userID)
	if err != nil {
		return models.FastingSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return scanSession(tx.QueryRowContext(ctx, query, args...))
}

// DeleteOpenSessions removes the open sessions of userID. Repeating the call
// removes nothing and returns zero.
func (r *fastingSessionRepository) DeleteOpenSessions(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query, args, err := r.db.buildDeleteOpenSessionsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*fastingSessionRepository.DeleteOpenSessions").Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fastingSessionRepository.DeleteOpenSessions").Msg("failed to execute delete")
		return 0, r.db.wrapError(err, ErrExecutingStatement)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, r.db.wrapError(err, ErrExecutingStatement)
	}

	log.Info().
		Str("func", "*fastingSessionRepository.DeleteOpenSessions").
		Int64("user_id", userID).
		Int64("deleted", deleted).
		Msg("deleted open fasting sessions")

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (models.FastingSession, error) {
	var s models.FastingSession
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.StartTime,
		&s.EndTime,
		&s.Duration,
		&s.IsComplete,
		&s.CreatedAt,
	)
	return s, err
}
