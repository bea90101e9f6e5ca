package store

import (
	"context"

	"github.com/MKhiriev/fastm8/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned ID and
	// creation time. A taken username or email yields ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered with email, or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// FastingSessionRepository is the fasting ledger.
type FastingSessionRepository interface {
	// CreateSession inserts session and returns it with the assigned ID.
	CreateSession(ctx context.Context, session models.FastingSession) (models.FastingSession, error)

	// ListSessions returns the sessions matching filter, most recent start
	// first. An empty result is not an error.
	ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.FastingSession, error)

	// EditSessions applies patches[i] to the session ids[i] owned by userID
	// inside one transaction and reports how many sessions matched.
	// Ids that do not exist or belong to another user are skipped.
	EditSessions(ctx context.Context, userID int64, ids []int64, patches []models.SessionPatch) (int64, error)

	// DeleteOpenSessions removes every open session of userID and returns
	// how many were removed.
	DeleteOpenSessions(ctx context.Context, userID int64) (int64, error)
}
