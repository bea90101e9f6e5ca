package service

import (
	"context"

	"github.com/MKhiriev/fastm8/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and issues the bearer
// tokens the authorization guard verifies.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FastingService is the fasting session API. Every method acts on the
// sessions of a single user.
type FastingService interface {
	CreateSession(ctx context.Context, req models.NewSessionRequest) (models.FastingSession, error)

	// ListOpenSessions returns the open sessions of userID, most recent first.
	ListOpenSessions(ctx context.Context, userID int64) ([]models.FastingSession, error)

	// ListSessions returns every session of rng.UserID whose start time falls
	// within the optional bounds of rng, most recent first.
	ListSessions(ctx context.Context, rng models.SessionRange) ([]models.FastingSession, error)

	// EditSessions applies the positional edits and reports how many
	// sessions were matched.
	EditSessions(ctx context.Context, req models.EditRequest) (int64, error)

	// DeleteOpenSessions removes the open sessions of userID and reports
	// how many were removed.
	DeleteOpenSessions(ctx context.Context, userID int64) (int64, error)
}

// FastingServiceWrapper defines middleware composition for FastingService.
// Implementations wrap an existing FastingService to add behavior such as
// logging or validating.
type FastingServiceWrapper interface {
	Wrap(FastingService) FastingService // returns a decorated FastingService applying additional behavior
}
