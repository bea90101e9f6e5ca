// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the fastm8 REST API.
//
// The primary abstraction is [FastingClient], which hides the transport
// from callers such as integration tests and command-line tools. The package
// ships an HTTP implementation built on resty ([NewHTTPFastingClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/fastm8/models"
)

// FastingClient talks to a fastm8 server on behalf of one user.
// Implementations attach the bearer token obtained by Login to every
// session request.
type FastingClient interface {
	// SetToken stores the bearer token used by all session requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before Login.
	Token() string

	// Status calls GET /status and returns the reported status.
	Status(ctx context.Context) (string, error)

	// Register creates an account and returns it with its assigned id.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges email and password for a token, stores it via
	// SetToken and returns it together with the user id it names.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// CreateSession stores a new session and returns its id.
	CreateSession(ctx context.Context, req models.NewSessionRequest) (int64, error)

	// ListSessions returns the session history within the optional bounds
	// of rng. An informational "no sessions" answer yields an empty slice.
	ListSessions(ctx context.Context, rng models.SessionRange) ([]models.FastingSession, error)

	// ListOpenSessions calls GET /api/open-logs. Without bounds it returns
	// only open sessions.
	ListOpenSessions(ctx context.Context, rng models.SessionRange) ([]models.FastingSession, error)

	// EditSessions applies positional edits and returns how many matched.
	EditSessions(ctx context.Context, req models.EditRequest) (int64, error)

	// DeleteOpenSessions removes open sessions. A non-zero userID is sent
	// as the userId query parameter.
	DeleteOpenSessions(ctx context.Context, userID int64) (int64, error)
}
