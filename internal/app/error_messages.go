// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fastm8 server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when an account payload misses a
	// required field.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned for an unknown email and for a
	// wrong password alike.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgUserAlreadyExists is returned when a registration reuses a taken
	// username or email.
	MsgUserAlreadyExists = "username or email already exists"

	// MsgUserNotFound is returned when the verified identity no longer
	// matches a stored account.
	MsgUserNotFound = "user not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned when the database timed out or the
	// connection failed. The request may be retried.
	MsgStorageUnavailable = "storage temporarily unavailable, please retry"

	// MsgMissingAuthorizationHeader is returned when a protected route is
	// called without an "Authorization" header.
	MsgMissingAuthorizationHeader = "authorization header is required"

	// MsgInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	MsgInvalidAuthorizationHeader = "authorization header must be of the form: Bearer <token>"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMissingIdentityClaim is returned when a verified token carries no
	// userId claim.
	MsgMissingIdentityClaim = "token carries no userId claim"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// access or modify sessions that belong to a different user.
	MsgAccessDenied = "access denied"

	// MsgInvalidUserIDQuery is returned when the userId query parameter is
	// not an integer.
	MsgInvalidUserIDQuery = "userId must be an integer"

	// MsgLoginSuccessful accompanies the token of a successful login.
	MsgLoginSuccessful = "login successful"

	// MsgSessionCreated accompanies the id of a stored session.
	MsgSessionCreated = "fasting session created"

	// MsgNoSessionsFound replaces an empty session list.
	MsgNoSessionsFound = "no fasting sessions found"

	// MsgSessionsUpdated is the format of a batch edit result.
	MsgSessionsUpdated = "updated %d fasting session(s)"

	// MsgNoOpenSessionsToDelete is returned when DELETE /api/logs removed
	// nothing.
	MsgNoOpenSessionsToDelete = "no open fasting sessions to delete"

	// MsgOpenSessionsDeleted is the format of a non-empty delete result.
	MsgOpenSessionsDeleted = "deleted %d open fasting session(s)"

	// MsgStatusActive is the body status of GET /status.
	MsgStatusActive = "active"
)
