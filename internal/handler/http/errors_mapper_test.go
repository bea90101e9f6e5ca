package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fastm8/internal/app"
	"github.com/MKhiriev/fastm8/internal/service"
	"github.com/MKhiriev/fastm8/internal/store"
	"github.com/MKhiriev/fastm8/internal/utils"
	"github.com/MKhiriev/fastm8/internal/validators"
	"github.com/MKhiriev/fastm8/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	driverErr := errors.New(`pq: relation "fast_logs" does not exist`)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "bad json",
			err:         fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSON,
		},
		{
			name:        "validation error keeps its text",
			err:         validators.ErrMissingStartTime,
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrMissingStartTime.Error(),
		},
		{
			name:        "invalid merged session",
			err:         fmt.Errorf("session 3: %w", models.ErrEndBeforeStart),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "session 3: " + models.ErrEndBeforeStart.Error(),
		},
		{
			name:        "missing identity claim",
			err:         service.ErrMissingIdentityClaim,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgMissingIdentityClaim,
		},
		{
			name:        "expired token before generic token error",
			err:         fmt.Errorf("parse: %w", service.ErrTokenIsExpired),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenIsExpired,
		},
		{
			name:        "invalid token",
			err:         service.ErrTokenIsExpiredOrInvalid,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:        "malformed authorization header",
			err:         utils.ErrInvalidAuthorizationHeader,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgInvalidAuthorizationHeader,
		},
		{
			name:        "credentials",
			err:         service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgInvalidEmailPassword,
		},
		{
			name:        "missing authorization header",
			err:         ErrEmptyAuthorizationHeader,
			wantStatus:  http.StatusForbidden,
			wantMessage: app.MsgMissingAuthorizationHeader,
		},
		{
			name:        "other user's data",
			err:         fmt.Errorf("%w: user 9", service.ErrUnauthorizedAccessToDifferentUserData),
			wantStatus:  http.StatusForbidden,
			wantMessage: app.MsgAccessDenied,
		},
		{
			name:        "duplicate user",
			err:         fmt.Errorf("error creating user: %w", store.ErrUserAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgUserAlreadyExists,
		},
		{
			name:        "unavailable wins over the failed operation",
			err:         fmt.Errorf("%w: %w: %w", store.ErrStorageUnavailable, store.ErrExecutingQuery, driverErr),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: app.MsgStorageUnavailable,
		},
		{
			name:        "driver message is not leaked",
			err:         fmt.Errorf("%w: %w", store.ErrExecutingQuery, driverErr),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	h := newTestHandler(t)
	rr := httptest.NewRecorder()

	h.writeError(rr, newRequest(http.MethodGet, "/api/logs", ""), fmt.Errorf("%w: secret detail", store.ErrScanningRows))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}
