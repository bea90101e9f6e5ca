package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fastm8/internal/app"
	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/MKhiriev/fastm8/internal/service"
	"github.com/MKhiriev/fastm8/internal/store"
	"github.com/MKhiriev/fastm8/internal/utils"
	"github.com/MKhiriev/fastm8/internal/validators"
	"github.com/MKhiriev/fastm8/models"
)

// errorStatus binds a sentinel error to its response. An empty message means
// the error text itself is safe to return.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order and the first match wins. Store errors
// may wrap both ErrStorageUnavailable and the failed operation, and
// ErrTokenIsExpired wraps ErrTokenIsExpiredOrInvalid, so the narrower entry
// comes first.
var errorStatusMap = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidUserIDQuery, http.StatusBadRequest, app.MsgInvalidUserIDQuery},
	{validators.ErrValidation, http.StatusBadRequest, ""},
	{models.ErrInvalidSession, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrMissingIdentityClaim, http.StatusBadRequest, app.MsgMissingIdentityClaim},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgInvalidAuthorizationHeader},

	{ErrEmptyAuthorizationHeader, http.StatusForbidden, app.MsgMissingAuthorizationHeader},
	{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrUserAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},

	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

func statusFromError(err error) (int, string) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			if entry.message == "" {
				return entry.status, err.Error()
			}
			return entry.status, entry.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and a sanitized
// {"error": ...} body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteError(w, message, status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
