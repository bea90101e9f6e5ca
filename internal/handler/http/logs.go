package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/fastm8/internal/app"
	"github.com/MKhiriev/fastm8/internal/utils"
	"github.com/MKhiriev/fastm8/models"
)

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req models.NewSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	session, err := h.services.FastingService.CreateSession(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.CreateSessionResponse{
		Message: app.MsgSessionCreated,
		ID:      session.ID,
	}, http.StatusCreated)
}

// listSessions answers GET /api/logs: the whole history of the caller,
// optionally bounded by the startTime and endTime query parameters.
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.services.FastingService.ListSessions(r.Context(), rangeFromQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeSessions(w, sessions)
}

// listOpenSessions answers GET /api/open-logs. With at least one bound it
// behaves like GET /api/logs.
func (h *Handler) listOpenSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		sessions []models.FastingSession
		err      error
	)
	if rng := rangeFromQuery(r); rng.HasBounds() {
		sessions, err = h.services.FastingService.ListSessions(ctx, rng)
	} else {
		sessions, err = h.services.FastingService.ListOpenSessions(ctx, 0)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeSessions(w, sessions)
}

func (h *Handler) editSessions(w http.ResponseWriter, r *http.Request) {
	var req models.EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.FastingService.EditSessions(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.EditResponse{
		Message: fmt.Sprintf(app.MsgSessionsUpdated, updated),
		Updated: updated,
	}, http.StatusOK)
}

// deleteOpenSessions answers DELETE /api/logs. The optional userId query
// parameter must name the caller.
func (h *Handler) deleteOpenSessions(w http.ResponseWriter, r *http.Request) {
	var claimed int64
	if raw := r.URL.Query().Get("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidUserIDQuery, raw))
			return
		}
		claimed = id
	}

	deleted, err := h.services.FastingService.DeleteOpenSessions(r.Context(), claimed)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	message := app.MsgNoOpenSessionsToDelete
	if deleted > 0 {
		message = fmt.Sprintf(app.MsgOpenSessionsDeleted, deleted)
	}

	_, _ = utils.WriteJSON(w, models.DeleteResponse{Message: message, Deleted: deleted}, http.StatusOK)
}

func rangeFromQuery(r *http.Request) models.SessionRange {
	query := r.URL.Query()
	return models.SessionRange{
		StartTime: query.Get("startTime"),
		EndTime:   query.Get("endTime"),
	}
}

// writeSessions answers with the list, or with an informational message
// when it is empty.
func writeSessions(w http.ResponseWriter, sessions []models.FastingSession) {
	if len(sessions) == 0 {
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoSessionsFound}, http.StatusOK)
		return
	}
	_, _ = utils.WriteJSON(w, sessions, http.StatusOK)
}
