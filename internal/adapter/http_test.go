// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/MKhiriev/fastm8/internal/utils"
	"github.com/MKhiriev/fastm8/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *httpFastingClient {
	t.Helper()

	c, err := NewHTTPFastingClient(serverURL, time.Second, logger.Nop())
	require.NoError(t, err)
	return c.(*httpFastingClient)
}

func signedToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("fastm8", models.User{UserID: userID, Username: "alice"}, time.Hour, "secret")
	require.NoError(t, err)
	return token.SignedString
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:3000", want: "http://localhost:3000"},
		{raw: "https://api.example.com/", want: "https://api.example.com"},
		{raw: "  http://127.0.0.1:8080  ", want: "http://127.0.0.1:8080"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewHTTPFastingClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPFastingClient("", time.Second, logger.Nop())
	assert.Error(t, err)
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "pw", user.Password)

		_, _ = utils.WriteJSON(w, models.RegisterResponse{ID: 3, Username: user.Username, Email: user.Email}, http.StatusCreated)
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).Register(context.Background(), models.User{Username: "alice", Email: "a@x.io", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.User{UserID: 3, Username: "alice", Email: "a@x.io"}, got)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteError(w, "username or email already exists", http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Register(context.Background(), models.User{Username: "alice"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "username or email already exists")
}

func TestLogin_StoresToken(t *testing.T) {
	token := signedToken(t, 11)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+token)
		_, _ = utils.WriteJSON(w, models.LoginResponse{Message: "login successful", Token: token, Username: "alice", UserID: 11}, http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Login(context.Background(), models.User{Email: "a@x.io", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), got.UserID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, token, c.Token())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = utils.WriteError(w, "invalid email or password", http.StatusUnauthorized)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "no bearer header",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantErr: utils.ErrInvalidAuthorizationHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			_, err := c.Login(context.Background(), models.User{Email: "a@x.io", Password: "pw"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, c.Token())
		})
	}
}

// ── sessions ────────────────────────────────────────────────────────────────

func TestCreateSession_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/logs", r.URL.Path)

		var req models.NewSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.IsComplete)
		assert.False(t, *req.IsComplete)
		assert.Nil(t, req.EndTime)

		_, _ = utils.WriteJSON(w, models.CreateSessionResponse{Message: "fasting session created", ID: 9}, http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(" tok ")
	open := false
	id, err := c.CreateSession(context.Background(), models.NewSessionRequest{
		StartTime:  models.MustParseTimestamp("2024-01-01T00:00:00.000Z").Ptr(),
		IsComplete: &open,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestListSessions_QueryAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("startTime"))
		assert.Equal(t, "2024-01-31", r.URL.Query().Get("endTime"))
		_, _ = utils.WriteJSON(w, []models.FastingSession{{ID: 1}, {ID: 2}}, http.StatusOK)
	}))
	defer srv.Close()

	sessions, err := newTestClient(t, srv.URL).ListSessions(context.Background(),
		models.SessionRange{StartTime: "2024-01-01", EndTime: "2024-01-31"})

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, int64(2), sessions[1].ID)
}

func TestListOpenSessions_MessageMeansEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/open-logs", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "no fasting sessions found"}, http.StatusOK)
	}))
	defer srv.Close()

	sessions, err := newTestClient(t, srv.URL).ListOpenSessions(context.Background(), models.SessionRange{})

	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

func TestListSessions_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = utils.WriteError(w, "invalid startTime", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).ListSessions(context.Background(), models.SessionRange{StartTime: "01/02/2024"})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestEditSessions_SendsPatchPresence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		edits := body["edits"].([]any)
		require.Len(t, edits, 1)
		edit := edits[0].(map[string]any)
		assert.Contains(t, edit, "endTime")
		assert.Nil(t, edit["endTime"])
		assert.NotContains(t, edit, "startTime")

		_, _ = utils.WriteJSON(w, models.EditResponse{Message: "updated 1 fasting session(s)", Updated: 1}, http.StatusOK)
	}))
	defer srv.Close()

	updated, err := newTestClient(t, srv.URL).EditSessions(context.Background(), models.EditRequest{
		LogIDs: []int64{4},
		Edits:  []models.SessionPatch{{EndTime: models.Some[*models.Timestamp](nil)}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}

func TestDeleteOpenSessions(t *testing.T) {
	tests := []struct {
		name      string
		userID    int64
		wantQuery string
		status    int
		wantErr   error
	}{
		{name: "own sessions", wantQuery: "", status: http.StatusOK},
		{name: "explicit user", userID: 5, wantQuery: "5", status: http.StatusOK},
		{name: "other user", userID: 6, wantQuery: "6", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "storage down", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, tt.wantQuery, r.URL.Query().Get("userId"))
				if tt.status != http.StatusOK {
					_, _ = utils.WriteError(w, http.StatusText(tt.status), tt.status)
					return
				}
				_, _ = utils.WriteJSON(w, models.DeleteResponse{Message: "deleted 2 open fasting session(s)", Deleted: 2}, http.StatusOK)
			}))
			defer srv.Close()

			deleted, err := newTestClient(t, srv.URL).DeleteOpenSessions(context.Background(), tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(2), deleted)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Status(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
