package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fastm8/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "message response",
			data:       models.MessageResponse{Message: "no fasting sessions found"},
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"no fasting sessions found"}`,
		},
		{
			name:       "created",
			data:       models.CreateSessionResponse{Message: "created", ID: 3},
			status:     http.StatusCreated,
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"created","id":3}`,
		},
		{
			name:       "empty slice",
			data:       []models.FastingSession{},
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "nil",
			data:       nil,
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `null`,
		},
		{
			// channels cannot be marshaled to JSON
			name:       "non-serializable",
			data:       make(chan int),
			status:     http.StatusOK,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				if n != len(tt.wantBody) {
					t.Errorf("expected %d bytes written, got %d", len(tt.wantBody), n)
				}
				if w.Body.String() != tt.wantBody {
					t.Errorf("expected body %s, got %s", tt.wantBody, w.Body.String())
				}
				if ct := w.Header().Get("Content-Type"); ct != "application/json" {
					t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
				}
			}
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteError(w, "invalid token", http.StatusUnauthorized)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if w.Body.String() != `{"error":"invalid token"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
