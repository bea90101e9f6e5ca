package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fastm8/internal/config"
	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name           string
		allowedOrigins []string
		origin         string
		method         string
		preflight      bool
		wantStatus     int
		wantOrigin     string
		wantNext       bool
	}{
		{
			name:       "no origin header",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "nothing configured",
			origin:     "https://app.example.com",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:           "allowed origin",
			allowedOrigins: []string{"https://app.example.com"},
			origin:         "https://app.example.com",
			method:         http.MethodGet,
			wantStatus:     http.StatusOK,
			wantOrigin:     "https://app.example.com",
			wantNext:       true,
		},
		{
			name:           "case insensitive",
			allowedOrigins: []string{"HTTPS://APP.EXAMPLE.COM"},
			origin:         "https://app.example.com",
			method:         http.MethodGet,
			wantStatus:     http.StatusOK,
			wantOrigin:     "https://app.example.com",
			wantNext:       true,
		},
		{
			name:           "wildcard",
			allowedOrigins: []string{"*"},
			origin:         "http://localhost:5173",
			method:         http.MethodPost,
			wantStatus:     http.StatusOK,
			wantOrigin:     "http://localhost:5173",
			wantNext:       true,
		},
		{
			name:           "preflight allowed",
			allowedOrigins: []string{"https://app.example.com"},
			origin:         "https://app.example.com",
			method:         http.MethodOptions,
			preflight:      true,
			wantStatus:     http.StatusNoContent,
			wantOrigin:     "https://app.example.com",
		},
		{
			name:           "preflight denied",
			allowedOrigins: []string{"https://app.example.com"},
			origin:         "https://evil.example.com",
			method:         http.MethodOptions,
			preflight:      true,
			wantStatus:     http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), cfg: config.Server{CORSAllowedOrigins: tt.allowedOrigins}}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/api/logs", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			}
			rr := httptest.NewRecorder()

			h.withCORS(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.preflight && tt.wantStatus == http.StatusNoContent {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
			}
		})
	}
}
