package http

import (
	"net/http"
	"strconv"
	"strings"
)

// corsPolicy is the precomputed CORS configuration of the API.
type corsPolicy struct {
	origins    map[string]struct{}
	anyOrigin  bool
	methods    string
	headers    string
	exposed    string
	maxAgeSecs string
}

func newCORSPolicy(allowedOrigins []string) corsPolicy {
	policy := corsPolicy{
		origins:    make(map[string]struct{}, len(allowedOrigins)),
		methods:    strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}, ", "),
		headers:    strings.Join([]string{"Accept", "Authorization", "Content-Type", traceIDHeader}, ", "),
		exposed:    strings.Join([]string{"Authorization", traceIDHeader}, ", "),
		maxAgeSecs: strconv.Itoa(86400),
	}
	for _, origin := range allowedOrigins {
		origin = strings.ToLower(strings.TrimSpace(origin))
		if origin == "*" {
			policy.anyOrigin = true
			continue
		}
		if origin != "" {
			policy.origins[origin] = struct{}{}
		}
	}
	return policy
}

func (p corsPolicy) allows(origin string) bool {
	if p.anyOrigin {
		return true
	}
	_, ok := p.origins[strings.ToLower(origin)]
	return ok
}

// withCORS adds CORS headers for the configured origins and answers
// preflight requests. Requests without an Origin header pass untouched; a
// preflight from an origin that is not allowed gets 403.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	policy := newCORSPolicy(h.cfg.CORSAllowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""

		if !policy.allows(origin) {
			if preflight {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			// the browser blocks the response
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
		w.Header().Set("Access-Control-Expose-Headers", policy.exposed)

		if preflight {
			w.Header().Set("Access-Control-Allow-Methods", policy.methods)
			w.Header().Set("Access-Control-Allow-Headers", policy.headers)
			w.Header().Set("Access-Control-Max-Age", policy.maxAgeSecs)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
