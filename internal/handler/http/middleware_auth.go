package http

import (
	"net/http"

	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/MKhiriev/fastm8/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID and username in the request context with
// [utils.WithIdentity] before delegating to the next handler.
//
// Rejections:
//   - no "Authorization" header: 403 Forbidden ([ErrEmptyAuthorizationHeader]);
//   - a header not of the form "Bearer <token>": 401 Unauthorized;
//   - an expired, forged or otherwise invalid token: 401 Unauthorized;
//   - a verified token without a userId claim: 400 Bad Request.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		logger.FromContext(ctx).Debug().Int64("user_id", token.UserID).Msg("request authenticated")

		// downstream handlers read the identity instead of re-parsing the token
		ctx = utils.WithIdentity(ctx, token.UserID, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
