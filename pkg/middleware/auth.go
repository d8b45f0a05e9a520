package middleware

import (
	"net/http"
	"strings"

	"jewelry-store/pkg/auth"
	"jewelry-store/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer token on protected routes. A missing or
// invalid claim stops processing with 401; on success the claim identity
// is attached to the request context for downstream handlers.
func Auth(tokens *auth.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				// Expired, malformed, mis-signed: all the same to the caller.
				logger.Warn("Rejected session claim",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Username, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
