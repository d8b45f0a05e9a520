package middleware

import (
	"net/http"

	"jewelry-store/internal/data/entity"
	"jewelry-store/pkg/utils"

	"go.uber.org/zap"
)

// Admin checks the role attached by Auth. The role comes from the signed
// claim itself, so no extra storage round-trip happens here.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != string(entity.RoleAdmin) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Non-admin access attempt",
					zap.Int64("user_id", userID),
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
