package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jewelry-store/pkg/auth"
	"jewelry-store/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func protectedEndpoint(t *testing.T) (http.Handler, *auth.Manager) {
	t.Helper()
	tokens := auth.NewManager("test-secret", time.Hour)

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		role, _ := utils.GetRoleFromContext(r.Context())
		utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"id":   userID,
			"role": role,
		})
	})

	return Auth(tokens, zap.NewNop())(final), tokens
}

func TestAuth_MissingHeader(t *testing.T) {
	handler, _ := protectedEndpoint(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "error")
}

func TestAuth_MalformedHeader(t *testing.T) {
	handler, tokens := protectedEndpoint(t)
	token, err := tokens.Issue(7, "alice", "customer")
	require.NoError(t, err)

	for _, header := range []string{
		"Basic " + token,
		token,
		"Bearer",
		"Bearer  ", // double space splits into three parts
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", header)
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	handler, _ := protectedEndpoint(t)

	otherSecret := auth.NewManager("other-secret", time.Hour)
	token, err := otherSecret.Issue(7, "alice", "customer")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidTokenAttachesIdentity(t *testing.T) {
	handler, tokens := protectedEndpoint(t)
	token, err := tokens.Issue(7, "alice", "customer")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID   int64  `json:"id"`
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, int64(7), body.ID)
	require.Equal(t, "customer", body.Role)
}

func TestAdmin_RejectsCustomer(t *testing.T) {
	handler, tokens := adminEndpoint(t)
	token, err := tokens.Issue(7, "alice", "customer")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["error"], "Admin")
}

func TestAdmin_AllowsAdmin(t *testing.T) {
	handler, tokens := adminEndpoint(t)
	token, err := tokens.Issue(1, "admin", "admin")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdmin_RequiresAuthFirst(t *testing.T) {
	// Admin without a preceding Auth sees no role in context.
	handler := Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func adminEndpoint(t *testing.T) (http.Handler, *auth.Manager) {
	t.Helper()
	tokens := auth.NewManager("test-secret", time.Hour)

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	chain := Auth(tokens, zap.NewNop())(Admin(zap.NewNop())(final))
	return chain, tokens
}
