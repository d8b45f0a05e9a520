// Package auth issues and verifies the signed session claims presented on
// every protected request.
package auth

import (
	"fmt"
	"time"

	"jewelry-store/internal/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the typed JWT payload: who the caller is and what role the
// claim asserts. Verified fresh on every protected request; there is no
// server-side session store and no revocation before expiry.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session claims with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a claim for the given identity with the configured expiry.
func (m *Manager) Issue(userID int64, username, role string) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("%w: JWT secret is not configured", errs.ErrConfig)
	}

	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token string. Expired, malformed, and
// mis-signed tokens all fail the same way so callers cannot probe which
// check rejected them.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	if len(m.secret) == 0 {
		return nil, fmt.Errorf("%w: JWT secret is not configured", errs.ErrConfig)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired token", errs.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid or expired token", errs.ErrUnauthorized)
	}

	return claims, nil
}
