package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jewelry-store/internal/errs"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: bad payload", errs.ErrInvalidInput), http.StatusBadRequest},
		{"already exists", fmt.Errorf("%w: username already taken", errs.ErrAlreadyExists), http.StatusBadRequest},
		{"unauthorized", fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized), http.StatusUnauthorized},
		{"forbidden", fmt.Errorf("%w: admin only", errs.ErrForbidden), http.StatusForbidden},
		{"not found", fmt.Errorf("%w: product 9", errs.ErrNotFound), http.StatusNotFound},
		{"storage failure", errors.New("product 2 is unavailable or out of stock"), http.StatusInternalServerError},
		{"wrapped storage failure", fmt.Errorf("place order: %w", errors.New("connection reset")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test operation")

			require.Equal(t, tt.want, rec.Code)

			// Every failure reports the underlying message, even 500s.
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tt.err.Error(), body["error"])
		})
	}
}
