package wire

import (
	"jewelry-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes (no auth middleware)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
}
