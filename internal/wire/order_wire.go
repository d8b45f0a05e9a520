package wire

import (
	"jewelry-store/internal/adaptor"
	"jewelry-store/pkg/auth"
	"jewelry-store/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	tokens *auth.Manager,
	log *zap.Logger,
) {
	// All order routes require an authenticated claim
	authed := r.With(middleware.Auth(tokens, log))
	authed.Post("/orders", orderHandler.PlaceOrder)
	authed.Get("/orders", orderHandler.GetOrders)
}
