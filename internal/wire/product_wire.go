package wire

import (
	"jewelry-store/internal/adaptor"
	"jewelry-store/pkg/auth"
	"jewelry-store/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	tokens *auth.Manager,
	log *zap.Logger,
) {
	// Public catalog listing (anyone can browse)
	r.Get("/products", productHandler.GetProducts)

	// Catalog mutations require an admin claim
	admin := r.With(middleware.Auth(tokens, log), middleware.Admin(log))
	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/{id}", productHandler.UpdateProduct)
	admin.Delete("/products/{id}", productHandler.DeleteProduct)
}
