package adaptor

import (
	"errors"
	"net/http"

	"jewelry-store/internal/errs"
	"jewelry-store/internal/usecase"
	"jewelry-store/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Order   *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Product, log),
		Order:   NewOrderHandler(service.Order, log),
	}
}

// handleServiceError maps the sentinel taxonomy to HTTP statuses. Every
// failure path produces a non-2xx status with a machine-readable error
// field; nothing is swallowed.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, errs.ErrInvalidInput), errors.Is(err, errs.ErrAlreadyExists):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, errs.ErrUnauthorized):
		log.Warn(operation+" unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, errs.ErrForbidden):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, errs.ErrNotFound):
		log.Warn(operation+" target not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		// Storage and configuration failures: the caller still learns the
		// real cause.
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
	}
}
