package usecase

import (
	"jewelry-store/internal/data/repository"
	"jewelry-store/pkg/auth"
	"jewelry-store/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
	Order   OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, tokens *auth.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, config, tokens, log),
		Product: NewProductService(repo.Product, log),
		Order:   NewOrderService(repo.Order, log),
	}
}
