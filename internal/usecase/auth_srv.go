package usecase

import (
	"context"
	"fmt"

	"jewelry-store/internal/data/entity"
	"jewelry-store/internal/data/repository"
	"jewelry-store/internal/dto/request"
	"jewelry-store/internal/dto/response"
	"jewelry-store/internal/errs"
	"jewelry-store/pkg/auth"
	"jewelry-store/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)

	// EnsureAdmin seeds the configured admin account on startup. This is
	// the only path that creates an admin; no endpoint promotes roles.
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	users  repository.UserRepository
	config *utils.Config
	tokens *auth.Manager
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, config *utils.Config, tokens *auth.Manager, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		config: config,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	// 1. Validate input
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errors))
		return fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(errors))
	}

	// 2. Check username is free
	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: username already taken", errs.ErrAlreadyExists)
	}

	// 3. Check email is free
	existing, err = s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: email already registered", errs.ErrAlreadyExists)
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	// 5. Save user; role always starts as customer
	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCustomer,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate input
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errors))
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(errors))
	}

	// 2. Find user
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized)
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized)
	}

	// 4. Issue claim
	token, err := s.tokens.Issue(user.ID, user.Username, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return &response.LoginResponse{
		Token: token,
		User:  response.UserToInfo(user),
	}, nil
}

func (s *authService) EnsureAdmin(ctx context.Context) error {
	admin := s.config.Admin
	if admin.Username == "" || admin.Password == "" {
		s.log.Debug("Admin seeding skipped, not configured")
		return nil
	}

	existing, err := s.users.FindByUsername(ctx, admin.Username)
	if err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &entity.User{
		Username:     admin.Username,
		Email:        admin.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	s.log.Info("Admin user seeded",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return nil
}
