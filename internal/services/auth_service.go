package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"sitzy/internal/config"
	"sitzy/internal/models"
	"sitzy/internal/repositories/interfaces"
	"sitzy/internal/utils"
	"sitzy/pkg/logger"
)

type AuthService interface {
	Register(ctx context.Context, request *RegisterRequest) (*models.User, error)
	Login(ctx context.Context, request *LoginRequest) (*utils.TokenPair, error)

	// Authenticate resolves a bearer token to the user it was issued for.
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	userRepo interfaces.UserRepository
	security *config.SecurityConfig
	logger   *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, security *config.SecurityConfig, log *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		security: security,
		logger:   log,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *authService) Register(ctx context.Context, request *RegisterRequest) (*models.User, error) {
	if _, err := s.userRepo.GetByEmail(ctx, request.Email); err == nil {
		return nil, utils.ConflictError("email_registered")
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.InternalError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), s.security.BcryptCost)
	if err != nil {
		return nil, utils.InternalError(err)
	}

	user := &models.User{
		Email:          request.Email,
		HashedPassword: string(hashed),
		FullName:       request.FullName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.ConflictError("email_registered")
		}
		return nil, utils.InternalError(err)
	}

	s.logger.WithUserID(user.ID).Info("user registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, request *LoginRequest) (*utils.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.UnauthorizedError("login_failed")
		}
		return nil, utils.InternalError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password)) != nil {
		return nil, utils.UnauthorizedError("login_failed")
	}

	pair, err := utils.GenerateTokenPair(
		user.ID,
		user.Email,
		s.security.JWTSecret,
		s.security.JWTAccessTokenTTL,
		s.security.JWTRefreshTokenTTL,
	)
	if err != nil {
		return nil, utils.InternalError(err)
	}

	s.logger.WithUserID(user.ID).Info("user logged in")
	return pair, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := utils.ValidateToken(token, s.security.JWTSecret)
	if err != nil {
		return nil, utils.UnauthorizedError("invalid_token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.UnauthorizedError("invalid_token")
		}
		return nil, utils.InternalError(err)
	}
	return user, nil
}
