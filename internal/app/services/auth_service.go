package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimasraf/sekolahku/internal/app/models"
	"github.com/dimasraf/sekolahku/internal/app/models/dto"
	"github.com/dimasraf/sekolahku/internal/pkg/apperrors"
	"github.com/dimasraf/sekolahku/internal/pkg/auth"
	"github.com/dimasraf/sekolahku/internal/pkg/logger"
)

// AuthService handles account creation and login.
type AuthService struct {
	users      UserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
	}
}

// CreateUser registers a new account with a hashed password
func (s *AuthService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		Role:     req.Role,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User account created")
	return user, nil
}

// Login verifies the credentials and returns a signed access token.
// A wrong username and a wrong password report the same error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		User:        user,
	}, nil
}
