package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dimasraf/sekolahku/internal/app/models/dto"
	"github.com/dimasraf/sekolahku/internal/pkg/apperrors"
	"github.com/dimasraf/sekolahku/internal/pkg/auth"
)

func newAuthFixture() (*memUserStore, *AuthService) {
	users := newMemUserStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "sekolahku-test",
	})
	return users, NewAuthService(users, jwtService)
}

func TestCreateUserHashesPassword(t *testing.T) {
	users, service := newAuthFixture()

	user, err := service.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username: "admin",
		Password: "rahasia123",
		Role:     "ADMIN",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Password == "rahasia123" {
		t.Error("expected password stored hashed")
	}

	stored, err := users.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if !auth.CheckPassword(stored.Password, "rahasia123") {
		t.Error("expected stored hash to verify against the original password")
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	_, service := newAuthFixture()

	req := &dto.CreateUserRequest{Username: "admin", Password: "rahasia123", Role: "ADMIN"}
	if _, err := service.CreateUser(context.Background(), req); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := service.CreateUser(context.Background(), req)
	if !errors.Is(err, apperrors.ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	_, service := newAuthFixture()

	if _, err := service.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username: "admin",
		Password: "rahasia123",
		Role:     "ADMIN",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	resp, err := service.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "rahasia123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected an access token")
	}
	if resp.ExpiresIn <= 0 {
		t.Errorf("expected a positive expiry, got %d", resp.ExpiresIn)
	}
	if resp.User == nil || resp.User.Username != "admin" {
		t.Errorf("expected the account in the response, got %v", resp.User)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, service := newAuthFixture()

	if _, err := service.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username: "admin",
		Password: "rahasia123",
		Role:     "ADMIN",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	// Unknown username and wrong password surface the same error
	_, err := service.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "rahasia123"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown username, got %v", err)
	}

	_, err = service.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "salah"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}
