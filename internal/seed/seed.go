package seed

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	appModels "github.com/dimasraf/sekolahku/internal/app/models"
	appRepos "github.com/dimasraf/sekolahku/internal/app/repositories"
	"github.com/dimasraf/sekolahku/internal/db"
	"github.com/dimasraf/sekolahku/internal/pkg/apperrors"
	"github.com/dimasraf/sekolahku/internal/pkg/auth"
)

const defaultAdminUsername = "admin"

// CreateDefaultAdmin makes sure an admin account exists so the protected
// endpoints are reachable on a fresh database. The password comes from
// SEED_ADMIN_PASSWORD; when unset, no account is created.
func CreateDefaultAdmin(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		lgr.Info().Msg("SEED_ADMIN_PASSWORD not set, skipping default admin creation")
		return nil
	}

	userRepo := appRepos.NewUserRepository(database)

	if _, err := userRepo.GetByUsername(ctx, defaultAdminUsername); err == nil {
		lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin account already exists")
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Username: defaultAdminUsername,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	}
	if err := userRepo.Insert(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrUsernameExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin account created")
	return nil
}
