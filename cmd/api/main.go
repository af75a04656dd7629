package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/dimasraf/sekolahku/internal/pkg/logger"
	"github.com/dimasraf/sekolahku/internal/server"
)

// @title Sekolahku API
// @version 1.0
// @description API for school administration: student registration, directory and ID cards

// @contact.name API Support
// @contact.email support@sekolahku.id

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
