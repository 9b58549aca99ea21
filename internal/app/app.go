package app

import (
	"log/slog"

	"github.com/trebuchet-org/deployer-kit/internal/domain/config"
	"github.com/trebuchet-org/deployer-kit/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	GenerateDeployer *usecase.GenerateDeployer
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	generateDeployer *usecase.GenerateDeployer,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		GenerateDeployer: generateDeployer,
	}, nil
}
