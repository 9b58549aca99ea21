//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/deployer-kit/internal/adapters"
	"github.com/trebuchet-org/deployer-kit/internal/config"
	"github.com/trebuchet-org/deployer-kit/internal/logging"
	"github.com/trebuchet-org/deployer-kit/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewGenerateDeployer,

		// App
		NewApp,
	)
	return nil, nil
}
