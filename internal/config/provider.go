package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/deployer-kit/internal/domain"
	"github.com/trebuchet-org/deployer-kit/internal/domain/config"
)

const (
	// EnvPrefix is the prefix of every environment variable the tool reads
	EnvPrefix = "DEPLOYER_KIT"

	// LocalConfigFile is an optional per-project settings file
	LocalConfigFile = ".deployer-kit.json"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			// Not inside a Foundry project: paths stay relative to the working directory
			projectRoot, err = os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve working directory: %w", err)
			}
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	if err := mergeLocalConfig(v, projectRoot); err != nil {
		return nil, err
	}

	// .env files may set DEPLOYER_KIT_* and FOUNDRY_PROFILE, so load them before reading
	loadEnvFiles(projectRoot)

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}

	profile := os.Getenv("FOUNDRY_PROFILE")
	if profile == "" {
		profile = config.DefaultFoundryProfile
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		ForgeBinary:    v.GetString("forge"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		SkipBuild:      v.GetBool("skip_build"),
	}

	cfg.OutDir = v.GetString("out")
	if cfg.OutDir == "" {
		cfg.OutDir = foundryConfig.OutPath(profile)
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find foundry.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("forge", "forge")
	v.SetDefault("output", domain.DefaultOutputDir)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("skip_build", false)

	bindFlag(v, cmd, "output", "output")
	bindFlag(v, cmd, "debug", "debug")
	bindFlag(v, cmd, "skip_build", "skip-build")

	return v
}

// bindFlag binds a command flag to a viper key if the command defines it
func bindFlag(v *viper.Viper, cmd *cobra.Command, key, flagName string) {
	if cmd == nil {
		return
	}
	if f := cmd.Flags().Lookup(flagName); f != nil {
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	}
}

// mergeLocalConfig reads the optional project settings file
func mergeLocalConfig(v *viper.Viper, projectRoot string) error {
	path := filepath.Join(projectRoot, LocalConfigFile)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("failed to read %s: %w", LocalConfigFile, err)
	}
	return nil
}
