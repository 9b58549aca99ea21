package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/trebuchet-org/deployer-kit/internal/app"
	"github.com/trebuchet-org/deployer-kit/internal/cli/render"
	"github.com/trebuchet-org/deployer-kit/internal/config"
	"github.com/trebuchet-org/deployer-kit/internal/domain"
)

// valueFlags must be followed by a value that is not itself a flag
var valueFlags = map[string]string{
	"output": "the path to a directory",
	"name":   "the name of the contract",
}

// NewRootCmd creates the deployer-kit command
func NewRootCmd() *cobra.Command {
	var contractName string

	rootCmd := &cobra.Command{
		Use:   "deployer-kit <pathToContract>",
		Short: "Generate Foundry deployer scripts from compiled contract ABIs",
		Long: `Generate a Foundry deployer script for an upgradeable contract.

The contract is compiled with forge, its ABI is read from the artifact
directory and a <Contract>Deployer.s.sol script is written that deploys
the implementation behind a TransparentUpgradeableProxy.`,
		Example: `  # Deployer for the contract named after the file
  deployer-kit src/Vault.sol

  # Contract whose name differs from its file, custom output directory
  deployer-kit src/tokens/Tokens.sol --name StakedToken -o script/tokens`,
		Version:       config.Version,
		Args:          maxOneSource,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if err := validateValueFlags(cmd.Flags(), valueFlags); err != nil {
				return usageError(cmd, err)
			}

			v := config.SetupViper(cmd)
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			appInstance.Log.Debug("starting", "build", config.BuildInfo(), "project", appInstance.Config.ProjectRoot)

			// Read after InitApp so .deployer-kit.json can set the output directory
			req := domain.NewGenerationRequest(args[0], v.GetString("output"), contractName)
			result, err := appInstance.GenerateDeployer.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			workDir, err := os.Getwd()
			if err != nil {
				workDir = appInstance.Config.ProjectRoot
			}
			return render.NewGenerateRenderer(cmd.OutOrStdout(), workDir).Render(result)
		},
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(usageError)

	rootCmd.Flags().StringP("output", "o", domain.DefaultOutputDir, "Directory the deployer script is written to")
	rootCmd.Flags().StringVarP(&contractName, "name", "n", "", "Contract name, when it differs from the file name")
	rootCmd.Flags().Bool("debug", false, "Enable debug output")
	rootCmd.Flags().Bool("skip-build", false, "Use existing artifacts instead of running forge build")

	return rootCmd
}

// maxOneSource accepts at most one source path
func maxOneSource(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return usageError(cmd, fmt.Errorf("expected a single contract path, got %d arguments", len(args)))
	}
	return nil
}

// validateValueFlags rejects value flags given an empty value or another flag as value
func validateValueFlags(flags *pflag.FlagSet, required map[string]string) error {
	var errs []error
	flags.Visit(func(f *pflag.Flag) {
		expected, ok := required[f.Name]
		if !ok {
			return
		}
		value := f.Value.String()
		if value == "" || strings.HasPrefix(value, "-") {
			errs = append(errs, fmt.Errorf("--%s flag requires %s", f.Name, expected))
		}
	})
	return errors.Join(errs...)
}

// usageError prints the usage text and marks err as a usage error
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	return domain.UsageError("%v", err)
}
