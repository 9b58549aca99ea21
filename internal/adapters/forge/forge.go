package forge

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/trebuchet-org/deployer-kit/internal/domain/config"
	"github.com/trebuchet-org/deployer-kit/internal/usecase"
)

// buildArgs compiles sources only; scripts and tests are skipped
var buildArgs = []string{"build", "--skip", "s.sol", "--skip", "t.sol"}

// ForgeAdapter runs forge build and forge fmt in the project root
type ForgeAdapter struct {
	log         *slog.Logger
	projectRoot string
	binary      string
}

// NewForgeAdapter creates a new forge adapter
func NewForgeAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ForgeAdapter {
	binary := cfg.ForgeBinary
	if binary == "" {
		binary = "forge"
	}
	return &ForgeAdapter{
		log:         log.With("component", "ForgeAdapter"),
		projectRoot: cfg.ProjectRoot,
		binary:      binary,
	}
}

// Build runs forge build so the artifact directory is current
func (f *ForgeAdapter) Build(ctx context.Context) error {
	start := time.Now()
	f.log.Debug("running forge build", "dir", f.projectRoot, "args", buildArgs)

	output, err := f.run(ctx, buildArgs...)
	duration := time.Since(start)

	if err != nil {
		// the caller reports the output through the returned error
		f.log.Debug("forge build failed", "error", err, "duration", duration)
		return fmt.Errorf("forge build failed: %w\nOutput: %s", err, output)
	}

	f.log.Debug("forge build completed successfully", "duration", duration)
	return nil
}

// Format runs forge fmt on a single file
func (f *ForgeAdapter) Format(ctx context.Context, path string) error {
	f.log.Debug("running forge fmt", "path", path)

	output, err := f.run(ctx, "fmt", path)
	if err != nil {
		return fmt.Errorf("forge fmt failed: %w\nOutput: %s", err, output)
	}
	return nil
}

func (f *ForgeAdapter) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, f.binary, args...)
	cmd.Dir = f.projectRoot

	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.ContractBuilder = (*ForgeAdapter)(nil)
	_ usecase.SourceFormatter = (*ForgeAdapter)(nil)
)
