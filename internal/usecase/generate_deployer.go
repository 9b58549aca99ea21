package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/trebuchet-org/deployer-kit/internal/domain"
	"github.com/trebuchet-org/deployer-kit/internal/domain/config"
)

// GenerateDeployerResult contains the result of deployer generation
type GenerateDeployerResult struct {
	ScriptPath        string // relative to the project root unless --output was absolute
	AbsolutePath      string
	ContractName      string
	ConstructorParams []domain.FormattedParameter
	InitializerParams []domain.FormattedParameter
	Initializable     bool

	// FormatErr is set when the script was written but forge fmt failed
	FormatErr error
}

// GenerateDeployer is the use case for generating a deployer script from a
// contract's ABI
type GenerateDeployer struct {
	config    *config.RuntimeConfig
	builder   ContractBuilder
	artifacts ArtifactRepository
	generator DeployerGenerator
	writer    FileWriter
	formatter SourceFormatter
	progress  ProgressSink
	log       *slog.Logger
}

// NewGenerateDeployer creates a new GenerateDeployer use case
func NewGenerateDeployer(
	cfg *config.RuntimeConfig,
	builder ContractBuilder,
	artifacts ArtifactRepository,
	generator DeployerGenerator,
	writer FileWriter,
	formatter SourceFormatter,
	progress ProgressSink,
	log *slog.Logger,
) *GenerateDeployer {
	return &GenerateDeployer{
		config:    cfg,
		builder:   builder,
		artifacts: artifacts,
		generator: generator,
		writer:    writer,
		formatter: formatter,
		progress:  progress,
		log:       log.With("component", "GenerateDeployer"),
	}
}

// Run executes the generate deployer use case. Every stage aborts the run on
// failure except formatting, which is reported on the result.
func (uc *GenerateDeployer) Run(ctx context.Context, req domain.GenerationRequest) (*GenerateDeployerResult, error) {
	contractName := req.ResolvedContractName()
	uc.log.Debug("generating deployer", "source", req.SourcePath, "contract", contractName, "output", req.OutputDir)

	if uc.config.SkipBuild {
		uc.progress.Info("Skipping forge build, using existing artifacts")
	} else {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageBuilding, Message: "Compiling contracts...", Spinner: true})
		err := uc.builder.Build(ctx)
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageBuilding})
		if err != nil {
			return nil, err
		}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageLoading, Message: "Loading " + contractName})
	contractABI, err := uc.artifacts.LoadABI(ctx, req)
	if err != nil {
		return nil, err
	}

	args := ResolveArguments(contractABI)
	tmpl := domain.NewDeployerTemplate(req, args)

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageGenerating, Message: "Generating " + contractName + "Deployer"})
	content, err := uc.generator.Generate(ctx, tmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate deployer: %w", err)
	}

	scriptPath := req.OutputPath()
	if err := uc.writer.EnsureDirectory(ctx, filepath.Dir(scriptPath)); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := uc.writer.WriteScript(ctx, scriptPath, content); err != nil {
		return nil, fmt.Errorf("failed to write deployer: %w", err)
	}

	result := &GenerateDeployerResult{
		ScriptPath:        scriptPath,
		AbsolutePath:      uc.config.ResolvePath(scriptPath),
		ContractName:      contractName,
		ConstructorParams: tmpl.ConstructorParams,
		InitializerParams: tmpl.InitializerParams,
		Initializable:     tmpl.Initializable,
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageFormatting, Message: "Formatting " + scriptPath})
	if err := uc.formatter.Format(ctx, scriptPath); err != nil {
		uc.log.Debug("forge fmt failed", "path", scriptPath, "error", err)
		uc.progress.Error(fmt.Sprintf("forge fmt failed, %s is unformatted: %v", scriptPath, err))
		result.FormatErr = err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	return result, nil
}
