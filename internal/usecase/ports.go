package usecase

import (
	"context"

	"github.com/trebuchet-org/deployer-kit/internal/domain"
)

// ContractBuilder compiles project sources into ABI artifacts
type ContractBuilder interface {
	Build(ctx context.Context) error
}

// SourceFormatter formats a generated Solidity file in place
type SourceFormatter interface {
	Format(ctx context.Context, path string) error
}

// ArtifactRepository loads compiled contract artifacts
type ArtifactRepository interface {
	LoadABI(ctx context.Context, req domain.GenerationRequest) (*domain.ContractABI, error)
}

// DeployerGenerator renders a deployer script from its template holes
type DeployerGenerator interface {
	Generate(ctx context.Context, tmpl *domain.DeployerTemplate) (string, error)
}

// FileWriter handles file system operations for scripts
type FileWriter interface {
	WriteScript(ctx context.Context, path string, content string) error
	EnsureDirectory(ctx context.Context, path string) error
}

// Progress tracking interfaces

// ExecutionStage represents a stage of the generator pipeline
type ExecutionStage string

const (
	StageBuilding   ExecutionStage = "Building"
	StageLoading    ExecutionStage = "Loading"
	StageGenerating ExecutionStage = "Generating"
	StageFormatting ExecutionStage = "Formatting"
	StageCompleted  ExecutionStage = "Completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
