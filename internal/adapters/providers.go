package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/deployer-kit/internal/adapters/forge"
	"github.com/trebuchet-org/deployer-kit/internal/adapters/fs"
	"github.com/trebuchet-org/deployer-kit/internal/adapters/progress"
	"github.com/trebuchet-org/deployer-kit/internal/adapters/repository/artifacts"
	"github.com/trebuchet-org/deployer-kit/internal/adapters/template"
	"github.com/trebuchet-org/deployer-kit/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),
)

// ForgeSet provides forge-based implementations
var ForgeSet = wire.NewSet(
	forge.NewForgeAdapter,
	wire.Bind(new(usecase.ContractBuilder), new(*forge.ForgeAdapter)),
	wire.Bind(new(usecase.SourceFormatter), new(*forge.ForgeAdapter)),
)

// RepositorySet provides artifact loading
var RepositorySet = wire.NewSet(
	artifacts.NewRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*artifacts.Repository)),
)

// TemplateSet provides template-based implementations
var TemplateSet = wire.NewSet(
	template.NewDeployerGeneratorAdapter,
	wire.Bind(new(usecase.DeployerGenerator), new(*template.DeployerGeneratorAdapter)),
)

// ProgressSet provides the terminal progress sink
var ProgressSet = wire.NewSet(
	progress.NewSpinnerSink,
	wire.Bind(new(usecase.ProgressSink), new(*progress.SpinnerSink)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ForgeSet,
	RepositorySet,
	TemplateSet,
	ProgressSet,
)
