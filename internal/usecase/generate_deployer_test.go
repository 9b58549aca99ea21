package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deployer-kit/internal/adapters/fs"
	"github.com/trebuchet-org/deployer-kit/internal/adapters/repository/artifacts"
	"github.com/trebuchet-org/deployer-kit/internal/adapters/template"
	"github.com/trebuchet-org/deployer-kit/internal/domain"
	"github.com/trebuchet-org/deployer-kit/internal/domain/config"
	"github.com/trebuchet-org/deployer-kit/internal/usecase"
)

const vaultArtifact = `{
  "abi": [
    {"type": "constructor", "inputs": [{"name": "owner", "type": "address", "internalType": "address"}], "stateMutability": "nonpayable"},
    {"type": "function", "name": "initialize", "inputs": [{"name": "cap", "type": "uint256", "internalType": "uint256"}], "outputs": [], "stateMutability": "nonpayable"}
  ]
}`

// MockContractBuilder is a mock implementation of ContractBuilder
type MockContractBuilder struct {
	mock.Mock
}

func (m *MockContractBuilder) Build(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSourceFormatter is a mock implementation of SourceFormatter
type MockSourceFormatter struct {
	mock.Mock
}

func (m *MockSourceFormatter) Format(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockProgressSink records progress events and messages
type MockProgressSink struct {
	events   []usecase.ProgressEvent
	infos    []string
	warnings []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.warnings = append(m.warnings, message)
}

func (m *MockProgressSink) stages() []usecase.ExecutionStage {
	stages := make([]usecase.ExecutionStage, 0, len(m.events))
	for _, e := range m.events {
		stages = append(stages, e.Stage)
	}
	return stages
}

type fixture struct {
	root      string
	cfg       *config.RuntimeConfig
	builder   *MockContractBuilder
	formatter *MockSourceFormatter
	progress  *MockProgressSink
	uc        *usecase.GenerateDeployer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	cfg := &config.RuntimeConfig{ProjectRoot: root, OutDir: "out"}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &fixture{
		root:      root,
		cfg:       cfg,
		builder:   new(MockContractBuilder),
		formatter: new(MockSourceFormatter),
		progress:  new(MockProgressSink),
	}
	f.uc = usecase.NewGenerateDeployer(
		cfg,
		f.builder,
		artifacts.NewRepository(cfg, log),
		template.NewDeployerGeneratorAdapter(),
		fs.NewFileWriterAdapter(cfg),
		f.formatter,
		f.progress,
		log,
	)
	return f
}

func (f *fixture) writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	artifactDir := filepath.Join(f.root, "out", dir)
	require.NoError(t, os.MkdirAll(artifactDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(artifactDir, name+".json"), []byte(content), 0644))
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.root, path))
	require.NoError(t, err)
	return string(data)
}

func TestGenerateDeployer(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a deployer for an initializable contract", func(t *testing.T) {
		f := newFixture(t)
		f.writeArtifact(t, "Vault.sol", "Vault", vaultArtifact)
		f.builder.On("Build", mock.Anything).Return(nil)
		f.formatter.On("Format", mock.Anything, "script/deployers/VaultDeployer.s.sol").Return(nil)

		result, err := f.uc.Run(ctx, domain.NewGenerationRequest("src/Vault.sol", "", ""))
		require.NoError(t, err)

		assert.Equal(t, "script/deployers/VaultDeployer.s.sol", result.ScriptPath)
		assert.Equal(t, filepath.Join(f.root, "script", "deployers", "VaultDeployer.s.sol"), result.AbsolutePath)
		assert.Equal(t, "Vault", result.ContractName)
		assert.True(t, result.Initializable)
		assert.NoError(t, result.FormatErr)

		content := f.read(t, result.ScriptPath)
		assert.Contains(t, content, "address owner")
		assert.Contains(t, content, "uint256 cap")
		assert.Contains(t, content, "abi.encodeCall(Vault.initialize, (cap))")
		assert.NotContains(t, content, "not initializable")

		f.builder.AssertExpectations(t)
		f.formatter.AssertExpectations(t)
		assert.Empty(t, f.progress.infos)
		assert.Empty(t, f.progress.warnings)
		assert.Equal(t, []usecase.ExecutionStage{
			usecase.StageBuilding,
			usecase.StageBuilding,
			usecase.StageLoading,
			usecase.StageGenerating,
			usecase.StageFormatting,
			usecase.StageCompleted,
		}, f.progress.stages())
	})

	t.Run("generates a reverting deployer without initializer", func(t *testing.T) {
		f := newFixture(t)
		f.writeArtifact(t, "Counter.sol", "Counter", `{"abi": [
			{"type": "constructor", "inputs": [{"name": "start", "type": "uint256", "internalType": "uint256"}], "stateMutability": "nonpayable"}
		]}`)
		f.builder.On("Build", mock.Anything).Return(nil)
		f.formatter.On("Format", mock.Anything, mock.Anything).Return(nil)

		result, err := f.uc.Run(ctx, domain.NewGenerationRequest("src/Counter.sol", "script/custom", ""))
		require.NoError(t, err)

		assert.Equal(t, "script/custom/CounterDeployer.s.sol", result.ScriptPath)
		assert.False(t, result.Initializable)
		assert.Nil(t, result.InitializerParams)
		assert.Contains(t, f.read(t, result.ScriptPath), `revert("Counter is not initializable");`)
	})

	t.Run("named contract reverts with the source file stem", func(t *testing.T) {
		f := newFixture(t)
		f.writeArtifact(t, "Tokens.sol", "StakedToken", `{"abi": []}`)
		f.builder.On("Build", mock.Anything).Return(nil)
		f.formatter.On("Format", mock.Anything, mock.Anything).Return(nil)

		result, err := f.uc.Run(ctx, domain.NewGenerationRequest("src/Tokens.sol", "", "StakedToken"))
		require.NoError(t, err)

		assert.Equal(t, "script/deployers/StakedTokenDeployer.s.sol", result.ScriptPath)
		content := f.read(t, result.ScriptPath)
		assert.Contains(t, content, "StakedToken internal stakedToken;")
		assert.Contains(t, content, `revert("Tokens is not initializable");`)
	})

	t.Run("renames constructor parameters that collide", func(t *testing.T) {
		f := newFixture(t)
		f.writeArtifact(t, "Pool.sol", "Pool", `{"abi": [
			{"type": "constructor", "inputs": [{"name": "owner", "type": "address", "internalType": "address"}], "stateMutability": "nonpayable"},
			{"type": "function", "name": "initialize", "inputs": [{"name": "owner", "type": "address", "internalType": "address"}], "outputs": [], "stateMutability": "nonpayable"}
		]}`)
		f.builder.On("Build", mock.Anything).Return(nil)
		f.formatter.On("Format", mock.Anything, mock.Anything).Return(nil)

		result, err := f.uc.Run(ctx, domain.NewGenerationRequest("src/Pool.sol", "", ""))
		require.NoError(t, err)

		require.Len(t, result.ConstructorParams, 1)
		assert.Equal(t, "c_owner", result.ConstructorParams[0].Name)
		content := f.read(t, result.ScriptPath)
		assert.Contains(t, content, "address owner, address c_owner")
		assert.Contains(t, content, "new Pool(c_owner)")
	})

	t.Run("missing contract writes nothing", func(t *testing.T) {
		f := newFixture(t)
		f.builder.On("Build", mock.Anything).Return(nil)

		result, err := f.uc.Run(ctx, domain.NewGenerationRequest("src/Missing.sol", "", ""))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrContractNotFound))

		_, statErr := os.Stat(filepath.Join(f.root, "script"))
		assert.True(t, os.IsNotExist(statErr))
		f.formatter.AssertNotCalled(t, "Format", mock.Anything, mock.Anything)
	})

	t.Run("build failure aborts the run", func(t *testing.T) {
		f := newFixture(t)
		f.writeArtifact(t, "Vault.sol", "Vault", vaultArtifact)
		f.builder.On("Build", mock.Anything).Return(errors.New("forge build failed: exit status 1"))

		result, err := f.uc.Run(ctx, domain.NewGenerationRequest("src/Vault.sol", "", ""))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "forge build failed")

		_, statErr := os.Stat(filepath.Join(f.root, "script"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("skip build uses existing artifacts", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.SkipBuild = true
		f.writeArtifact(t, "Vault.sol", "Vault", vaultArtifact)
		f.formatter.On("Format", mock.Anything, mock.Anything).Return(nil)

		_, err := f.uc.Run(ctx, domain.NewGenerationRequest("src/Vault.sol", "", ""))
		require.NoError(t, err)

		f.builder.AssertNotCalled(t, "Build", mock.Anything)
		assert.NotContains(t, f.progress.stages(), usecase.StageBuilding)
		assert.Equal(t, []string{"Skipping forge build, using existing artifacts"}, f.progress.infos)
	})

	t.Run("format failure is not fatal", func(t *testing.T) {
		f := newFixture(t)
		f.writeArtifact(t, "Vault.sol", "Vault", vaultArtifact)
		f.builder.On("Build", mock.Anything).Return(nil)
		f.formatter.On("Format", mock.Anything, mock.Anything).Return(errors.New("forge fmt failed"))

		result, err := f.uc.Run(ctx, domain.NewGenerationRequest("src/Vault.sol", "", ""))
		require.NoError(t, err)
		require.Error(t, result.FormatErr)
		assert.Contains(t, f.read(t, result.ScriptPath), "VaultDeployer")

		require.Len(t, f.progress.warnings, 1)
		assert.Equal(t, "forge fmt failed, script/deployers/VaultDeployer.s.sol is unformatted: forge fmt failed", f.progress.warnings[0])
	})

	t.Run("regenerating overwrites with identical content", func(t *testing.T) {
		f := newFixture(t)
		f.writeArtifact(t, "Vault.sol", "Vault", vaultArtifact)
		f.builder.On("Build", mock.Anything).Return(nil)
		f.formatter.On("Format", mock.Anything, mock.Anything).Return(nil)
		req := domain.NewGenerationRequest("src/Vault.sol", "", "")

		first, err := f.uc.Run(ctx, req)
		require.NoError(t, err)
		firstContent := f.read(t, first.ScriptPath)

		second, err := f.uc.Run(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, firstContent, f.read(t, second.ScriptPath))
	})
}
