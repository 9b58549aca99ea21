package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/deployer-kit/internal/domain"
	"github.com/trebuchet-org/deployer-kit/internal/domain/config"
	"github.com/trebuchet-org/deployer-kit/internal/usecase"
)

// maxSuggestions caps the names offered when a contract is not found
const maxSuggestions = 3

// artifactFile is the subset of a Foundry artifact the generator reads
type artifactFile struct {
	ABI json.RawMessage `json:"abi"`
}

// Repository loads ABIs from forge's compiled artifact directory
type Repository struct {
	outRoot string
	log     *slog.Logger
}

// NewRepository creates an artifact repository rooted at the configured out dir
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		outRoot: cfg.ResolvePath(cfg.OutDir),
		log:     log.With("component", "ArtifactRepository"),
	}
}

// LoadABI reads <out>/<stem>.<ext>/<contract>.json and parses its abi field
func (r *Repository) LoadABI(ctx context.Context, req domain.GenerationRequest) (*domain.ContractABI, error) {
	path := req.ArtifactPath(r.outRoot)
	r.log.Debug("loading artifact", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ContractNotFoundError{
			ContractName: req.ResolvedContractName(),
			ArtifactPath: path,
			Suggestions:  r.suggest(filepath.Dir(path), req.ResolvedContractName()),
			Err:          err,
		}
	}

	var artifact artifactFile
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if len(artifact.ABI) == 0 || string(artifact.ABI) == "null" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingABI, path)
	}

	var entries []domain.AbiEntry
	if err := json.Unmarshal(artifact.ABI, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse abi in %s: %w", path, err)
	}

	contractABI := &domain.ContractABI{Entries: entries}
	r.checkInitializerOverloads(artifact.ABI, contractABI)

	return contractABI, nil
}

// checkInitializerOverloads warns when more than one initialize function
// exists. The first one in ABI order is used.
func (r *Repository) checkInitializerOverloads(raw json.RawMessage, contractABI *domain.ContractABI) {
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		r.log.Debug("could not parse abi for overload check", "error", err)
		return
	}

	var signatures []string
	for _, method := range parsed.Methods {
		if method.RawName == domain.InitializerName {
			signatures = append(signatures, method.Sig)
		}
	}
	if len(signatures) < 2 {
		return
	}
	sort.Strings(signatures)

	r.log.Warn("multiple initialize overloads found, using the first in ABI order",
		"overloads", strings.Join(signatures, ", "),
		"using", signature(contractABI.Initializer()))
}

// suggest ranks the contract names compiled from the same source file
func (r *Repository) suggest(dir, contractName string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			return "", false
		}
		return strings.TrimSuffix(e.Name(), ".json"), true
	})

	matches := fuzzy.Find(contractName, names)
	if len(matches) == 0 {
		// Nothing resembles the name; list what was compiled instead
		sort.Strings(names)
		return lo.Subset(names, 0, maxSuggestions)
	}

	suggestions := lo.Map(matches, func(m fuzzy.Match, _ int) string { return m.Str })
	return lo.Subset(suggestions, 0, maxSuggestions)
}

// signature renders name(type,...) from the canonical ABI types
func signature(entry *domain.AbiEntry) string {
	if entry == nil {
		return ""
	}
	types := lo.Map(entry.Inputs, func(p domain.AbiParameter, _ int) string { return p.Type })
	return fmt.Sprintf("%s(%s)", entry.Name, strings.Join(types, ","))
}

// Ensure the repository implements the interface
var _ usecase.ArtifactRepository = (*Repository)(nil)
