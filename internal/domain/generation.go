package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// DefaultOutputDir is where deployers are written when no --output is given
	DefaultOutputDir = "script/deployers"

	// DefaultSourceExt is used for the artifact directory when the source has no extension
	DefaultSourceExt = "sol"

	// DeployerFileSuffix is appended to the contract name to form the output file name
	DeployerFileSuffix = "Deployer.s.sol"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// GenerationRequest is the normalized command line input for one generator run
type GenerationRequest struct {
	SourcePath   string
	OutputDir    string
	ContractName string
}

// NewGenerationRequest fills in the output directory default.
func NewGenerationRequest(sourcePath, outputDir, contractName string) GenerationRequest {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return GenerationRequest{
		SourcePath:   sourcePath,
		OutputDir:    outputDir,
		ContractName: contractName,
	}
}

// fileName returns the final path segment of the source path
func (r GenerationRequest) fileName() string {
	p := filepath.ToSlash(r.SourcePath)
	if i := strings.LastIndex(p, "/"); i != -1 {
		return p[i+1:]
	}
	return p
}

// Stem is the source file name with its last extension removed.
func (r GenerationRequest) Stem() string {
	name := r.fileName()
	if i := strings.LastIndex(name, "."); i != -1 {
		return name[:i]
	}
	return name
}

// SourceExt is the source file extension without the dot.
func (r GenerationRequest) SourceExt() string {
	name := r.fileName()
	if i := strings.LastIndex(name, "."); i != -1 {
		return name[i+1:]
	}
	return DefaultSourceExt
}

// ResolvedContractName is the explicit --name value, or the stem.
func (r GenerationRequest) ResolvedContractName() string {
	if r.ContractName != "" {
		return r.ContractName
	}
	return r.Stem()
}

// ArtifactPath follows forge's <out>/<File>.sol/<Contract>.json convention.
func (r GenerationRequest) ArtifactPath(outRoot string) string {
	return filepath.Join(outRoot, r.Stem()+"."+r.SourceExt(), r.ResolvedContractName()+".json")
}

// OutputPath depends only on the output directory and the contract name.
func (r GenerationRequest) OutputPath() string {
	return filepath.Join(r.OutputDir, r.ResolvedContractName()+DeployerFileSuffix)
}

// InstanceName turns a contract name into a lowerCamel Solidity identifier.
func InstanceName(contractName string) string {
	stripped := nonAlphanumeric.ReplaceAllString(contractName, "")
	if stripped == "" {
		return ""
	}
	return strings.ToLower(stripped[:1]) + stripped[1:]
}

// DeployerTemplate holds the named holes of the deployer template
type DeployerTemplate struct {
	ContractName      string
	InstanceName      string
	SourcePath        string
	SourceStem        string // names the contract in the non-initializable revert
	ConstructorParams []FormattedParameter
	InitializerParams []FormattedParameter
	Initializable     bool
}

// NewDeployerTemplate formats the resolved arguments for a request.
func NewDeployerTemplate(req GenerationRequest, args ResolvedArguments) *DeployerTemplate {
	contractName := req.ResolvedContractName()
	tmpl := &DeployerTemplate{
		ContractName:      contractName,
		InstanceName:      InstanceName(contractName),
		SourcePath:        req.SourcePath,
		SourceStem:        req.Stem(),
		ConstructorParams: FormatParameters(args.Constructor),
		Initializable:     args.HasInitializer,
	}
	if args.HasInitializer {
		tmpl.InitializerParams = FormatParameters(args.Initializer)
	}
	return tmpl
}
