package template

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/trebuchet-org/deployer-kit/internal/domain"
	"github.com/trebuchet-org/deployer-kit/internal/usecase"
)

//go:embed templates/deployer.s.sol.tmpl
var deployerTemplateSource string

var deployerFuncs = template.FuncMap{
	// decls renders ", a, b" so it can follow a fixed leading parameter
	"decls": func(params []domain.FormattedParameter) string {
		if len(params) == 0 {
			return ""
		}
		return ", " + declarations(params)
	},
	"declList": declarations,
	"names": func(params []domain.FormattedParameter) string {
		return strings.Join(lo.Map(params, func(p domain.FormattedParameter, _ int) string { return p.Name }), ", ")
	},
}

var deployerTemplate = template.Must(
	template.New("deployer").Funcs(deployerFuncs).Option("missingkey=error").Parse(deployerTemplateSource),
)

func declarations(params []domain.FormattedParameter) string {
	return strings.Join(lo.Map(params, func(p domain.FormattedParameter, _ int) string { return p.Declaration }), ", ")
}

// DeployerGeneratorAdapter renders deployer scripts from the embedded template
type DeployerGeneratorAdapter struct{}

// NewDeployerGeneratorAdapter creates a new deployer generator adapter
func NewDeployerGeneratorAdapter() *DeployerGeneratorAdapter {
	return &DeployerGeneratorAdapter{}
}

// Generate fills the deployer template
func (g *DeployerGeneratorAdapter) Generate(ctx context.Context, tmpl *domain.DeployerTemplate) (string, error) {
	if tmpl == nil {
		return "", fmt.Errorf("deployer template data is required")
	}

	var buf bytes.Buffer
	if err := deployerTemplate.Execute(&buf, tmpl); err != nil {
		return "", fmt.Errorf("failed to execute deployer template: %w", err)
	}
	return buf.String(), nil
}

// Ensure the adapter implements the interface
var _ usecase.DeployerGenerator = (*DeployerGeneratorAdapter)(nil)
