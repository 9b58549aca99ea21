package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/deployer-kit/internal/domain"
	"github.com/trebuchet-org/deployer-kit/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	constructorSection = "constructor"
	initializerSection = "initializer"
)

var (
	pathStyle    = color.New(color.FgCyan, color.Bold)
	sectionStyle = color.New(color.Bold, color.FgHiWhite)
	faintStyle   = color.New(color.Faint)
)

// GenerateRenderer renders generate command results. Paths are shown
// relative to workDir.
type GenerateRenderer struct {
	out     io.Writer
	workDir string
}

// NewGenerateRenderer creates a new generate renderer
func NewGenerateRenderer(out io.Writer, workDir string) Renderer[*usecase.GenerateDeployerResult] {
	return &GenerateRenderer{out: out, workDir: workDir}
}

func (r *GenerateRenderer) Render(result *usecase.GenerateDeployerResult) error {
	line := "generated " + pathStyle.Sprint(r.displayPath(result))
	if result.FormatErr != nil {
		line += faintStyle.Sprint(" (unformatted)")
	}
	fmt.Fprintln(r.out, line)

	if table := r.parameterTable(result); table != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, table)
	}

	if !result.Initializable {
		fmt.Fprintln(r.out, faintStyle.Sprintf("%s has no initialize function; the proxy deploy will revert", result.ContractName))
	}
	return nil
}

// displayPath is the written script relative to the working directory, or
// absolute when no relative path exists
func (r *GenerateRenderer) displayPath(result *usecase.GenerateDeployerResult) string {
	if result.AbsolutePath == "" {
		return result.ScriptPath
	}
	if r.workDir == "" {
		return result.AbsolutePath
	}
	rel, err := filepath.Rel(r.workDir, result.AbsolutePath)
	if err != nil {
		return result.AbsolutePath
	}
	return rel
}

// parameterTable lists every argument the deployer takes, grouped by where it is passed
func (r *GenerateRenderer) parameterTable(result *usecase.GenerateDeployerResult) string {
	if len(result.ConstructorParams) == 0 && len(result.InitializerParams) == 0 {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	appendSection(t, initializerSection, result.InitializerParams)
	appendSection(t, constructorSection, result.ConstructorParams)

	return t.Render()
}

func appendSection(t table.Writer, section string, params []domain.FormattedParameter) {
	title := cases.Title(language.English).String(section)
	for i, p := range params {
		label := ""
		if i == 0 {
			label = sectionStyle.Sprint(title)
		}
		t.AppendRow(table.Row{label, p.Name, p.Declaration})
	}
}
