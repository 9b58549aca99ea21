package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/deployer-kit/internal/domain/config"
	"github.com/trebuchet-org/deployer-kit/internal/usecase"
	"golang.org/x/term"
)

// SpinnerSink shows a spinner while long stages (forge build) run and prints
// info and error lines to stderr. The spinner only runs when interactive.
type SpinnerSink struct {
	spinner        *spinner.Spinner
	out            io.Writer
	interactive    bool
	currentStage   usecase.ExecutionStage
	stageStartTime time.Time
}

// NewSpinnerSink creates a progress sink on stderr. The spinner is disabled
// in non-interactive mode or when stderr is not a terminal.
func NewSpinnerSink(cfg *config.RuntimeConfig) *SpinnerSink {
	interactive := !cfg.NonInteractive && term.IsTerminal(int(os.Stderr.Fd()))
	return newSpinnerSink(os.Stderr, interactive)
}

func newSpinnerSink(out io.Writer, interactive bool) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		spinner:     s,
		out:         out,
		interactive: interactive,
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.currentStage {
		r.currentStage = event.Stage
		r.stageStartTime = time.Now()
	}

	if event.Spinner && r.interactive {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pauseWhile(func() {
		fmt.Fprintln(r.out, color.New(color.FgCyan).Sprint(message))
	})
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.pauseWhile(func() {
		fmt.Fprintln(r.out, color.New(color.FgYellow).Sprintf("⚠️  %s", message))
	})
}

// pauseWhile stops the spinner around a print so lines don't interleave
func (r *SpinnerSink) pauseWhile(print func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	print()

	if wasActive {
		r.spinner.Start()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
