// Package engine runs the check suites against a target artifact and
// derives the run's exit status.
package engine

import (
	"context"
	"io"
	"log/slog"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/output"
)

// RunConfig holds the per-invocation settings. It is read-only once built.
type RunConfig struct {
	Verbose  bool
	HTMLOnly bool
	Root     string
	Target   string
	DocsDir  string
}

// State is a step of the engine's run.
type State string

const (
	StateInit               State = "INIT"
	StateEnvironmentChecked State = "ENVIRONMENT_CHECKED"
	StateHTMLOnly           State = "HTML_ONLY_PATH"
	StateFull               State = "FULL_PATH"
	StateSummarized         State = "SUMMARIZED"
	StateTerminal           State = "TERMINAL"
)

// Engine owns the suites and the reporter for a single run.
type Engine struct {
	Config      RunConfig
	Environment check.Suite   // always runs first; a fatal result aborts
	HTML        check.Suite   // the only suite in html-only mode
	Rest        []check.Suite // remaining suites in run order after HTML
	Reporter    *output.Reporter
	FS          artifact.FileSystem
	Logger      *slog.Logger

	state State
}

// State returns the state the engine stopped in.
func (e *Engine) State() State {
	if e.state == "" {
		return StateInit
	}
	return e.state
}

// Selected returns the suites that run after the environment suite.
func (e *Engine) Selected() []check.Suite {
	if e.Config.HTMLOnly {
		return []check.Suite{e.HTML}
	}
	return append([]check.Suite{e.HTML}, e.Rest...)
}

// Run executes the selected suites and returns the final tally.
// The error is a *FatalError when the environment suite aborted the run.
func (e *Engine) Run(ctx context.Context) (output.Tally, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.state = StateInit

	target := artifact.New(e.Config.Root, e.Config.Target, e.Config.DocsDir, e.FS)

	logger.Debug("running suite", "suite", e.Environment.Name)
	e.Reporter.Section(e.Environment.Name)
	for _, c := range e.Environment.Checks {
		for _, r := range c.Run(ctx, target) {
			e.Reporter.Record(r)
			if r.Fatal {
				e.state = StateTerminal
				logger.Debug("environment check aborted the run", "check", r.Name)
				return e.Reporter.Summary(), &FatalError{Reason: r.Name + ": " + r.Message}
			}
		}
	}
	e.state = StateEnvironmentChecked

	if e.Config.HTMLOnly {
		e.state = StateHTMLOnly
	} else {
		e.state = StateFull
	}
	for _, s := range e.Selected() {
		logger.Debug("running suite", "suite", s.Name, "checks", len(s.Checks))
		e.Reporter.Section(s.Name)
		for _, r := range s.Run(ctx, target) {
			e.Reporter.Record(r)
		}
	}

	e.state = StateSummarized
	tally := e.Reporter.Summary()
	logger.Debug("run summarized", "total", tally.Total, "failed", tally.Failed)
	return tally, nil
}

// ExitCode maps a run outcome to the process exit status:
// 0 when nothing failed, 1 on any failure or a fatal abort.
func ExitCode(t output.Tally, err error) int {
	if err != nil || t.Failed > 0 {
		return 1
	}
	return 0
}
