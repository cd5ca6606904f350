package engine

import (
	"io"
	"log/slog"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/config"
	"github.com/vertti/pagecheck/pkg/depcheck"
	"github.com/vertti/pagecheck/pkg/doccheck"
	"github.com/vertti/pagecheck/pkg/envcheck"
	"github.com/vertti/pagecheck/pkg/htmlcheck"
	"github.com/vertti/pagecheck/pkg/jscheck"
	"github.com/vertti/pagecheck/pkg/output"
	"github.com/vertti/pagecheck/pkg/seccheck"
	"github.com/vertti/pagecheck/pkg/sizecheck"
	"github.com/vertti/pagecheck/pkg/syntax"
)

// Options are the collaborators injected into a new Engine.
// Zero values select the real implementations.
type Options struct {
	Out       io.Writer
	FS        artifact.FileSystem
	Runner    syntax.Runner
	Validator syntax.Validator
	Logger    *slog.Logger
}

// New builds an Engine with the full rule catalog configured from cfg.
func New(cfg *config.Config, rc RunConfig, opts Options) (*Engine, error) {
	good, acceptable, err := cfg.SizeLimits()
	if err != nil {
		return nil, &FatalError{Reason: "invalid config", Err: err}
	}

	runner := opts.Runner
	if runner == nil {
		runner = &syntax.RealRunner{}
	}
	validator := opts.Validator
	if validator == nil {
		validator = syntax.NewNodeValidator(cfg.Syntax.Command, cfg.Syntax.Timeout, runner, opts.Logger)
	}

	return &Engine{
		Config:      rc,
		Environment: envcheck.Suite(rc.Target, rc.DocsDir, cfg.Syntax.Command, runner),
		HTML:        htmlcheck.Suite(),
		Rest: []check.Suite{
			jscheck.Suite(validator, cfg.Thresholds.ConsoleLog),
			depcheck.Suite(cfg.Libraries),
			doccheck.Suite(cfg.Docs),
			sizecheck.Suite(good, acceptable),
			seccheck.Suite(cfg.Thresholds.InnerHTML),
		},
		Reporter: output.NewReporter(opts.Out, rc.Verbose),
		FS:       opts.FS,
		Logger:   opts.Logger,
	}, nil
}
