package main

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/config"
	"github.com/vertti/pagecheck/pkg/engine"
	"github.com/vertti/pagecheck/pkg/syntax"
)

var (
	verbose    bool
	htmlOnly   bool
	configFile string
	targetName string
)

// Overridden in tests so runs do not depend on a local node install.
var (
	newRunner    = func() syntax.Runner { return &syntax.RealRunner{} }
	newValidator = func() syntax.Validator { return nil }
)

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "show informational results and pass details")
	flags.BoolVar(&htmlOnly, "html-only", false, "run only the HTML structure checks")
	flags.BoolVar(&htmlOnly, "html", false, "alias for --html-only")
	_ = flags.MarkHidden("html")
	flags.StringVar(&configFile, "config", "", "path to "+config.FileName+" (default: search up from the project root)")
	flags.StringVar(&targetName, "target", "", "artifact file name relative to the root (default: index.html)")
}

func runChecks(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	logger := newLogger(cmd.ErrOrStderr(), verbose)

	path, err := config.FindFile(root, configFile)
	if err != nil {
		return &engine.FatalError{Reason: "config", Err: err}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return &engine.FatalError{Reason: "config", Err: err}
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	rc := engine.RunConfig{
		Verbose:  verbose,
		HTMLOnly: htmlOnly,
		Root:     root,
		Target:   cfg.Target,
		DocsDir:  cfg.DocsDir,
	}
	if targetName != "" {
		rc.Target = targetName
	}

	e, err := engine.New(cfg, rc, engine.Options{
		Out:       cmd.OutOrStdout(),
		FS:        &artifact.RealFileSystem{},
		Runner:    newRunner(),
		Validator: newValidator(),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tally, err := e.Run(ctx)
	e.Reporter.PrintSummary()
	if err != nil {
		return err
	}
	if engine.ExitCode(tally, nil) != 0 {
		return engine.ErrChecksFailed
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
