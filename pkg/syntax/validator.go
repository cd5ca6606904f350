// Package syntax validates JavaScript source with an optional external engine.
// The engine is a pass/fail oracle: when it is missing or does not answer in
// time the verdict is "skipped", never "failed".
package syntax

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds a single validator invocation.
const DefaultTimeout = 10 * time.Second

// Verdict is the outcome of validating one source text.
type Verdict struct {
	OK      bool   // source parsed cleanly
	Skipped bool   // validator unavailable or timed out
	Detail  string // validator message or skip reason
}

// Validator checks JavaScript source for syntax errors.
type Validator interface {
	ValidateSyntax(ctx context.Context, source string, module bool) Verdict
}

// NodeValidator runs "node --check" on a temporary copy of the source.
type NodeValidator struct {
	Command string        // executable name (default: node)
	Timeout time.Duration // per-invocation timeout (default: DefaultTimeout)
	TempDir string        // where sources are written (default: os.TempDir())
	Runner  Runner        // injected for testing
	Logger  *slog.Logger
}

// NewNodeValidator returns a validator running command through runner.
// A nil runner selects the real OS runner.
func NewNodeValidator(command string, timeout time.Duration, runner Runner, logger *slog.Logger) *NodeValidator {
	if runner == nil {
		runner = &RealRunner{}
	}
	return &NodeValidator{Command: command, Timeout: timeout, Runner: runner, Logger: logger}
}

// ValidateSyntax implements Validator.
func (v *NodeValidator) ValidateSyntax(ctx context.Context, source string, module bool) Verdict {
	command := v.Command
	if command == "" {
		command = "node"
	}

	if _, err := v.Runner.LookPath(command); err != nil {
		v.log("syntax validator unavailable", "command", command, "error", err)
		return Verdict{Skipped: true, Detail: fmt.Sprintf("%s not found in PATH", command)}
	}

	path, cleanup, err := v.writeSource(source, module)
	if err != nil {
		return Verdict{Skipped: true, Detail: fmt.Sprintf("could not stage source: %v", err)}
	}
	defer cleanup()

	timeout := v.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, stderr, err := v.Runner.RunCommandContext(ctx, command, "--check", path)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			v.log("syntax validator timed out", "timeout", timeout)
			return Verdict{Skipped: true, Detail: fmt.Sprintf("%s timed out after %s", command, timeout)}
		}
		if ctx.Err() != nil {
			return Verdict{Skipped: true, Detail: fmt.Sprintf("validation cancelled: %v", ctx.Err())}
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			v.log("syntax validator failed to run", "command", command, "error", err)
			return Verdict{Skipped: true, Detail: fmt.Sprintf("could not run %s: %v", command, err)}
		}
		detail := firstLines(strings.ReplaceAll(stderr, path, "<inline>"), 4)
		if detail == "" {
			detail = fmt.Sprintf("%s --check: %v", command, err)
		}
		return Verdict{Detail: detail}
	}
	return Verdict{OK: true}
}

func (v *NodeValidator) writeSource(source string, module bool) (string, func(), error) {
	ext := ".js"
	if module {
		ext = ".mjs"
	}
	f, err := os.CreateTemp(v.TempDir, "pagecheck-*"+ext)
	if err != nil {
		return "", nil, err
	}
	name := f.Name()
	cleanup := func() { _ = os.Remove(name) }
	if _, err := f.WriteString(source); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return filepath.Clean(name), cleanup, nil
}

func (v *NodeValidator) log(msg string, args ...any) {
	if v.Logger != nil {
		v.Logger.Debug(msg, args...)
	}
}

func firstLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// Func adapts a function to the Validator interface.
type Func func(ctx context.Context, source string, module bool) Verdict

// ValidateSyntax calls f.
func (f Func) ValidateSyntax(ctx context.Context, source string, module bool) Verdict {
	return f(ctx, source, module)
}
