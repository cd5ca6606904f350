package jscheck

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/syntax"
)

// ScriptsCheck reports how many inline script blocks the page carries.
type ScriptsCheck struct{}

// Name returns the result name.
func (c *ScriptsCheck) Name() string { return "js: inline scripts" }

// Run extracts the script blocks.
func (c *ScriptsCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}

	scripts := Extract(content)
	if len(scripts) == 0 {
		return []check.Result{check.Warn(c.Name(), "no inline script blocks found")}
	}

	size := 0
	lines := make([]string, 0, len(scripts))
	for _, s := range scripts {
		size += len(s.Source)
		kind := "classic"
		switch {
		case s.JSX:
			kind = "jsx"
		case s.Module:
			kind = "module"
		}
		lines = append(lines, fmt.Sprintf("block %d: line %d, %d bytes, %s", s.Index, s.Line, len(s.Source), kind))
	}
	return []check.Result{
		check.Passf(c.Name(), "%d block(s), %d bytes", len(scripts), size).
			WithDetail(strings.Join(lines, "\n")),
	}
}

// SyntaxCheck runs every inline block through the syntax validator.
// Any syntax error fails the check; otherwise a block the validator could
// not judge makes the whole check a SKIP. JSX blocks are never sent to the
// validator and count as not validated.
type SyntaxCheck struct {
	Validator syntax.Validator
}

// Name returns the result name.
func (c *SyntaxCheck) Name() string { return "js: syntax" }

// Run validates the blocks in order.
func (c *SyntaxCheck) Run(ctx context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}

	scripts := Extract(content)
	if len(scripts) == 0 {
		return []check.Result{check.Skip(c.Name(), "no inline JavaScript to validate")}
	}

	var failures, skips []string
	jsx := 0
	for _, s := range scripts {
		if s.JSX {
			jsx++
			skips = append(skips, fmt.Sprintf("block %d: JSX not validated", s.Index))
			continue
		}
		v := c.Validator.ValidateSyntax(ctx, s.Source, s.Module)
		switch {
		case v.Skipped:
			skips = append(skips, fmt.Sprintf("block %d: %s", s.Index, v.Detail))
		case !v.OK:
			failures = append(failures, fmt.Sprintf("block %d (line %d): %s", s.Index, s.Line, v.Detail))
		}
	}

	switch {
	case len(failures) > 0:
		return []check.Result{check.Failf(c.Name(), "syntax errors in %d of %d block(s)", len(failures), len(scripts)).
			WithDetail(strings.Join(failures, "\n"))}
	case jsx == len(scripts):
		return []check.Result{check.Skipf(c.Name(), "JSX not validated (%d block(s))", jsx).
			WithDetail(strings.Join(skips, "\n"))}
	case len(skips) == len(scripts):
		return []check.Result{check.Skip(c.Name(), "validator unavailable").
			WithDetail(strings.Join(skips, "\n"))}
	case len(skips) > 0:
		return []check.Result{check.Skipf(c.Name(), "%d of %d block(s) could not be validated", len(skips), len(scripts)).
			WithDetail(strings.Join(skips, "\n"))}
	default:
		return []check.Result{check.Passf(c.Name(), "%d block(s) valid", len(scripts))}
	}
}

var consoleLog = regexp.MustCompile(`\bconsole\.log\s*\(`)

// ConsoleLogCheck warns when debug logging calls exceed Max.
type ConsoleLogCheck struct {
	Max int
}

// Name returns the result name.
func (c *ConsoleLogCheck) Name() string { return "js: console.log" }

// Run counts console.log( calls in the whole page.
func (c *ConsoleLogCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}
	n := check.CountMatches(consoleLog, content)
	return []check.Result{check.Threshold(c.Name(), n, c.Max, "console.log call(s)")}
}

var todoMarker = regexp.MustCompile(`\b(TODO|FIXME)\b`)

// TodoCheck counts TODO and FIXME markers. It never fails.
type TodoCheck struct{}

// Name returns the result name.
func (c *TodoCheck) Name() string { return "js: TODO markers" }

// Run counts the markers.
func (c *TodoCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}
	return []check.Result{check.Infof(c.Name(), "%d marker(s)", check.CountMatches(todoMarker, content))}
}
