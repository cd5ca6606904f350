// Package filecheck provides presence checks for files and directories
// beneath the project root.
package filecheck

import (
	"context"
	"fmt"
	"os"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
)

// Level decides how a missing path is reported.
type Level int

const (
	Required Level = iota // missing → FAIL
	Optional              // missing → WARN
	Fatal                 // missing → FAIL that aborts the run
)

// Check verifies that a root-relative path exists.
type Check struct {
	Label string // result name, e.g. "docs: README.md"
	Path  string // path relative to the target root ("." is the root itself)
	Dir   bool   // expect a directory
	Level Level
}

// Name returns the result name.
func (c *Check) Name() string { return c.Label }

// Run executes the presence check.
func (c *Check) Run(_ context.Context, t *artifact.Target) []check.Result {
	info, err := t.Stat(c.Path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return []check.Result{c.missing("not found").WithDetail(t.Resolve(c.Path))}
		case os.IsPermission(err):
			return []check.Result{c.undetermined("permission denied")}
		default:
			return []check.Result{c.undetermined(fmt.Sprintf("stat failed: %v", err))}
		}
	}

	if c.Dir && !info.IsDir() {
		return []check.Result{c.missing("expected directory, got file")}
	}
	if !c.Dir && info.IsDir() {
		return []check.Result{c.missing("expected file, got directory")}
	}

	if c.Dir {
		return []check.Result{check.Pass(c.Label, "directory found")}
	}
	return []check.Result{check.Passf(c.Label, "found (%d bytes)", info.Size())}
}

// undetermined reports a path whose presence could not be established.
// Only a fatal check may still abort the run.
func (c *Check) undetermined(msg string) check.Result {
	if c.Level == Fatal {
		return check.Fatal(c.Label, msg)
	}
	return check.Skip(c.Label, msg)
}

func (c *Check) missing(msg string) check.Result {
	switch c.Level {
	case Optional:
		return check.Warn(c.Label, msg+" (optional)")
	case Fatal:
		return check.Fatal(c.Label, msg)
	default:
		return check.Fail(c.Label, msg)
	}
}
