package envcheck

import (
	"context"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/syntax"
)

// ToolCheck reports whether the optional syntax validator is installed.
// It is informational only: a missing tool later turns into SKIP results.
type ToolCheck struct {
	Command string
	Runner  syntax.Runner
}

// Name returns the result name.
func (c *ToolCheck) Name() string { return "env: syntax validator" }

// Run looks the command up in PATH.
func (c *ToolCheck) Run(context.Context, *artifact.Target) []check.Result {
	path, err := c.Runner.LookPath(c.Command)
	if err != nil {
		return []check.Result{check.Infof(c.Name(), "%s not installed; syntax validation will be skipped", c.Command)}
	}
	return []check.Result{check.Infof(c.Name(), "%s (%s)", c.Command, path)}
}
