package doccheck

import (
	"context"
	"strings"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
)

// DecisionsCheck counts decision records. It passes whenever the directory
// exists, even when empty; a missing directory is advisory.
type DecisionsCheck struct {
	Dir string
}

// Name returns the result name.
func (c *DecisionsCheck) Name() string { return "docs: " + c.Dir }

// Run lists the directory.
func (c *DecisionsCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	entries, err := t.ReadDir(c.Dir)
	if err != nil {
		if artifact.IsNotExist(err) {
			return []check.Result{check.Warn(c.Name(), "not found (optional)")}
		}
		return []check.Result{check.Warnf(c.Name(), "unreadable: %v", err)}
	}

	n := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		n++
	}
	return []check.Result{check.Passf(c.Name(), "%d decision record(s)", n)}
}
