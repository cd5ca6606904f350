// Package depcheck holds the dependencies suite: the external libraries the
// page is expected to load.
package depcheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/config"
	"github.com/vertti/pagecheck/pkg/version"
)

// SuiteName is the dependencies suite name.
const SuiteName = "dependencies"

// Suite returns one check per configured library.
func Suite(libs []config.Library) check.Suite {
	checks := make([]check.Checker, 0, len(libs))
	for _, lib := range libs {
		checks = append(checks, &LibraryCheck{Library: lib})
	}
	return check.Suite{Name: SuiteName, Checks: checks}
}

// LibraryCheck looks for a reference to one library.
// A missing required library fails; a missing optional one warns.
// When the library has a minimum version, pinned versions are compared
// against it in a second result.
type LibraryCheck struct {
	Library config.Library
}

// Name returns the result name.
func (c *LibraryCheck) Name() string { return "deps: " + c.Library.Name }

// Run searches the page for the library pattern.
func (c *LibraryCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}

	re, err := check.CompileRegex(c.Library.Pattern)
	if err != nil {
		return []check.Result{check.Failf(c.Name(), "invalid pattern: %v", err)}
	}
	if re == nil {
		return []check.Result{check.Skip(c.Name(), "no pattern configured")}
	}

	if !re.MatchString(content) {
		if c.Library.Required {
			return []check.Result{check.Fail(c.Name(), "not referenced (required)")}
		}
		return []check.Result{check.Warn(c.Name(), "not referenced (optional)")}
	}

	pinned := c.pinned(content)
	res := check.Pass(c.Name(), "referenced")
	if len(pinned) > 0 {
		res = res.WithDetailf("pinned: %s", strings.Join(pinned, ", "))
	}
	results := []check.Result{res}

	if c.Library.MinVersion != "" {
		results = append(results, c.versionResult(content))
	}
	return results
}

func (c *LibraryCheck) pinned(content string) []string {
	if c.Library.Package == "" {
		return nil
	}
	var out []string
	for _, v := range version.Pinned(content, c.Library.Package) {
		out = append(out, v.String())
	}
	return out
}

func (c *LibraryCheck) versionResult(content string) check.Result {
	name := c.Name() + " version"

	minimum, err := version.Parse(c.Library.MinVersion)
	if err != nil {
		return check.Warnf(name, "invalid minimum version: %v", err)
	}
	if c.Library.Package == "" {
		return check.Info(name, "no package name configured")
	}

	oldest := version.Oldest(version.Pinned(content, c.Library.Package))
	if oldest == nil {
		return check.Infof(name, "no pinned %s version found", c.Library.Package)
	}
	if !version.AtLeast(oldest, minimum) {
		return check.Warnf(name, "%s %s is older than %s", c.Library.Package, oldest, minimum)
	}
	return check.Pass(name, fmt.Sprintf("%s %s >= %s", c.Library.Package, oldest, minimum))
}
