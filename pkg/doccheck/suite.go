// Package doccheck holds the documentation suite: the files and directories
// expected next to the artifact.
package doccheck

import (
	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/config"
	"github.com/vertti/pagecheck/pkg/filecheck"
)

// SuiteName is the documentation suite name.
const SuiteName = "documentation"

// Suite returns the documentation checks in run order: mandatory files,
// optional files, decision records, README title, package metadata.
func Suite(docs config.Documentation) check.Suite {
	var checks []check.Checker
	for _, p := range docs.Required {
		checks = append(checks, &filecheck.Check{Label: "docs: " + p, Path: p, Level: filecheck.Required})
	}
	for _, p := range docs.Optional {
		checks = append(checks, &filecheck.Check{Label: "docs: " + p, Path: p, Level: filecheck.Optional})
	}
	if docs.Decisions != "" {
		checks = append(checks, &DecisionsCheck{Dir: docs.Decisions})
	}
	checks = append(checks, &ReadmeTitleCheck{Path: "README.md"})
	if docs.Package != "" {
		checks = append(checks, &PackageCheck{Path: docs.Package})
	}
	return check.Suite{Name: SuiteName, Checks: checks}
}
