// Package envcheck holds the environment suite: the project root, the
// artifact and the docs directory must be present before anything else runs.
package envcheck

import (
	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/filecheck"
	"github.com/vertti/pagecheck/pkg/syntax"
)

// SuiteName is the environment suite name.
const SuiteName = "environment"

// Suite returns the environment checks in run order.
// A missing root or artifact produces a fatal result.
func Suite(target, docsDir, validator string, runner syntax.Runner) check.Suite {
	return check.Suite{
		Name: SuiteName,
		Checks: []check.Checker{
			&filecheck.Check{Label: "env: project root", Path: ".", Dir: true, Level: filecheck.Fatal},
			&filecheck.Check{Label: "env: " + target, Path: target, Level: filecheck.Fatal},
			&filecheck.Check{Label: "env: " + docsDir + "/", Path: docsDir, Dir: true, Level: filecheck.Required},
			&ToolCheck{Command: validator, Runner: runner},
		},
	}
}
