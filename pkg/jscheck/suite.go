// Package jscheck holds the javascript suite for the page's inline scripts.
package jscheck

import (
	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/syntax"
)

// SuiteName is the javascript suite name.
const SuiteName = "javascript"

// Suite returns the javascript checks in run order.
func Suite(validator syntax.Validator, maxConsoleLog int) check.Suite {
	return check.Suite{
		Name: SuiteName,
		Checks: []check.Checker{
			&ScriptsCheck{},
			&SyntaxCheck{Validator: validator},
			&ConsoleLogCheck{Max: maxConsoleLog},
			&TodoCheck{},
		},
	}
}
