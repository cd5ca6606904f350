// Package htmlcheck holds the html-structure suite. The checks are textual
// heuristics over the page source, not a parse of the document.
package htmlcheck

import "github.com/vertti/pagecheck/pkg/check"

// SuiteName is the html-structure suite name.
const SuiteName = "html-structure"

// Suite returns the html-structure checks in run order.
func Suite() check.Suite {
	return check.Suite{
		Name: SuiteName,
		Checks: []check.Checker{
			&TagCheck{Tags: RequiredTags},
			&CharsetCheck{},
			&ParityCheck{Tag: "div"},
		},
	}
}
