// Package seccheck holds the security suite: textual scans for common
// client-side security smells.
package seccheck

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
)

// SuiteName is the security suite name.
const SuiteName = "security"

// maxListed caps the offending URLs listed in a detail.
const maxListed = 5

// Suite returns the security checks in run order.
func Suite(maxInnerHTML int) check.Suite {
	return check.Suite{
		Name: SuiteName,
		Checks: []check.Checker{
			&EvalCheck{},
			&InnerHTMLCheck{Max: maxInnerHTML},
			&InsecureLinkCheck{},
		},
	}
}

var evalCall = regexp.MustCompile(`\beval\s*\(`)

// EvalCheck fails when eval( appears anywhere in the page.
type EvalCheck struct{}

// Name returns the result name.
func (c *EvalCheck) Name() string { return "security: eval" }

// Run scans for eval calls.
func (c *EvalCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}

	lines := matchLines(evalCall, content)
	if len(lines) == 0 {
		return []check.Result{check.Pass(c.Name(), "no eval() calls")}
	}
	return []check.Result{check.Failf(c.Name(), "eval() used %d time(s)", len(lines)).
		WithDetailf("line(s) %s", joinInts(lines))}
}

var innerHTML = regexp.MustCompile(`\binnerHTML\b`)

// InnerHTMLCheck warns when innerHTML usage exceeds Max.
type InnerHTMLCheck struct {
	Max int
}

// Name returns the result name.
func (c *InnerHTMLCheck) Name() string { return "security: innerHTML" }

// Run counts innerHTML references.
func (c *InnerHTMLCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}
	n := check.CountMatches(innerHTML, content)
	return []check.Result{check.Threshold(c.Name(), n, c.Max, "innerHTML use(s)")}
}

var (
	insecureRef = regexp.MustCompile(`(?i)\b(?:src|href|action)\s*=\s*["']?(http://[^"'\s>]+)`)
	localHost   = regexp.MustCompile(`(?i)^http://(localhost|127\.0\.0\.1|\[::1\])([:/]|$)`)
)

// InsecureLinkCheck warns about external resources loaded over plain HTTP.
type InsecureLinkCheck struct{}

// Name returns the result name.
func (c *InsecureLinkCheck) Name() string { return "security: http links" }

// Run lists src/href/action attributes pointing at http:// URLs.
func (c *InsecureLinkCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}

	var urls []string
	for _, m := range insecureRef.FindAllStringSubmatch(content, -1) {
		if localHost.MatchString(m[1]) {
			continue
		}
		urls = append(urls, m[1])
	}

	if len(urls) == 0 {
		return []check.Result{check.Pass(c.Name(), "all external references use HTTPS")}
	}

	listed := urls
	if len(listed) > maxListed {
		listed = append(listed[:maxListed:maxListed], fmt.Sprintf("... and %d more", len(urls)-maxListed))
	}
	return []check.Result{check.Warnf(c.Name(), "%d insecure http:// reference(s)", len(urls)).
		WithDetail(strings.Join(listed, "\n"))}
}

// matchLines returns the 1-based line of every match.
func matchLines(re *regexp.Regexp, content string) []int {
	var lines []int
	for _, loc := range re.FindAllStringIndex(content, -1) {
		lines = append(lines, strings.Count(content[:loc[0]], "\n")+1)
	}
	return lines
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
