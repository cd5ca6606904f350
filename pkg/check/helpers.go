package check

import (
	"fmt"
	"regexp"
)

// WithDetail returns a copy of the result carrying the given detail.
func (r Result) WithDetail(detail string) Result {
	r.Detail = detail
	return r
}

// WithDetailf returns a copy of the result carrying a formatted detail.
func (r Result) WithDetailf(format string, args ...any) Result {
	return r.WithDetail(fmt.Sprintf(format, args...))
}

// Threshold returns PASS when count <= limit and WARN when count > limit.
// A count equal to the limit passes.
func Threshold(name string, count, limit int, what string) Result {
	if count > limit {
		return Warnf(name, "%d %s (more than %d)", count, what, limit)
	}
	return Passf(name, "%d %s", count, what)
}

// CompileRegex compiles a regex pattern if non-empty, returning nil if pattern is empty.
func CompileRegex(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(pattern)
}

// CountMatches returns the number of non-overlapping matches of re in content.
func CountMatches(re *regexp.Regexp, content string) int {
	if re == nil {
		return 0
	}
	return len(re.FindAllStringIndex(content, -1))
}

// Unreadable is the result for a check whose input could not be read.
// The outcome is undetermined, so it is a SKIP rather than a FAIL.
func Unreadable(name string, err error) Result {
	return Skip(name, "artifact unreadable").WithDetail(err.Error())
}
