package check

import "fmt"

// Status represents the outcome of a check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
	StatusWarn Status = "WARN"
	StatusInfo Status = "INFO"
)

// Result holds one outcome produced by a check.
// Results are values; the With* helpers return modified copies.
type Result struct {
	Name    string // e.g., "html: <head>", "security: eval"
	Status  Status // PASS, FAIL, SKIP, WARN or INFO
	Message string // one-line human-readable outcome
	Detail  string // optional supporting text
	Fatal   bool   // a failure that must abort the whole run
}

// Pass returns a passing result.
func Pass(name, msg string) Result {
	return Result{Name: name, Status: StatusPass, Message: msg}
}

// Passf returns a passing result with a formatted message.
func Passf(name, format string, args ...any) Result {
	return Pass(name, fmt.Sprintf(format, args...))
}

// Fail returns a failing result.
func Fail(name, msg string) Result {
	return Result{Name: name, Status: StatusFail, Message: msg}
}

// Failf returns a failing result with a formatted message.
func Failf(name, format string, args ...any) Result {
	return Fail(name, fmt.Sprintf(format, args...))
}

// Fatal returns a failing result that aborts the run once recorded.
func Fatal(name, msg string) Result {
	return Result{Name: name, Status: StatusFail, Message: msg, Fatal: true}
}

// Skip returns a result for a check that could not determine its outcome.
func Skip(name, msg string) Result {
	return Result{Name: name, Status: StatusSkip, Message: msg}
}

// Skipf returns a skipped result with a formatted message.
func Skipf(name, format string, args ...any) Result {
	return Skip(name, fmt.Sprintf(format, args...))
}

// Warn returns an advisory result.
func Warn(name, msg string) Result {
	return Result{Name: name, Status: StatusWarn, Message: msg}
}

// Warnf returns an advisory result with a formatted message.
func Warnf(name, format string, args ...any) Result {
	return Warn(name, fmt.Sprintf(format, args...))
}

// Info returns an informational result.
func Info(name, msg string) Result {
	return Result{Name: name, Status: StatusInfo, Message: msg}
}

// Infof returns an informational result with a formatted message.
func Infof(name, format string, args ...any) Result {
	return Info(name, fmt.Sprintf(format, args...))
}

// Counted reports whether the result takes part in the pass/fail/skip totals.
func (r Result) Counted() bool {
	switch r.Status {
	case StatusPass, StatusFail, StatusSkip:
		return true
	default:
		return false
	}
}
