package check

import (
	"context"

	"github.com/vertti/pagecheck/pkg/artifact"
)

// Checker is implemented by every rule in the catalog.
// A check inspects the target artifact and returns one or more Results;
// it must never modify the target. A check that cannot decide its outcome
// returns a SKIP result rather than a FAIL.
//
// Implementations live in one package per suite:
//   - envcheck: root, artifact and docs directory presence
//   - htmlcheck: required tags, charset, tag parity
//   - jscheck: inline scripts, syntax, debug logging, TODO markers
//   - depcheck: required and optional library references
//   - doccheck: documentation files and decision records
//   - sizecheck: artifact size tiers
//   - seccheck: dynamic evaluation, DOM injection, insecure links
type Checker interface {
	Name() string
	Run(ctx context.Context, t *artifact.Target) []Result
}

// Func adapts a plain function to the Checker interface.
type Func struct {
	ID string
	Fn func(ctx context.Context, t *artifact.Target) []Result
}

// Name returns the check identifier.
func (f Func) Name() string { return f.ID }

// Run calls the wrapped function.
func (f Func) Run(ctx context.Context, t *artifact.Target) []Result {
	return f.Fn(ctx, t)
}

// Suite is a named, ordered group of checks.
type Suite struct {
	Name   string
	Checks []Checker
}

// Run executes every check in order and concatenates their results.
// It never short-circuits on failures.
func (s Suite) Run(ctx context.Context, t *artifact.Target) []Result {
	var results []Result
	for _, c := range s.Checks {
		results = append(results, c.Run(ctx, t)...)
	}
	return results
}
