package engine

import (
	"errors"
	"fmt"
)

// ErrChecksFailed is returned when at least one check failed.
var ErrChecksFailed = errors.New("checks failed")

// FatalError aborts a run before the check suites complete: a bad config,
// a missing root, or a missing artifact.
type FatalError struct {
	Reason string
	Err    error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *FatalError) Unwrap() error { return e.Err }

// IsFatal reports whether err is, or wraps, a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
