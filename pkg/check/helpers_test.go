package check

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/pagecheck/pkg/artifact"
)

func TestWithDetailCopies(t *testing.T) {
	orig := Fail("html: <head>", "missing")
	withDetail := orig.WithDetailf("searched %d bytes", 42)

	assert.Empty(t, orig.Detail)
	assert.Equal(t, "searched 42 bytes", withDetail.Detail)
	assert.Equal(t, orig.Status, withDetail.Status)
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		count int
		want  Status
	}{
		{0, StatusPass},
		{5, StatusPass},
		{6, StatusWarn},
	}

	for _, tt := range tests {
		r := Threshold("js: console.log", tt.count, 5, "calls")
		assert.Equal(t, tt.want, r.Status, "count %d", tt.count)
	}
}

func TestCompileRegex(t *testing.T) {
	re, err := CompileRegex("")
	require.NoError(t, err)
	assert.Nil(t, re)

	re, err = CompileRegex(`a+`)
	require.NoError(t, err)
	assert.NotNil(t, re)

	_, err = CompileRegex(`(`)
	assert.Error(t, err)
}

func TestCountMatches(t *testing.T) {
	re := regexp.MustCompile(`eval\(`)
	assert.Equal(t, 2, CountMatches(re, "eval(a); x; eval(b)"))
	assert.Equal(t, 0, CountMatches(nil, "eval(a)"))
}

func TestSuiteRunsAllChecksInOrder(t *testing.T) {
	var order []string
	mk := func(id string, r Result) Checker {
		return Func{ID: id, Fn: func(context.Context, *artifact.Target) []Result {
			order = append(order, id)
			return []Result{r}
		}}
	}

	s := Suite{Name: "demo", Checks: []Checker{
		mk("first", Fail("first", "bad")),
		mk("second", Pass("second", "ok")),
		mk("third", Skip("third", "n/a")),
	}}

	results := s.Run(context.Background(), nil)

	assert.Equal(t, []string{"first", "second", "third"}, order)
	require.Len(t, results, 3)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Equal(t, StatusSkip, results[2].Status)
}

func TestFuncName(t *testing.T) {
	f := Func{ID: "security: eval"}
	assert.Equal(t, "security: eval", f.Name())
}

func TestUnreadable(t *testing.T) {
	r := Unreadable("html: <head>", errors.New("permission denied"))

	assert.Equal(t, StatusSkip, r.Status)
	assert.Equal(t, "permission denied", r.Detail)
}
