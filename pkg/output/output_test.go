package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vertti/pagecheck/pkg/check"
)

func newTestReporter(verbose bool) (*Reporter, *bytes.Buffer) {
	disableColor()
	buf := &bytes.Buffer{}
	return NewReporter(buf, verbose), buf
}

func TestRecordTally(t *testing.T) {
	r, _ := newTestReporter(false)

	for _, res := range []check.Result{
		check.Pass("a", ""),
		check.Pass("b", ""),
		check.Fail("c", ""),
		check.Skip("d", ""),
		check.Warn("e", ""),
		check.Warn("f", ""),
		check.Info("g", ""),
	} {
		r.Record(res)
	}

	got := r.Summary()
	assert.Equal(t, Tally{Total: 4, Passed: 2, Failed: 1, Skipped: 1, Warnings: 2}, got)
	assert.Equal(t, got.Total, got.Passed+got.Failed+got.Skipped)
}

func TestSummaryIsPure(t *testing.T) {
	r, _ := newTestReporter(false)
	r.Record(check.Pass("a", ""))

	assert.Equal(t, r.Summary(), r.Summary())
}

func TestRenderLine(t *testing.T) {
	r, buf := newTestReporter(false)

	r.Render(check.Fail("html: <head>", "tag not found"))

	assert.Equal(t, "[FAIL] html: <head>"+strings.Repeat(" ", nameWidth-len("html: <head>"))+"tag not found\n", buf.String())
}

func TestRenderInfoOnlyWhenVerbose(t *testing.T) {
	quiet, quietBuf := newTestReporter(false)
	quiet.Render(check.Info("js: todo", "3 markers"))
	assert.Empty(t, quietBuf.String())

	loud, loudBuf := newTestReporter(true)
	loud.Render(check.Info("js: todo", "3 markers"))
	assert.Contains(t, loudBuf.String(), "[INFO] js: todo")
}

func TestRenderDetails(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		result   check.Result
		wantShow bool
	}{
		{"fail detail always", false, check.Fail("x", "bad").WithDetail("why"), true},
		{"warn detail always", false, check.Warn("x", "hmm").WithDetail("why"), true},
		{"skip detail always", false, check.Skip("x", "n/a").WithDetail("why"), true},
		{"pass detail hidden", false, check.Pass("x", "ok").WithDetail("why"), false},
		{"pass detail verbose", true, check.Pass("x", "ok").WithDetail("why"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newTestReporter(tt.verbose)
			r.Render(tt.result)
			assert.Equal(t, tt.wantShow, strings.Contains(buf.String(), "why"))
		})
	}
}

func TestRenderDetailIndentation(t *testing.T) {
	r, buf := newTestReporter(false)
	r.Render(check.Fail("x", "bad").WithDetail("line one\nline two"))

	// "[FAIL] " is 7 chars
	assert.Contains(t, buf.String(), "\n       line one\n       line two\n")
}

func TestRecordPrints(t *testing.T) {
	r, buf := newTestReporter(false)
	r.Section("security")
	r.Record(check.Warn("security: http", "2 insecure links"))

	out := buf.String()
	assert.Contains(t, out, "== security ==")
	assert.Contains(t, out, "[WARN] security: http")
}

func TestPrintSummary(t *testing.T) {
	passing, passBuf := newTestReporter(false)
	passing.Record(check.Pass("a", ""))
	passing.Record(check.Warn("b", ""))
	passing.PrintSummary()
	assert.Contains(t, passBuf.String(), "ALL CHECKS PASSED")
	assert.Contains(t, passBuf.String(), "Total: 1  Passed: 1  Failed: 0  Skipped: 0  Warnings: 1")

	failing, failBuf := newTestReporter(false)
	failing.Record(check.Fail("a", ""))
	failing.PrintSummary()
	assert.Contains(t, failBuf.String(), "CHECKS FAILED")
}

func TestPadNameLongName(t *testing.T) {
	long := strings.Repeat("n", nameWidth+3)
	assert.Equal(t, long+" ", padName(long))
}
