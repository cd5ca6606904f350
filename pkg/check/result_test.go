package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   Status
	}{
		{"pass", Pass("a", "ok"), StatusPass},
		{"passf", Passf("a", "%d ok", 1), StatusPass},
		{"fail", Fail("a", "bad"), StatusFail},
		{"failf", Failf("a", "%s bad", "x"), StatusFail},
		{"fatal", Fatal("a", "gone"), StatusFail},
		{"skip", Skip("a", "n/a"), StatusSkip},
		{"skipf", Skipf("a", "%d n/a", 1), StatusSkip},
		{"warn", Warn("a", "hmm"), StatusWarn},
		{"warnf", Warnf("a", "%d hmm", 2), StatusWarn},
		{"info", Info("a", "fyi"), StatusInfo},
		{"infof", Infof("a", "%d fyi", 3), StatusInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Status)
			assert.Equal(t, "a", tt.result.Name)
		})
	}
}

func TestFatalIsMarked(t *testing.T) {
	assert.True(t, Fatal("env: target", "missing").Fatal)
	assert.False(t, Fail("env: target", "missing").Fatal)
}

func TestResultCounted(t *testing.T) {
	assert.True(t, Pass("a", "").Counted())
	assert.True(t, Fail("a", "").Counted())
	assert.True(t, Skip("a", "").Counted())
	assert.False(t, Warn("a", "").Counted())
	assert.False(t, Info("a", "").Counted())
}
