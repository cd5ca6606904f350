package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/pagecheck/pkg/engine"
	"github.com/vertti/pagecheck/pkg/syntax"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <script src="https://unpkg.com/react@18.2.0/umd/react.production.min.js"></script>
  <script src="https://unpkg.com/react-dom@18.2.0/umd/react-dom.production.min.js"></script>
  <script src="https://cdn.tailwindcss.com"></script>
</head>
<body>
  <div id="app"></div>
  <script>
    // TODO: wire the router
    document.getElementById("app").textContent = "ready";
  </script>
</body>
</html>
`

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	rootCmd.SilenceUsage = false
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// withoutNode swaps in a validator that accepts every block and a runner
// that reports node as missing.
func withoutNode(t *testing.T) {
	t.Helper()
	origRunner, origValidator := newRunner, newValidator
	newRunner = func() syntax.Runner {
		return &syntax.MockRunner{
			LookPathFunc: func(string) (string, error) { return "", errors.New("not found") },
		}
	}
	newValidator = func() syntax.Validator {
		return syntax.Func(func(context.Context, string, bool) syntax.Verdict {
			return syntax.Verdict{OK: true}
		})
	}
	t.Cleanup(func() { newRunner, newValidator = origRunner, origValidator })
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func fullProject(html string) map[string]string {
	return map[string]string{
		"index.html":                   html,
		"README.md":                    "# Ready\n\nA demo page.\n",
		"CHANGELOG.md":                 "# Changelog\n",
		"LICENSE":                      "MIT\n",
		"package.json":                 `{"name": "ready", "version": "0.3.1"}`,
		"docs/ARCHITECTURE.md":         "# Architecture\n",
		"docs/decisions/0001-react.md": "# Use React\n",
	}
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "pagecheck")
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "--html-only")
	assert.NotContains(t, output, "--html ", "alias is hidden")
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"too many roots", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(tt.args...)
			require.Error(t, err)
			assert.Contains(t, output, "Usage:")
			assert.NotContains(t, output, "== environment ==")
		})
	}
}

func TestPassingProject(t *testing.T) {
	withoutNode(t)
	root := writeProject(t, fullProject(page))

	output, err := executeCommand(root)

	require.NoError(t, err, output)
	assert.Contains(t, output, "ALL CHECKS PASSED")
	assert.Contains(t, output, "Failed: 0")
	assert.Contains(t, output, "== security ==")
	assert.NotContains(t, output, "[INFO]")
}

func TestVerboseShowsInfo(t *testing.T) {
	withoutNode(t)
	root := writeProject(t, fullProject(page))

	for _, flag := range []string{"--verbose", "-v"} {
		output, err := executeCommand(flag, root)
		require.NoError(t, err)
		assert.Contains(t, output, "[INFO]")
		assert.Contains(t, output, "js: TODO markers")
	}
}

func TestHTMLOnly(t *testing.T) {
	withoutNode(t)
	// Documentation failures are out of scope in html-only mode.
	root := writeProject(t, map[string]string{"index.html": page, "docs/.keep": ""})

	for _, flag := range []string{"--html-only", "--html"} {
		t.Run(flag, func(t *testing.T) {
			output, err := executeCommand(flag, root)
			require.NoError(t, err, output)
			assert.Contains(t, output, "== html-structure ==")
			assert.NotContains(t, output, "== javascript ==")
			assert.NotContains(t, output, "== documentation ==")
		})
	}
}

func TestHTMLOnlyMissingHead(t *testing.T) {
	withoutNode(t)
	broken := strings.NewReplacer("<head>", "", "</head>", "").Replace(page)
	root := writeProject(t, map[string]string{"index.html": broken, "docs/.keep": ""})

	output, err := executeCommand("--html-only", root)

	require.ErrorIs(t, err, engine.ErrChecksFailed)
	assert.Contains(t, output, "CHECKS FAILED")
	assert.Contains(t, output, "Failed: 1")
}

func TestMissingTarget(t *testing.T) {
	withoutNode(t)
	root := writeProject(t, map[string]string{"README.md": "# Nothing here\n"})

	output, err := executeCommand(root)

	require.Error(t, err)
	assert.True(t, engine.IsFatal(err))
	assert.Contains(t, output, "== environment ==")
	assert.NotContains(t, output, "== html-structure ==")
	assert.Contains(t, output, "CHECKS FAILED")
}

func TestTargetFlag(t *testing.T) {
	withoutNode(t)
	files := fullProject(page)
	files["app.html"] = files["index.html"]
	delete(files, "index.html")
	root := writeProject(t, files)

	_, err := executeCommand(root)
	require.Error(t, err)

	output, err := executeCommand("--target", "app.html", root)
	require.NoError(t, err, output)
	assert.Contains(t, output, "env: app.html")
}

func TestFailingProject(t *testing.T) {
	withoutNode(t)
	root := writeProject(t, fullProject(strings.Replace(page, `"ready";`, `eval("ready");`, 1)))

	output, err := executeCommand(root)

	require.ErrorIs(t, err, engine.ErrChecksFailed)
	assert.Contains(t, output, "security: eval")
	assert.Contains(t, output, "Failed: 1")
}

func TestConfigFile(t *testing.T) {
	withoutNode(t)
	noisy := strings.Replace(page, `"ready";`, `"ready";`+strings.Repeat("\nconsole.log(1);", 8), 1)

	t.Run("defaults warn", func(t *testing.T) {
		root := writeProject(t, fullProject(noisy))
		output, err := executeCommand(root)
		require.NoError(t, err)
		assert.Contains(t, output, "8 console.log call(s) (more than 5)")
	})

	t.Run("discovered config raises threshold", func(t *testing.T) {
		files := fullProject(noisy)
		files[".pagecheck.yaml"] = "thresholds:\n  console_log: 10\n"
		root := writeProject(t, files)

		output, err := executeCommand(root)
		require.NoError(t, err)
		assert.NotContains(t, output, "more than")
	})

	t.Run("explicit config", func(t *testing.T) {
		root := writeProject(t, fullProject(page))
		cfg := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("docs:\n  required: [MISSING.md]\n"), 0o600))

		output, err := executeCommand("--config", cfg, root)
		require.ErrorIs(t, err, engine.ErrChecksFailed)
		assert.Contains(t, output, "docs: MISSING.md")
	})

	t.Run("invalid config is fatal", func(t *testing.T) {
		files := fullProject(page)
		files[".pagecheck.yaml"] = "thresholds:\n  console_log: -1\n"
		root := writeProject(t, files)

		_, err := executeCommand(root)
		require.Error(t, err)
		assert.True(t, engine.IsFatal(err))
	})

	t.Run("missing explicit config", func(t *testing.T) {
		root := writeProject(t, fullProject(page))
		_, err := executeCommand("--config", filepath.Join(root, "nope.yaml"), root)
		require.Error(t, err)
		assert.True(t, engine.IsFatal(err))
	})
}
