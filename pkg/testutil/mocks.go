// Package testutil holds test doubles shared by the check packages.
package testutil

import (
	"io/fs"
	"path"
	"strings"
	"testing/fstest"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
)

// MapFS is an in-memory artifact.FileSystem keyed by slash-separated paths.
// Parent directories are synthesized, as with fstest.MapFS.
type MapFS map[string]string

// Dir marks a path as an empty directory.
const Dir = "\x00dir"

func (m MapFS) fsys() fstest.MapFS {
	out := fstest.MapFS{}
	for name, data := range m {
		if data == Dir {
			out[name] = &fstest.MapFile{Mode: fs.ModeDir | 0o755}
			continue
		}
		out[name] = &fstest.MapFile{Data: []byte(data), Mode: 0o644}
	}
	return out
}

func clean(name string) string {
	name = path.Clean(strings.TrimPrefix(name, "/"))
	if name == "" {
		return "."
	}
	return name
}

// Stat implements artifact.FileSystem.
func (m MapFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(m.fsys(), clean(name))
}

// ReadFile implements artifact.FileSystem.
func (m MapFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(m.fsys(), clean(name))
}

// ReadDir implements artifact.FileSystem.
func (m MapFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(m.fsys(), clean(name))
}

// Target builds an artifact.Target rooted at "site" over files given
// relative to that root.
func Target(files map[string]string) *artifact.Target {
	m := MapFS{}
	for name, data := range files {
		m[path.Join("site", name)] = data
	}
	if len(files) == 0 {
		m["site"] = Dir
	}
	return artifact.New("site", "index.html", "docs", m)
}

// Page builds a Target containing only index.html with the given content.
func Page(html string) *artifact.Target {
	return Target(map[string]string{"index.html": html})
}

// Find returns the first result with the given name.
func Find(results []check.Result, name string) (check.Result, bool) {
	for _, r := range results {
		if r.Name == name {
			return r, true
		}
	}
	return check.Result{}, false
}

// Statuses maps result names to statuses.
func Statuses(results []check.Result) map[string]check.Status {
	out := make(map[string]check.Status, len(results))
	for _, r := range results {
		out[r.Name] = r.Status
	}
	return out
}

// CountStatus counts results with the given status.
func CountStatus(results []check.Result, status check.Status) int {
	n := 0
	for _, r := range results {
		if r.Status == status {
			n++
		}
	}
	return n
}
