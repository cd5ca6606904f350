// Package artifact gives checks read-only access to the page under review
// and the project tree around it.
package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// Target is the artifact being checked together with its project root.
// The artifact content is read once and cached for the rest of the run.
type Target struct {
	Root    string     // project root directory
	Name    string     // artifact file name relative to Root, e.g. "index.html"
	DocsDir string     // documentation directory relative to Root
	FS      FileSystem // injected for testing

	content []byte
	loaded  bool
	loadErr error
}

// New creates a Target. A nil fsys selects the real file system.
func New(root, name, docsDir string, fsys FileSystem) *Target {
	if fsys == nil {
		fsys = &RealFileSystem{}
	}
	return &Target{Root: root, Name: name, DocsDir: docsDir, FS: fsys}
}

// Path returns the artifact path.
func (t *Target) Path() string {
	return t.Resolve(t.Name)
}

// Resolve joins a root-relative path onto Root.
func (t *Target) Resolve(rel string) string {
	return filepath.Join(t.Root, rel)
}

// Stat stats a root-relative path.
func (t *Target) Stat(rel string) (fs.FileInfo, error) {
	return t.FS.Stat(t.Resolve(rel))
}

// Exists reports whether a root-relative path exists.
// With wantDir set the path must also be a directory.
func (t *Target) Exists(rel string, wantDir bool) bool {
	info, err := t.Stat(rel)
	if err != nil {
		return false
	}
	return info.IsDir() == wantDir
}

// Content returns the artifact text.
func (t *Target) Content() (string, error) {
	if !t.loaded {
		t.content, t.loadErr = t.FS.ReadFile(t.Path())
		if t.loadErr != nil {
			t.loadErr = fmt.Errorf("reading %s: %w", t.Name, t.loadErr)
		}
		t.loaded = true
	}
	return string(t.content), t.loadErr
}

// Bytes returns the artifact content as bytes.
func (t *Target) Bytes() ([]byte, error) {
	if _, err := t.Content(); err != nil {
		return nil, err
	}
	return t.content, nil
}

// Size returns the artifact size in bytes.
func (t *Target) Size() (int64, error) {
	info, err := t.FS.Stat(t.Path())
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// ReadFile reads a root-relative file.
func (t *Target) ReadFile(rel string) ([]byte, error) {
	return t.FS.ReadFile(t.Resolve(rel))
}

// ReadDir lists a root-relative directory.
func (t *Target) ReadDir(rel string) ([]fs.DirEntry, error) {
	return t.FS.ReadDir(t.Resolve(rel))
}

// IsNotExist reports whether err means the path is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
