package doccheck

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/version"
)

// PackageCheck inspects optional package metadata (package.json).
// Every problem is advisory.
type PackageCheck struct {
	Path string
}

// Name returns the result name.
func (c *PackageCheck) Name() string { return "docs: " + c.Path }

// Run reads name and version from the metadata file.
func (c *PackageCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	data, err := t.ReadFile(c.Path)
	if err != nil {
		if artifact.IsNotExist(err) {
			return []check.Result{check.Warn(c.Name(), "not found (optional)")}
		}
		return []check.Result{check.Warnf(c.Name(), "unreadable: %v", err)}
	}

	raw := string(data)
	if !gjson.Valid(raw) {
		return []check.Result{check.Warn(c.Name(), "invalid JSON")}
	}

	name := gjson.Get(raw, "name")
	if !name.Exists() || name.String() == "" {
		return []check.Result{check.Warn(c.Name(), `missing "name"`)}
	}
	ver := gjson.Get(raw, "version")
	if !ver.Exists() {
		return []check.Result{check.Warnf(c.Name(), `%s: missing "version"`, name.String())}
	}
	v, err := version.Parse(ver.String())
	if err != nil {
		return []check.Result{check.Warnf(c.Name(), "%s: %v", name.String(), err)}
	}

	res := check.Passf(c.Name(), "%s@%s", name.String(), v)
	if desc := gjson.Get(raw, "description"); desc.Exists() {
		res = res.WithDetail(desc.String())
	}
	return []check.Result{res}
}
