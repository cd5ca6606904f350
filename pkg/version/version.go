// Package version finds library versions pinned in CDN URLs and compares
// them with semver.
package version

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Parse parses a version string. Partial versions such as "18" or "v18.2"
// are accepted and padded with zeros.
func Parse(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// Pinned returns every version pinned for an npm package in content,
// in order of appearance, e.g. "react@18.2.0" in a unpkg or jsDelivr URL.
// Tags such as "react@latest" are not versions and are ignored.
func Pinned(content, pkg string) []*semver.Version {
	re := regexp.MustCompile(`(?:^|[/"'\s])` + regexp.QuoteMeta(pkg) + `@(v?\d+(?:\.\d+){0,2}(?:-[0-9A-Za-z.\-]+)?)`)
	var out []*semver.Version
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		v, err := semver.NewVersion(m[1])
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Oldest returns the lowest version, or nil for an empty slice.
func Oldest(versions []*semver.Version) *semver.Version {
	var oldest *semver.Version
	for _, v := range versions {
		if oldest == nil || v.LessThan(oldest) {
			oldest = v
		}
	}
	return oldest
}

// AtLeast reports whether v >= minimum.
func AtLeast(v, minimum *semver.Version) bool {
	return !v.LessThan(minimum)
}
