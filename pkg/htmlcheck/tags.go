package htmlcheck

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
)

// Tag is a required structural marker and the pattern that finds it.
type Tag struct {
	Label   string
	Pattern *regexp.Regexp
}

// RequiredTags are the markers every page must contain.
var RequiredTags = []Tag{
	{"DOCTYPE", regexp.MustCompile(`(?i)<!doctype\s+html`)},
	{"<html>", regexp.MustCompile(`(?i)<html[\s>]`)},
	{"<head>", regexp.MustCompile(`(?i)<head[\s>]`)},
	{"<body>", regexp.MustCompile(`(?i)<body[\s>]`)},
}

// TagCheck emits one result per required tag.
type TagCheck struct {
	Tags []Tag
}

// Name returns the check name.
func (c *TagCheck) Name() string { return "html: required tags" }

// Run searches the page for each tag.
func (c *TagCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}

	results := make([]check.Result, 0, len(c.Tags))
	for _, tag := range c.Tags {
		name := "html: " + tag.Label
		if tag.Pattern.MatchString(content) {
			results = append(results, check.Pass(name, "present"))
		} else {
			results = append(results, check.Fail(name, "missing"))
		}
	}
	return results
}

var (
	metaCharset    = regexp.MustCompile(`(?i)<meta\s[^>]*charset\s*=\s*["']?\s*([\w\-]+)`)
	contentCharset = regexp.MustCompile(`(?i)<meta\s[^>]*content\s*=\s*["'][^"']*charset\s*=\s*([\w\-]+)`)
)

// CharsetCheck looks for a UTF-8 charset declaration. Absence is advisory.
type CharsetCheck struct{}

// Name returns the result name.
func (c *CharsetCheck) Name() string { return "html: charset" }

// Run finds the declared charset.
func (c *CharsetCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}

	m := contentCharset.FindStringSubmatch(content)
	if m == nil {
		m = metaCharset.FindStringSubmatch(content)
	}
	if m == nil {
		return []check.Result{check.Warn(c.Name(), "no charset declared").
			WithDetail(`add <meta charset="UTF-8"> to <head>`)}
	}
	if cs := m[1]; !strings.EqualFold(cs, "utf-8") && !strings.EqualFold(cs, "utf8") {
		return []check.Result{check.Warnf(c.Name(), "declared charset %s, expected UTF-8", cs)}
	}
	return []check.Result{check.Pass(c.Name(), "UTF-8")}
}

// ParityCheck compares opening and closing counts of one tag.
// A mismatch is advisory since the count is only a heuristic.
type ParityCheck struct {
	Tag string
}

// Name returns the result name.
func (c *ParityCheck) Name() string { return fmt.Sprintf("html: <%s> balance", c.Tag) }

// Run counts the tag pairs.
func (c *ParityCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	content, err := t.Content()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}

	tag := regexp.QuoteMeta(c.Tag)
	opening := check.CountMatches(regexp.MustCompile(`(?i)<`+tag+`[\s>]`), content)
	closing := check.CountMatches(regexp.MustCompile(`(?i)</`+tag+`\s*>`), content)

	if opening != closing {
		return []check.Result{check.Warnf(c.Name(), "%d opening vs %d closing", opening, closing)}
	}
	return []check.Result{check.Passf(c.Name(), "%d opening, %d closing", opening, closing)}
}
