package doccheck

import (
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
)

// ReadmeTitleCheck wants the README to open with a level-one heading.
type ReadmeTitleCheck struct {
	Path string
}

// Name returns the result name.
func (c *ReadmeTitleCheck) Name() string { return "docs: " + c.Path + " title" }

// Run parses the README as Markdown.
func (c *ReadmeTitleCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	source, err := t.ReadFile(c.Path)
	if err != nil {
		return []check.Result{check.Skipf(c.Name(), "%s not readable", c.Path)}
	}

	title, ok := Title(source)
	if !ok {
		return []check.Result{check.Warn(c.Name(), "no top-level heading")}
	}
	return []check.Result{check.Pass(c.Name(), title)}
}

// Title returns the text of the first level-one heading in a Markdown document.
func Title(source []byte) (string, bool) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var title string
	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(headingText(h, source))
		found = true
		return ast.WalkStop, nil
	})
	return title, found
}

func headingText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
