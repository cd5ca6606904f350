package jscheck

import (
	"regexp"
	"strings"
)

// Script is one inline <script> block.
type Script struct {
	Index  int    // 1-based position among inline scripts
	Line   int    // line of the opening tag
	Source string // block body
	Module bool   // type="module"
	JSX    bool   // type="text/babel" or "text/jsx", compiled in the browser
}

var (
	scriptBlock = regexp.MustCompile(`(?is)<script\b([^>]*)>(.*?)</script\s*>`)
	srcAttr     = regexp.MustCompile(`(?i)\bsrc\s*=`)
	typeAttr    = regexp.MustCompile(`(?i)\btype\s*=\s*["']?([^"'\s>]+)`)
)

// javascriptTypes are the type attribute values browsers execute as scripts.
var javascriptTypes = map[string]bool{
	"text/javascript":        true,
	"application/javascript": true,
	"text/ecmascript":        true,
	"application/ecmascript": true,
	"module":                 true,
}

// jsxTypes are script types transpiled in the browser, usually by Babel
// standalone on React pages.
var jsxTypes = map[string]bool{
	"text/babel": true,
	"text/jsx":   true,
}

// Extract returns the inline JavaScript blocks of a page.
// External scripts (src=...) and non-JavaScript types such as JSON data are
// left out. JSX blocks are kept and marked.
func Extract(html string) []Script {
	var scripts []Script
	for _, loc := range scriptBlock.FindAllStringSubmatchIndex(html, -1) {
		attrs := html[loc[2]:loc[3]]
		body := html[loc[4]:loc[5]]

		if srcAttr.MatchString(attrs) {
			continue
		}
		module, jsx := false, false
		if m := typeAttr.FindStringSubmatch(attrs); m != nil {
			typ := strings.ToLower(m[1])
			if !javascriptTypes[typ] && !jsxTypes[typ] {
				continue
			}
			module = typ == "module"
			jsx = jsxTypes[typ]
		}
		if strings.TrimSpace(body) == "" {
			continue
		}

		scripts = append(scripts, Script{
			Index:  len(scripts) + 1,
			Line:   strings.Count(html[:loc[0]], "\n") + 1,
			Source: body,
			Module: module,
			JSX:    jsx,
		})
	}
	return scripts
}
