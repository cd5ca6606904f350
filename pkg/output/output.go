// Package output renders check results and keeps the run tally.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwalton/go-supportscolor"
	"github.com/mattn/go-runewidth"

	"github.com/vertti/pagecheck/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	dim    = "\033[2m"
	bold   = "\033[1m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		disableColor()
	}
}

func disableColor() {
	green, red, yellow, cyan, dim, bold, reset = "", "", "", "", "", "", ""
}

// nameWidth is the column the result message is aligned to.
const nameWidth = 28

// Tally aggregates result counts for one run.
// Total always equals Passed + Failed + Skipped; Warnings are counted apart.
type Tally struct {
	Total    int
	Passed   int
	Failed   int
	Skipped  int
	Warnings int
}

// Reporter records results into a Tally and prints them.
type Reporter struct {
	out     io.Writer
	verbose bool
	tally   Tally
}

// NewReporter creates a Reporter writing to out. A nil out selects stdout.
func NewReporter(out io.Writer, verbose bool) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{out: out, verbose: verbose}
}

// Record counts the result and prints it.
func (r *Reporter) Record(res check.Result) {
	switch res.Status {
	case check.StatusPass:
		r.tally.Passed++
	case check.StatusFail:
		r.tally.Failed++
	case check.StatusSkip:
		r.tally.Skipped++
	case check.StatusWarn:
		r.tally.Warnings++
	}
	if res.Counted() {
		r.tally.Total++
	}
	r.Render(res)
}

// Summary returns the current tally.
func (r *Reporter) Summary() Tally {
	return r.tally
}

// Section prints a suite header.
func (r *Reporter) Section(name string) {
	_, _ = fmt.Fprintf(r.out, "\n%s== %s ==%s\n", bold, name, reset)
}

// Render prints a single result line.
// INFO results, and PASS details, are only shown in verbose mode.
func (r *Reporter) Render(res check.Result) {
	if res.Status == check.StatusInfo && !r.verbose {
		return
	}

	label := statusLabel(res.Status)
	_, _ = fmt.Fprintf(r.out, "%s %s%s\n", label, padName(res.Name), res.Message)

	if res.Detail == "" {
		return
	}
	if res.Status == check.StatusPass && !r.verbose {
		return
	}
	indent := strings.Repeat(" ", len(res.Status)+3)
	for _, line := range strings.Split(res.Detail, "\n") {
		_, _ = fmt.Fprintf(r.out, "%s%s%s%s\n", indent, dim, line, reset)
	}
}

func statusLabel(s check.Status) string {
	color := ""
	switch s {
	case check.StatusPass:
		color = green
	case check.StatusFail:
		color = red
	case check.StatusWarn:
		color = yellow
	case check.StatusSkip, check.StatusInfo:
		color = cyan
	}
	return fmt.Sprintf("%s[%s]%s", color, s, reset)
}

// padName pads the name so messages line up; names are display-width aware.
func padName(name string) string {
	w := runewidth.StringWidth(name)
	if w >= nameWidth {
		return name + " "
	}
	return name + strings.Repeat(" ", nameWidth-w)
}
