package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// PrintSummary prints the boxed pass/fail banner and the numeric summary line.
func (r *Reporter) PrintSummary() {
	t := r.tally
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, Banner(t))
	_, _ = fmt.Fprintln(r.out, SummaryLine(t))
}

// Banner renders the boxed verdict for a tally.
func Banner(t Tally) string {
	text := "ALL CHECKS PASSED"
	color := lipgloss.Color("2")
	if t.Failed > 0 {
		text = "CHECKS FAILED"
		color = lipgloss.Color("1")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Bold(true).
		Padding(0, 2).
		Render(text)
}

// SummaryLine renders the tally counters on one line.
func SummaryLine(t Tally) string {
	return fmt.Sprintf("Total: %d  Passed: %d  Failed: %d  Skipped: %d  Warnings: %d",
		t.Total, t.Passed, t.Failed, t.Skipped, t.Warnings)
}
