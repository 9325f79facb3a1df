// Package output formats the demo's terminal output.
//
// All user-facing text flows through [Printer], which renders section
// headers, step markers, status lines, and the final pass/fail summary
// table with lipgloss styling. Tests inject a buffer via
// [NewPrinterWithWriter] and assert on the rendered text.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 70

var (
	sectionStyle = lipgloss.NewStyle().Bold(true)
	ruleStyle    = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	toolStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// SummaryRow is one line of the final pass/fail table.
type SummaryRow struct {
	Name     string
	Passed   bool
	Duration time.Duration
}

// Printer renders formatted demo output to a writer.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer that writes to stdout.
func NewPrinter() *Printer {
	return NewPrinterWithWriter(os.Stdout)
}

// NewPrinterWithWriter creates a Printer that writes to the given writer.
func NewPrinterWithWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Section prints a formatted section header.
func (p *Printer) Section(title string) {
	rule := ruleStyle.Render(strings.Repeat("=", ruleWidth))
	fmt.Fprintf(p.w, "\n%s\n", rule)
	fmt.Fprintf(p.w, "  %s\n", sectionStyle.Render(title))
	fmt.Fprintf(p.w, "%s\n", rule)
}

// Step prints a numbered step marker.
func (p *Printer) Step(num int, description string) {
	fmt.Fprintf(p.w, "\n[Step %d] %s\n", num, description)
	fmt.Fprintf(p.w, "%s\n", ruleStyle.Render(strings.Repeat("-", ruleWidth)))
}

// Info prints a plain informational line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Text prints response body text under a small heading.
func (p *Printer) Text(heading, body string) {
	fmt.Fprintf(p.w, "\n%s\n", heading)
	fmt.Fprintf(p.w, "%s\n", body)
}

// Success prints a green success line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s\n", successStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Warn prints a yellow warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s\n", warnStyle.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Fail prints a red failure line.
func (p *Printer) Fail(format string, args ...any) {
	fmt.Fprintf(p.w, "%s\n", failStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// ToolCall prints one tool invocation reported in a response.
func (p *Printer) ToolCall(name string) {
	fmt.Fprintf(p.w, "   %s %s\n", toolStyle.Render("-"), name)
}

// Summary prints the final pass/fail table and the passed/total count.
func (p *Printer) Summary(rows []SummaryRow) {
	passed := 0
	for _, row := range rows {
		status := failStyle.Render("❌ FAILED")
		if row.Passed {
			status = successStyle.Render("✅ PASSED")
			passed++
		}
		fmt.Fprintf(p.w, "%s: %s (%s)\n", status, row.Name, row.Duration.Round(time.Millisecond))
	}

	fmt.Fprintf(p.w, "\nTotal: %d/%d workflows passed\n", passed, len(rows))

	if passed == len(rows) {
		fmt.Fprintf(p.w, "\n%s\n", successStyle.Render("🎉 All workflows completed successfully!"))
	} else {
		fmt.Fprintf(p.w, "\n%s\n", warnStyle.Render(fmt.Sprintf("%d workflow(s) failed. Check the output above for details.", len(rows)-passed)))
	}
}
