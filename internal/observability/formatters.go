// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-checker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for the analyze command.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of an analysis result.
func (p *Printer) PrintAnalysis(res *types.AnalysisResult) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %3d / 100  %s\n", res.Score, scoreVerdict(res.Score)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Formatting: %3d / 100\n", res.Categories.Formatting))
	sb.WriteString(fmt.Sprintf("Keywords:   %3d / 100\n", res.Categories.Keywords))
	sb.WriteString(fmt.Sprintf("Structure:  %3d / 100\n", res.Categories.Structure))
	sb.WriteString(fmt.Sprintf("Content:    %3d / 100", res.Categories.Content))

	p.printBox("ATS Score", sb.String())

	//nolint:errcheck // writing to stdout; errors are not recoverable
	for _, item := range res.Feedback {
		fmt.Fprintf(p.out, "%s [%s] %s\n", severityGlyph(item.Severity), item.Category, item.Message)
	}
}

// PrintStatus outputs the checker status line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStatus(status string) {
	fmt.Fprintf(p.out, "%s\n", status)
}

func scoreVerdict(score int) string {
	switch {
	case score >= 80:
		return "(good)"
	case score >= 60:
		return "(fair)"
	default:
		return "(poor)"
	}
}

func severityGlyph(sev types.Severity) string {
	switch sev {
	case types.SeveritySuccess:
		return "✓"
	case types.SeverityWarning:
		return "!"
	case types.SeverityError:
		return "✗"
	default:
		return "-"
	}
}
