// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/pagination"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of a resume document: the
// header identity plus the entry count of every non-empty section.
func (p *Printer) PrintDocument(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", doc.PersonalInfo.Name))
	if doc.PersonalInfo.Profession != "" {
		sb.WriteString(fmt.Sprintf("Profession: %s\n", doc.PersonalInfo.Profession))
	}
	if doc.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", doc.PersonalInfo.Email))
	}
	sb.WriteString("\n")

	counts := []struct {
		label string
		n     int
	}{
		{"Experience", len(doc.Experience)},
		{"Education", len(doc.Education)},
		{"Projects", len(doc.Projects)},
		{"Skills", len(doc.Skills)},
		{"Certifications", len(doc.Certifications)},
		{"References", len(doc.References)},
		{"Custom sections", len(doc.CustomSections)},
	}
	for _, c := range counts {
		if c.n > 0 {
			sb.WriteString(fmt.Sprintf("  • %s: %d\n", c.label, c.n))
		}
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs the section layout from settings: render order,
// labels and visibility.
func (p *Printer) PrintSections(settings *types.ResumeSettings) {
	if settings == nil || len(settings.Sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n\n", settings.Template))

	sections := document.SortSections(settings.Sections)
	for _, s := range sections {
		marker := "✓"
		if !s.Visible {
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("  %d. [%s] %s\n", s.Order, marker, s.Label))
	}

	p.printBox("SECTION LAYOUT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPagination outputs the break table for a measured content height.
func (p *Printer) PrintPagination(height int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Content height: %dpx\n", height))
	sb.WriteString(fmt.Sprintf("Page height:    %dpx\n", pagination.PageHeight))
	sb.WriteString(fmt.Sprintf("Pages:          %d\n", pagination.PageCount(height)))

	breaks := pagination.Breaks(height)
	if len(breaks) > 0 {
		sb.WriteString("\n")
		count := min(len(breaks), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s at %dpx\n", breaks[i].Label, breaks[i].Offset))
		}
		if len(breaks) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(breaks)-maxItemsToShow))
		}
	}

	p.printBox("PAGINATION", strings.TrimSuffix(sb.String(), "\n"))
}
