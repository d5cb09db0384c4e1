// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/assembly"
	"github.com/jonathan/resume-builder/internal/remote"
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

// PrintResume outputs a human-readable summary of an assembled resume.
func (p *Printer) PrintResume(r *assembly.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", r.FullName))
	if r.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Title:     %s\n", r.JobTitle))
	}
	if r.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", r.Location))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(r.Education)))
	sb.WriteString(fmt.Sprintf("Work:           %d\n", len(r.Work)))
	sb.WriteString(fmt.Sprintf("Internships:    %d\n", len(r.Internships)))
	sb.WriteString(fmt.Sprintf("Projects:       %d\n", len(r.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(r.Certifications)))
	sb.WriteString(fmt.Sprintf("Languages:      %d", len(r.Languages)))

	p.printBox("Resume", sb.String())

	if len(r.Work) > 0 {
		p.printEntries("Work history", r.Work)
	}
	if len(r.Internships) > 0 {
		p.printEntries("Internships", r.Internships)
	}
}

func (p *Printer) printEntries(title string, entries []assembly.EntryView) {
	var sb strings.Builder
	for i, e := range entries {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more", len(entries)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("%s, %s (%s)\n", e.Title, e.Org, e.Period))
	}
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// PrintSummaries outputs the dashboard rows of a resume listing.
func (p *Printer) PrintSummaries(summaries []remote.ResumeSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(p.out, "No resumes found.")
		return
	}

	var sb strings.Builder
	for _, s := range summaries {
		sb.WriteString(fmt.Sprintf("%s  %s  %s\n", s.ID, s.CreatedAt.Format("2006-01-02"), s.Title))
	}
	p.printBox(fmt.Sprintf("Resumes (%d)", len(summaries)), strings.TrimRight(sb.String(), "\n"))
}
