// Package observability provides formatted output utilities for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an extracted
// candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", profile.CandidateID))
	if profile.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:      %s\n", profile.Name))
	}
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:     %s\n", profile.Email))
	}
	sb.WriteString(fmt.Sprintf("Years:     %.1f\n", profile.TotalExperienceYears))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills (%d): %s\n", len(profile.Skills), truncateList(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Titles (%d): %s", len(profile.Titles), truncateList(profile.Titles)))

	p.printBox("Candidate Profile", sb.String())
}

// PrintMatches outputs the ranked match list.
func (p *Printer) PrintMatches(matches []types.MatchResult) {
	var sb strings.Builder
	if len(matches) == 0 {
		sb.WriteString("(no matches)")
	}
	for i, m := range matches {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more", len(matches)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("%2d. %-36s %.2f\n", i+1, m.JobID, m.Score))
	}

	p.printBox(fmt.Sprintf("Matches (%d)", len(matches)), strings.TrimRight(sb.String(), "\n"))
}

func truncateList(items []string) string {
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:maxItemsToShow], ", ") + ", ..."
}
