// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/coverletter-generator/internal/types"
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

// PrintCompanyProfile outputs a human-readable summary of the research results.
func (p *Printer) PrintCompanyProfile(profile *types.CompanyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.Company))
	if profile.Overview != "" {
		sb.WriteString(fmt.Sprintf("Overview: %s\n", profile.Overview))
	}
	if profile.Mission != "" {
		sb.WriteString(fmt.Sprintf("Mission:  %s\n", profile.Mission))
	}
	if profile.Culture != "" {
		sb.WriteString(fmt.Sprintf("Culture:  %s\n", profile.Culture))
	}

	if len(profile.RecentNews) > 0 {
		sb.WriteString("\nRecent News:\n")
		count := min(len(profile.RecentNews), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.RecentNews[i]))
		}
		if len(profile.RecentNews) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.RecentNews)-maxItemsToShow))
		}
	}

	if len(profile.SourceURLs) > 0 {
		sb.WriteString(fmt.Sprintf("\nSources:  %d pages consulted\n", len(profile.SourceURLs)))
	}

	p.printBox("Company Research", strings.TrimRight(sb.String(), "\n"))
}

// PrintSkillAssessment outputs the gap analysis between the candidate and the job.
func (p *Printer) PrintSkillAssessment(assessment *types.SkillAssessment) {
	if assessment == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidate skills:  %d\n", len(assessment.CandidateSkills)))
	sb.WriteString(fmt.Sprintf("Job requirements:  %d\n", len(assessment.Requirements)))

	if len(assessment.MissingSkills) > 0 {
		sb.WriteString("\nMissing Skills:\n")
		count := min(len(assessment.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", assessment.MissingSkills[i]))
		}
		if len(assessment.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(assessment.MissingSkills)-maxItemsToShow))
		}
	} else {
		sb.WriteString("\nNo skill gaps detected\n")
	}

	if len(assessment.Transferable) > 0 {
		sb.WriteString("\nTransferable Strengths:\n")
		count := min(len(assessment.Transferable), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", assessment.Transferable[i]))
		}
	}

	p.printBox("Skill Gap Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintLetter outputs the letter with a labeled header, used to show
// intermediate drafts in verbose mode.
func (p *Printer) PrintLetter(stage, text string) {
	if text == "" {
		return
	}
	words := len(strings.Fields(text))
	p.printBox(fmt.Sprintf("%s (%d words)", stage, words), text)
}
