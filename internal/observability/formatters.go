// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the number of skills displayed per candidate row
	maxSkillsToShow = 5
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

// PrintJobSkills outputs the required skills derived from the job description.
func (p *Printer) PrintJobSkills(job *types.JobDescription) {
	if job == nil {
		return
	}

	var sb strings.Builder
	if len(job.RequiredSkills) == 0 {
		sb.WriteString("No vocabulary skills found in the job description.\n")
		sb.WriteString("Ranking may be ineffective.")
	} else {
		sb.WriteString(fmt.Sprintf("Required skills (%d):\n", len(job.RequiredSkills)))
		for _, skill := range job.RequiredSkills {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}

	p.printBox("JOB DESCRIPTION SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedCandidates outputs the ranked results table.
func (p *Printer) PrintRankedCandidates(candidates []types.Candidate) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ranked %d candidates:\n\n", len(candidates)))

	for i, candidate := range candidates {
		name := candidate.Name
		if name == "" {
			name = "(name not found)"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s — %s\n", i+1, name, candidate.SourceFilename))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", candidate.Score))

		if len(candidate.Skills) > 0 {
			shown := candidate.Skills
			more := 0
			if len(shown) > maxSkillsToShow {
				more = len(shown) - maxSkillsToShow
				shown = shown[:maxSkillsToShow]
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s", strings.Join(shown, ", ")))
			if more > 0 {
				sb.WriteString(fmt.Sprintf(" (+%d more)", more))
			}
			sb.WriteString("\n")
		}
		if len(candidate.Emails) > 0 {
			sb.WriteString(fmt.Sprintf("    Email: %s\n", candidate.Emails[0]))
		}
		if len(candidate.Phones) > 0 {
			sb.WriteString(fmt.Sprintf("    Phone: %s\n", candidate.Phones[0]))
		}
		if i < len(candidates)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFailures outputs files that could not be processed.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFailures(failures []types.FileFailure) {
	if len(failures) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL FILES PROCESSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Failed to process %d file(s):\n\n", len(failures)))
	for i, failure := range failures {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", failure.SourceFilename))
		sb.WriteString(fmt.Sprintf("  %s\n", failure.Reason))
		if i < len(failures)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FAILED FILES", sb.String())
}
