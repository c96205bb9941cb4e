// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/taimooralam/job-search-sub004/internal/types"
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

// PrintMappings outputs each achievement with its best-matched requirement.
func (p *Printer) PrintMappings(mappings []types.AchievementMapping) {
	if len(mappings) == 0 {
		return
	}

	var sb strings.Builder
	matched := 0
	for _, m := range mappings {
		if m.BestMatch != nil {
			matched++
		}
	}
	sb.WriteString(fmt.Sprintf("Achievements mapped: %d/%d\n\n", matched, len(mappings)))

	count := min(len(mappings), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := mappings[i]
		sb.WriteString(fmt.Sprintf("• %s\n", truncate(m.Achievement, 50)))
		if m.BestMatch != nil {
			sb.WriteString(fmt.Sprintf("    -> %s\n", truncate(m.BestMatch.Requirement, 46)))
			sb.WriteString(fmt.Sprintf("    confidence %.2f (%s)\n", m.BestMatch.Confidence, m.BestMatch.Reason))
		} else {
			sb.WriteString("    -> no matching requirement\n")
		}
	}
	if len(mappings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(mappings)-maxItemsToShow))
	}

	p.printBox("ACHIEVEMENT MAPPING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCategories outputs the generated skill categories and their members.
func (p *Printer) PrintCategories(categorized *types.CategorizedSkills) {
	if categorized == nil || len(categorized.Categories) == 0 {
		return
	}

	var sb strings.Builder
	for _, category := range categorized.Categories {
		skills := categorized.Skills[category]
		sb.WriteString(fmt.Sprintf("%s (%d)\n", category, len(skills)))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(strings.Join(skills, ", "), 52)))
	}

	p.printBox("SKILL CATEGORIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlacementResult outputs the keyword placement scores and violations.
func (p *Printer) PrintPlacementResult(result *types.KeywordPlacementResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %d  Must-have: %d  Identity: %d\n", result.OverallScore, result.MustHaveScore, result.IdentityScore))
	sb.WriteString(fmt.Sprintf("Passed: %v\n", result.Passed))

	count := min(len(result.Placements), maxItemsToShow)
	for i := 0; i < count; i++ {
		pl := result.Placements[i]
		sb.WriteString(fmt.Sprintf("• %-20s %3d  top-third: %v\n", truncate(pl.Keyword, 20), pl.PlacementScore, pl.IsInTopThird))
	}

	if len(result.Violations) > 0 {
		sb.WriteString("\nViolations:\n")
		for _, v := range result.Violations {
			sb.WriteString(fmt.Sprintf("  ! %s\n", truncate(v, 50)))
		}
	}

	p.printBox("KEYWORD PLACEMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGradeResult outputs the per-dimension scores and the composite verdict.
func (p *Printer) PrintGradeResult(result *types.GradeResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	for _, d := range result.Dimensions {
		sb.WriteString(fmt.Sprintf("%-24s %4.1f  (weight %.2f)\n", d.Dimension, d.Score, d.Weight))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Composite: %.2f / %.1f  mode: %s\n", result.CompositeScore, result.Threshold, result.Mode))
	if result.Passed {
		sb.WriteString("Verdict:   PASS")
	} else {
		sb.WriteString("Verdict:   FAIL")
		if lowest := result.LowestDimension(); lowest != nil {
			sb.WriteString(fmt.Sprintf("  (weakest: %s)", lowest.Dimension))
		}
	}

	p.printBox("CV GRADE", sb.String())
}

// PrintImprovementResult outputs the outcome of the targeted revision pass.
func (p *Printer) PrintImprovementResult(result *types.ImprovementResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status: %s\n", result.Status))
	if result.TargetDimension != "" {
		sb.WriteString(fmt.Sprintf("Target: %s\n", result.TargetDimension))
	}
	sb.WriteString(fmt.Sprintf("Summary: %s", truncate(result.ImprovementSummary, 48)))

	p.printBox("TARGETED IMPROVEMENT", sb.String())
}

// truncate shortens a string for single-line display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
