// Package mapping provides functionality to map candidate achievements to employer pain points.
package mapping

import (
	"fmt"
	"strings"

	"github.com/taimooralam/job-search-sub004/internal/prompts"
	"github.com/taimooralam/job-search-sub004/internal/types"
)

// Coverage inverts a set of mappings into requirement -> supporting
// achievements. Every input requirement appears as a key; requirements with
// no supporting achievement map to an empty slice so callers can flag them.
func Coverage(mappings []types.AchievementMapping, requirements []string) map[string][]string {
	coverage := make(map[string][]string, len(requirements))
	for _, requirement := range requirements {
		coverage[requirement] = []string{}
	}

	for _, mapping := range mappings {
		for _, match := range mapping.Matches {
			if _, known := coverage[match.Requirement]; !known {
				continue
			}
			coverage[match.Requirement] = append(coverage[match.Requirement], mapping.Achievement)
		}
	}
	return coverage
}

// FormatGenerationContext renders mappings for the downstream generation
// capability: best matches per achievement plus an explicit block of
// uncovered requirements the generator must not address.
func FormatGenerationContext(mappings []types.AchievementMapping, requirements []string) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("mapping.json", "mapping-context-header"))
	sb.WriteString("\n")

	for _, mapping := range mappings {
		if mapping.Unmatched || mapping.BestMatch == nil {
			sb.WriteString(fmt.Sprintf("- %q: no matching requirement\n", mapping.Achievement))
			continue
		}
		best := mapping.BestMatch
		sb.WriteString(fmt.Sprintf("- %q addresses %q (confidence %.2f, %s)\n",
			mapping.Achievement, best.Requirement, best.Confidence, best.Reason))
	}

	coverage := Coverage(mappings, requirements)
	var uncovered []string
	for _, requirement := range requirements {
		if len(coverage[requirement]) == 0 {
			uncovered = append(uncovered, requirement)
		}
	}

	if len(uncovered) > 0 {
		sb.WriteString("\n")
		sb.WriteString(prompts.MustGet("mapping.json", "mapping-context-uncovered"))
		sb.WriteString("\n")
		for _, requirement := range uncovered {
			sb.WriteString(fmt.Sprintf("- %s\n", requirement))
		}
	}

	return sb.String()
}
