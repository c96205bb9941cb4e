// Package improvement provides functionality for one targeted revision pass
// on a CV that failed grading. The revised text is accepted as final; it is
// never re-graded.
package improvement

import "github.com/taimooralam/job-search-sub004/internal/grading"

// strategy describes how to attack one weak dimension: what the edit should
// focus on and the concrete tactics the revision may use.
type strategy struct {
	Focus   string
	Tactics []string
}

// strategyTable maps each graded dimension to its improvement strategy.
var strategyTable = map[string]strategy{
	grading.DimensionKeywordFormat: {
		Focus: "work missing job-description keywords into existing bullets and skills groupings",
		Tactics: []string{
			"replace generic phrasing with the job description's exact terminology",
			"fold missing keywords into skills groupings where they are already true",
			"keep section headers and bullet structure intact",
		},
	},
	grading.DimensionImpactClarity: {
		Focus: "sharpen bullets into metric-led outcome statements",
		Tactics: []string{
			"lead each weak bullet with a strong action verb",
			"surface metrics that are already in the text but buried mid-sentence",
			"tighten vague bullets into one specific outcome each",
			"never invent numbers that are not already present",
		},
	},
	grading.DimensionRequirementAlignment: {
		Focus: "reframe existing achievements to speak to the job's pain points",
		Tactics: []string{
			"connect bullets to the listed pain points using the job's own vocabulary",
			"move the most relevant achievements earlier within their role",
			"mirror the job description's terminology where it is accurate",
		},
	},
	grading.DimensionSeniorityFraming: {
		Focus: "raise the altitude of the language to match the target seniority",
		Tactics: []string{
			"frame outcomes in terms of strategy, scope, and organizational impact",
			"make leadership explicit where it is implied (team size, mentoring, hiring)",
			"swap task-level verbs for direction-setting ones where truthful",
		},
	},
	grading.DimensionFactualGrounding: {
		Focus: "remove or soften claims that cannot be traced to the source record",
		Tactics: []string{
			"delete metrics that do not appear in the source material",
			"soften absolute claims into verifiable statements",
			"strip superlatives that read as unverifiable",
		},
	},
}

// strategyFor returns the strategy for a dimension, with a generic fallback
// for unknown names.
func strategyFor(dimension string) strategy {
	if s, ok := strategyTable[dimension]; ok {
		return s
	}
	return strategy{
		Focus:   "address the listed issues with minimal edits",
		Tactics: []string{"make the smallest change that resolves each issue"},
	}
}
