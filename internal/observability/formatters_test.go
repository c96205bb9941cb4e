package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taimooralam/job-search-sub004/internal/types"
)

func TestPrintMappings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMappings([]types.AchievementMapping{
		{
			Achievement: "Reduced deployment time by 40%",
			BestMatch: &types.AchievementRequirementMatch{
				Requirement: "Need to accelerate release cycles",
				Confidence:  0.45,
				Reason:      "keyword overlap (delivery)",
			},
		},
		{Achievement: "Organized the company offsite"},
	})

	out := buf.String()
	assert.Contains(t, out, "ACHIEVEMENT MAPPING")
	assert.Contains(t, out, "Achievements mapped: 1/2")
	assert.Contains(t, out, "no matching requirement")
}

func TestPrintMappings_EmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMappings(nil)
	assert.Empty(t, buf.String())
}

func TestPrintGradeResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGradeResult(&types.GradeResult{
		Dimensions: []types.DimensionScore{
			{Dimension: "keyword_format", Score: 9.0, Weight: 0.20},
			{Dimension: "impact_clarity", Score: 6.5, Weight: 0.25},
		},
		CompositeScore: 7.4,
		Threshold:      8.5,
		Mode:           "rule_based",
	})

	out := buf.String()
	assert.Contains(t, out, "CV GRADE")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "impact_clarity")
}

func TestPrintPlacementResult_ShowsViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPlacementResult(&types.KeywordPlacementResult{
		OverallScore:  55,
		MustHaveScore: 0,
		IdentityScore: 100,
		Placements: []types.KeywordPlacement{
			{Keyword: "kafka", PlacementScore: 10},
		},
		Violations: []string{`must-have keyword "kafka" is missing from the top third of the CV`},
	})

	out := buf.String()
	assert.Contains(t, out, "KEYWORD PLACEMENT")
	assert.Contains(t, out, "kafka")
	assert.Contains(t, out, "Violations:")
}

func TestPrintImprovementResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImprovementResult(&types.ImprovementResult{
		Status:             types.ImprovementApplied,
		TargetDimension:    "impact_clarity",
		ImprovementSummary: "revised impact_clarity",
	})

	out := buf.String()
	assert.Contains(t, out, "TARGETED IMPROVEMENT")
	assert.Contains(t, out, "applied")
}
