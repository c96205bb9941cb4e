// Package types provides type definitions for structured data used throughout the CV quality engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DimensionScore is one graded quality dimension. Score is the raw 0-10 value;
// Weight is the dimension's share of the composite (all weights sum to 1.0).
type DimensionScore struct {
	Dimension string   `json:"dimension"`
	Score     float64  `json:"score"`
	Weight    float64  `json:"weight"`
	Feedback  string   `json:"feedback,omitempty"`
	Issues    []string `json:"issues,omitempty"`
	Strengths []string `json:"strengths,omitempty"`
}

// WeightedScore returns the dimension's contribution to the composite score.
func (d *DimensionScore) WeightedScore() float64 {
	return d.Score * d.Weight
}

// GradeResult is the outcome of one grading pass: exactly five dimension
// scores in fixed order, their weighted sum, and the pass verdict.
type GradeResult struct {
	Dimensions     []DimensionScore `json:"dimensions"`
	CompositeScore float64          `json:"composite_score"`
	Passed         bool             `json:"passed"`
	Threshold      float64          `json:"threshold"`
	Mode           string           `json:"mode"` // "rule_based" or "llm"
}

// LowestDimension returns the dimension with the minimum raw score. Ties
// resolve to the first occurrence in the fixed dimension order.
func (g *GradeResult) LowestDimension() *DimensionScore {
	if len(g.Dimensions) == 0 {
		return nil
	}
	lowest := &g.Dimensions[0]
	for i := 1; i < len(g.Dimensions); i++ {
		if g.Dimensions[i].Score < lowest.Score {
			lowest = &g.Dimensions[i]
		}
	}
	return lowest
}

// ImprovementStatus distinguishes the terminal states of an improvement pass.
type ImprovementStatus string

// Improvement pass outcomes.
const (
	// ImprovementSkipped means the grade already passed and no edit was attempted.
	ImprovementSkipped ImprovementStatus = "skipped_already_passing"
	// ImprovementApplied means the external edit was accepted as final.
	ImprovementApplied ImprovementStatus = "applied"
	// ImprovementFailed means the external call failed after retries; the CV text is unchanged.
	ImprovementFailed ImprovementStatus = "failed_error"
)

// ImprovementResult is the terminal outcome of the single targeted revision
// pass. There is no second grading pass; the result is accepted as final.
type ImprovementResult struct {
	Improved           bool              `json:"improved"`
	Status             ImprovementStatus `json:"status"`
	TargetDimension    string            `json:"target_dimension,omitempty"`
	ChangesMade        []string          `json:"changes_made,omitempty"`
	OriginalScore      float64           `json:"original_score"`
	CVText             string            `json:"cv_text"`
	ImprovementSummary string            `json:"improvement_summary"`
}
