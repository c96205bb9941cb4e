// Package grading provides functionality to score an assembled CV against a
// target job on five weighted quality dimensions.
package grading

import "github.com/taimooralam/job-search-sub004/internal/types"

// Dimension names, in fixed grading order. The order matters: lowest-dimension
// ties resolve to the earliest entry.
const (
	DimensionKeywordFormat        = "keyword_format"
	DimensionImpactClarity        = "impact_clarity"
	DimensionRequirementAlignment = "requirement_alignment"
	DimensionSeniorityFraming     = "seniority_framing"
	DimensionFactualGrounding     = "factual_grounding"
)

// DefaultPassingThreshold is the composite score required to pass.
const DefaultPassingThreshold = 8.5

// Input carries everything one grading pass inspects. ReferenceText is the
// unedited candidate record used only for factual grounding.
type Input struct {
	CVText        string
	Job           *types.JobContext
	ReferenceText string
}

// dimensionSpec binds a dimension name to its composite weight and rule-based
// scoring function. Dimensions are data, not code branches: adding or
// reweighting a dimension only touches this table.
type dimensionSpec struct {
	name   string
	weight float64
	score  func(in *Input) types.DimensionScore
}

// dimensionTable is the declarative registry of the five graded dimensions.
// Weights sum to 1.0. Populated in init to break the static initialization
// cycle between the table and score functions that look up weights from it.
var dimensionTable []dimensionSpec

func init() {
	dimensionTable = []dimensionSpec{
		{name: DimensionKeywordFormat, weight: 0.20, score: scoreKeywordFormat},
		{name: DimensionImpactClarity, weight: 0.25, score: scoreImpactClarity},
		{name: DimensionRequirementAlignment, weight: 0.25, score: scoreRequirementAlignment},
		{name: DimensionSeniorityFraming, weight: 0.15, score: scoreSeniorityFraming},
		{name: DimensionFactualGrounding, weight: 0.15, score: scoreFactualGrounding},
	}
}

// DimensionNames returns the five dimension names in grading order.
func DimensionNames() []string {
	names := make([]string, len(dimensionTable))
	for i, spec := range dimensionTable {
		names[i] = spec.name
	}
	return names
}

// weightFor returns the composite weight for a dimension name, 0 if unknown.
func weightFor(name string) float64 {
	for _, spec := range dimensionTable {
		if spec.name == name {
			return spec.weight
		}
	}
	return 0
}
