// Package types provides type definitions for structured data used throughout the CV quality engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PriorityKeyword is a term tagged by upstream job analysis as important for a
// given role. PriorityRank orders keywords (lower is more important); rank ties
// keep original input order.
type PriorityKeyword struct {
	Keyword        string `json:"keyword"`
	PriorityRank   int    `json:"priority_rank"`
	IsMustHave     bool   `json:"is_must_have"`
	IsIdentity     bool   `json:"is_identity"`
	IsCoreStrength bool   `json:"is_core_strength"`
}

// KeywordPlacement records where in the CV a single priority keyword was found.
// PlacementScore is the capped weighted zone sum in [0,100].
type KeywordPlacement struct {
	Keyword         string `json:"keyword"`
	InHeadline      bool   `json:"in_headline"`
	InNarrative     bool   `json:"in_narrative"`
	InSkillsSection bool   `json:"in_skills_section"`
	InRecentRole    bool   `json:"in_recent_role"`
	Occurrences     int    `json:"occurrences"`
	PlacementScore  int    `json:"placement_score"`
	IsInTopThird    bool   `json:"is_in_top_third"`
}

// KeywordPlacementResult aggregates placement over all priority keywords.
// An empty keyword list yields all scores = 100 (vacuously passing).
type KeywordPlacementResult struct {
	Placements    []KeywordPlacement `json:"placements"`
	OverallScore  int                `json:"overall_score"`
	MustHaveScore int                `json:"must_have_score"`
	IdentityScore int                `json:"identity_score"`
	Violations    []string           `json:"violations,omitempty"`
	Suggestions   []string           `json:"suggestions,omitempty"`
	Passed        bool               `json:"passed"`
}
