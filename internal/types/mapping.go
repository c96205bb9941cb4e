// Package types provides type definitions for structured data used throughout the CV quality engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AchievementRequirementMatch records how well one achievement bullet supports
// one employer pain point. Confidence is the combined keyword/string score in [0,1].
type AchievementRequirementMatch struct {
	Achievement  string   `json:"achievement"`
	Requirement  string   `json:"requirement"`
	Confidence   float64  `json:"confidence"`
	Reason       string   `json:"reason"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}

// AchievementMapping is one achievement's best match plus all matches at or
// above the confidence threshold, sorted descending by confidence.
// Unmatched is true iff BestMatch is nil.
type AchievementMapping struct {
	Achievement string                        `json:"achievement"`
	BestMatch   *AchievementRequirementMatch  `json:"best_match,omitempty"`
	Matches     []AchievementRequirementMatch `json:"matches,omitempty"`
	Unmatched   bool                          `json:"unmatched"`
}
