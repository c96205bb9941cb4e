// Package types provides type definitions for structured data used throughout the CV quality engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobContext is the read-only job-requirement mapping supplied by the upstream
// job analysis layer. The engine never mutates it.
type JobContext struct {
	TopKeywords       []string `json:"top_keywords"`
	ImpliedPainPoints []string `json:"implied_pain_points"`
	TechnicalSkills   []string `json:"technical_skills"`
	SoftSkills        []string `json:"soft_skills"`
	Responsibilities  []string `json:"responsibilities"`
	RoleCategory      string   `json:"role_category"`
	SeniorityLevel    string   `json:"seniority_level"`
}

// AllKeywords returns the deduplicated union of top keywords and technical
// skills, preserving first-seen order.
func (jc *JobContext) AllKeywords() []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range [][]string{jc.TopKeywords, jc.TechnicalSkills} {
		for _, kw := range list {
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}
