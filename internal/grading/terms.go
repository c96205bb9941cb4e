// Package grading provides functionality to score an assembled CV against a
// target job on five weighted quality dimensions.
package grading

import "regexp"

// Common strong action verbs for CV bullets (heuristic check)
var strongVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "drove": true,
	"engineered": true, "established": true, "grew": true, "implemented": true,
	"improved": true, "increased": true, "launched": true, "led": true,
	"mentored": true, "optimized": true, "reduced": true, "scaled": true,
	"shipped": true, "streamlined": true, "transformed": true,
}

// strategicTerms signal strategic, direction-setting language.
var strategicTerms = []string{
	"strategy", "strategic", "vision", "roadmap", "transformation",
	"organization", "org design", "investment", "portfolio", "initiative",
	"alignment", "executive",
}

// leadershipTerms signal evidence of leading people.
var leadershipTerms = []string{
	"led", "managed", "mentored", "coached", "hired", "grew the team",
	"direct reports", "built a team", "stakeholder", "cross-functional",
}

// businessOutcomeTerms signal business-level results rather than activity.
var businessOutcomeTerms = []string{
	"revenue", "cost", "savings", "retention", "churn", "conversion",
	"time to market", "margin", "growth", "customer satisfaction",
}

// roleCategoryKeywords lists the terms a CV for each role archetype is
// expected to carry. Matching is case-insensitive substring.
var roleCategoryKeywords = map[string][]string{
	"engineering_manager":     {"engineering manager", "team", "delivery", "hiring", "mentoring", "roadmap"},
	"software_engineer":       {"software engineer", "developed", "code", "testing", "design", "production"},
	"backend_engineer":        {"backend", "api", "database", "services", "scalability", "production"},
	"platform_engineer":       {"platform", "infrastructure", "kubernetes", "automation", "reliability", "developer experience"},
	"devops_engineer":         {"ci/cd", "infrastructure", "automation", "deployment", "monitoring", "cloud"},
	"data_engineer":           {"data pipeline", "etl", "warehouse", "sql", "streaming", "data quality"},
	"cto":                     {"technology strategy", "executive", "organization", "architecture", "board", "scale"},
	"head_of_engineering":     {"engineering organization", "strategy", "leadership", "hiring", "delivery", "culture"},
	"director_of_engineering": {"director", "organization", "strategy", "leadership", "budget", "delivery"},
}

// seniorRoleCategories are role archetypes graded with a stricter
// seniority-framing bar.
var seniorRoleCategories = map[string]bool{
	"cto":                     true,
	"head_of_engineering":     true,
	"director_of_engineering": true,
}

// Canonical CV section headers expected by the format bonus.
var sectionHeaders = []string{"experience", "skills", "education"}

// Metric detection: three regex families (percentages, scaled numbers,
// currency amounts).
var (
	percentMetricPattern = regexp.MustCompile(`\d+(?:\.\d+)?%`)
	scaledNumberPattern  = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?(?:k|m|b|x|million|billion)\b`)
	currencyPattern      = regexp.MustCompile(`[$€£]\s?\d[\d,]*(?:\.\d+)?`)
)

// bulletMarkerPattern detects bulleted lines.
var bulletMarkerPattern = regexp.MustCompile(`(?m)^\s*[-•*]\s+`)

// suspiciousClaimPatterns flag unverifiable biography-level claims that
// commonly appear in fabricated CVs.
var suspiciousClaimPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfounded\s+\w+`),
	regexp.MustCompile(`(?i)\bco[- ]?founder\b`),
	regexp.MustCompile(`(?i)\bpatented\b`),
	regexp.MustCompile(`(?i)\baward[- ]winning\b`),
	regexp.MustCompile(`(?i)\bworld[- ]class\b`),
	regexp.MustCompile(`(?i)\bindustry[- ]first\b`),
}
