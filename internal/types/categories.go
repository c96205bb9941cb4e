// Package types provides type definitions for structured data used throughout the CV quality engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CategorizedSkills groups a candidate's skill inventory under 3-4 job-specific
// category names. Every input skill appears in exactly one category.
type CategorizedSkills struct {
	Categories []string            `json:"categories"`
	Skills     map[string][]string `json:"skills"`
}
