// Package categories provides functionality to group a candidate's skill
// inventory into job-specific named categories for the CV skills section.
package categories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/taimooralam/job-search-sub004/internal/llm"
	"github.com/taimooralam/job-search-sub004/internal/prompts"
	"github.com/taimooralam/job-search-sub004/internal/types"
)

// Category count bounds for a generated skills section.
const (
	minCategories = 3
	maxCategories = 4
)

// defaultCategories is the fixed fallback used whenever the external naming
// call fails or returns an unusable shape.
var defaultCategories = []string{
	"Technical Skills",
	"Cloud & Infrastructure",
	"Leadership & Collaboration",
	"Tools & Practices",
}

// roleHints suggests category names per role archetype. The hints seed the
// naming prompt; the model adapts them to the actual keyword overlap.
var roleHints = map[string][]string{
	"engineering_manager":     {"Technical Leadership", "People Management", "Delivery & Execution"},
	"software_engineer":       {"Languages & Frameworks", "Cloud & Infrastructure", "Engineering Practices"},
	"backend_engineer":        {"Backend Engineering", "Data & Storage", "Cloud & Infrastructure"},
	"platform_engineer":       {"Cloud Platform Engineering", "Automation & Tooling", "Observability & Reliability"},
	"devops_engineer":         {"Cloud Platform Engineering", "CI/CD & Automation", "Observability & Reliability"},
	"data_engineer":           {"Data Platforms", "Pipelines & Orchestration", "Cloud & Infrastructure"},
	"cto":                     {"Engineering Strategy", "Organizational Leadership", "Technology & Architecture"},
	"head_of_engineering":     {"Engineering Strategy", "Organizational Leadership", "Delivery & Execution"},
	"director_of_engineering": {"Organizational Leadership", "Technology & Architecture", "Delivery & Execution"},
}

// Generator produces job-specific category names via the external
// text-completion capability, with a deterministic fallback.
type Generator struct {
	client llm.Client
	logger *zap.Logger
}

// NewGenerator creates a Generator. A nil logger falls back to zap.NewNop.
func NewGenerator(client llm.Client, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, logger: logger}
}

// categoryNamesResponse is the expected JSON shape from the naming call.
type categoryNamesResponse struct {
	Categories []string `json:"categories"`
}

// Generate returns 3-4 category names tailored to the role and the overlap
// between JD keywords and candidate skills. Any failure (transport, malformed
// output, wrong count) falls back to the fixed default list; this method
// never returns an error to its caller.
func (g *Generator) Generate(ctx context.Context, jdKeywords, candidateSkills []string, roleCategory string) []string {
	if g.client == nil {
		return defaultCategories
	}

	prompt := g.buildNamingPrompt(jdKeywords, candidateSkills, roleCategory)

	var raw string
	err := llm.WithRetry(ctx, llm.DefaultMaxAttempts, func() error {
		var callErr error
		raw, callErr = g.client.GenerateJSON(ctx, "", prompt, llm.TierLite)
		return callErr
	})
	if err != nil {
		g.logger.Warn("category naming call failed, using defaults",
			zap.String("role_category", roleCategory),
			zap.Error(err))
		return defaultCategories
	}

	names, err := parseCategoryNames(raw)
	if err != nil {
		g.logger.Warn("category naming returned unusable output, using defaults",
			zap.String("role_category", roleCategory),
			zap.Error(err))
		return defaultCategories
	}
	return names
}

// GenerateCategorized runs Generate and then the deterministic skill
// assignment, returning the full categorized result.
func (g *Generator) GenerateCategorized(ctx context.Context, jdKeywords, candidateSkills []string, roleCategory string) *types.CategorizedSkills {
	names := g.Generate(ctx, jdKeywords, candidateSkills, roleCategory)
	return &types.CategorizedSkills{
		Categories: names,
		Skills:     CategorizeSkills(names, candidateSkills, jdKeywords),
	}
}

// buildNamingPrompt renders the naming prompt from the role hint table and
// the JD/skill intersection.
func (g *Generator) buildNamingPrompt(jdKeywords, candidateSkills []string, roleCategory string) string {
	hints, ok := roleHints[strings.ToLower(strings.TrimSpace(roleCategory))]
	if !ok {
		hints = defaultCategories[:minCategories]
	}

	shared := sharedTerms(jdKeywords, candidateSkills)

	template := prompts.MustGet("categories.json", "generate-category-names")
	return prompts.Format(template, map[string]string{
		"RoleCategory": roleCategory,
		"Hints":        strings.Join(hints, ", "),
		"SharedTerms":  strings.Join(shared, ", "),
		"Skills":       strings.Join(candidateSkills, ", "),
	})
}

// parseCategoryNames validates the naming response: valid JSON, 3-4 distinct
// non-empty names.
func parseCategoryNames(raw string) ([]string, error) {
	var resp categoryNamesResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse category names: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, name := range resp.Categories {
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		names = append(names, name)
	}

	if len(names) < minCategories || len(names) > maxCategories {
		return nil, fmt.Errorf("expected %d-%d category names, got %d", minCategories, maxCategories, len(names))
	}
	return names, nil
}

// sharedTerms computes the case-insensitive intersection of JD keywords and
// candidate skills, preserving JD keyword order.
func sharedTerms(jdKeywords, candidateSkills []string) []string {
	skillSet := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		skillSet[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	var shared []string
	for _, kw := range jdKeywords {
		if skillSet[strings.ToLower(strings.TrimSpace(kw))] {
			shared = append(shared, kw)
		}
	}
	return shared
}
