// Package categories provides functionality to group a candidate's skill
// inventory into job-specific named categories for the CV skills section.
package categories

import "strings"

// patternRule expands a category name into the skill terms it attracts.
// Rules are matched by substring against the lowercased category name.
type patternRule struct {
	nameHints []string
	patterns  []string
}

// patternRules is checked in order; the first rule whose hint appears in the
// category name supplies that category's pattern list. Read-only after init.
var patternRules = []patternRule{
	{
		nameHints: []string{"cloud", "platform", "infrastructure", "devops"},
		patterns: []string{
			"aws", "azure", "gcp", "google cloud", "kubernetes", "docker",
			"terraform", "ansible", "helm", "linux", "networking", "serverless",
			"lambda", "ec2", "cloudformation", "infrastructure", "ci/cd",
		},
	},
	{
		nameHints: []string{"leadership", "management", "people", "organizational", "collaboration"},
		patterns: []string{
			"leadership", "mentoring", "coaching", "hiring", "recruiting",
			"stakeholder", "communication", "strategy", "roadmap", "agile",
			"scrum", "team building", "cross-functional", "management",
		},
	},
	{
		nameHints: []string{"data", "analytics", "machine learning", "ml", "ai"},
		patterns: []string{
			"sql", "python", "spark", "airflow", "kafka", "etl", "dbt",
			"snowflake", "bigquery", "redshift", "pandas", "tensorflow",
			"pytorch", "analytics", "tableau", "looker", "data",
		},
	},
	{
		nameHints: []string{"observability", "reliability", "operations", "sre"},
		patterns: []string{
			"prometheus", "grafana", "datadog", "monitoring", "alerting",
			"on-call", "incident", "sre", "slo", "logging", "tracing",
		},
	},
	{
		nameHints: []string{"automation", "tooling", "delivery", "practices", "process", "execution"},
		patterns: []string{
			"ci/cd", "jenkins", "github actions", "gitlab", "automation",
			"testing", "tdd", "code review", "git", "bash", "scripting",
			"kanban", "delivery",
		},
	},
	{
		nameHints: []string{"engineering", "technical", "development", "software", "backend", "frontend", "languages", "frameworks", "architecture", "technology"},
		patterns: []string{
			"go", "golang", "java", "python", "javascript", "typescript",
			"rust", "c++", "ruby", "node", "react", "vue", "api", "rest",
			"grpc", "graphql", "microservices", "postgresql", "mysql",
			"mongodb", "redis", "architecture", "distributed systems",
		},
	},
}

// CategorizeSkills deterministically assigns every skill to exactly one
// category. Each skill goes to the first category whose pattern list matches
// it; a skill matching no category goes to the most JD-relevant technical
// category if it is itself a JD keyword, otherwise to the currently
// least-populated category.
func CategorizeSkills(categoryNames, skills, jdKeywords []string) map[string][]string {
	assigned := make(map[string][]string, len(categoryNames))
	for _, name := range categoryNames {
		assigned[name] = []string{}
	}
	if len(categoryNames) == 0 {
		return assigned
	}

	patternsByCategory := make(map[string][]string, len(categoryNames))
	for _, name := range categoryNames {
		patternsByCategory[name] = patternsForCategory(name)
	}

	jdSet := make(map[string]bool, len(jdKeywords))
	for _, kw := range jdKeywords {
		jdSet[strings.ToLower(strings.TrimSpace(kw))] = true
	}

	technicalFallback := mostRelevantTechnicalCategory(categoryNames, patternsByCategory, jdKeywords)

	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		category := matchCategory(key, categoryNames, patternsByCategory)
		if category == "" {
			if jdSet[key] && technicalFallback != "" {
				category = technicalFallback
			} else {
				category = leastPopulatedCategory(categoryNames, assigned)
			}
		}
		assigned[category] = append(assigned[category], skill)
	}

	return assigned
}

// patternsForCategory expands a category name into its pattern list via the
// first matching name hint. Unrecognized names get no patterns and only
// receive balancing-fallback skills.
func patternsForCategory(name string) []string {
	lower := strings.ToLower(name)
	for _, rule := range patternRules {
		for _, hint := range rule.nameHints {
			if strings.Contains(lower, hint) {
				return rule.patterns
			}
		}
	}
	return nil
}

// matchCategory returns the first category whose patterns match the skill.
func matchCategory(skillLower string, categoryNames []string, patternsByCategory map[string][]string) string {
	for _, name := range categoryNames {
		for _, pattern := range patternsByCategory[name] {
			if strings.Contains(skillLower, pattern) || strings.Contains(pattern, skillLower) {
				return name
			}
		}
	}
	return ""
}

// mostRelevantTechnicalCategory picks the category whose pattern list
// overlaps the JD keywords most. Ties resolve to the earliest category.
func mostRelevantTechnicalCategory(categoryNames []string, patternsByCategory map[string][]string, jdKeywords []string) string {
	best := ""
	bestOverlap := -1
	for _, name := range categoryNames {
		patterns := patternsByCategory[name]
		if len(patterns) == 0 {
			continue
		}
		overlap := 0
		for _, kw := range jdKeywords {
			kwLower := strings.ToLower(strings.TrimSpace(kw))
			for _, pattern := range patterns {
				if strings.Contains(kwLower, pattern) || strings.Contains(pattern, kwLower) {
					overlap++
					break
				}
			}
		}
		if overlap > bestOverlap {
			best = name
			bestOverlap = overlap
		}
	}
	return best
}

// leastPopulatedCategory returns the category with the fewest assigned
// skills, first wins ties.
func leastPopulatedCategory(categoryNames []string, assigned map[string][]string) string {
	best := categoryNames[0]
	for _, name := range categoryNames[1:] {
		if len(assigned[name]) < len(assigned[best]) {
			best = name
		}
	}
	return best
}
