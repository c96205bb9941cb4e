package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeSkills_EverySkillAssignedExactlyOnce(t *testing.T) {
	categories := []string{"Cloud Platform Engineering", "Technical Leadership", "Delivery & Execution"}
	skills := []string{
		"Kubernetes", "Terraform", "Mentoring", "Jenkins",
		"Stakeholder Management", "Underwater Basket Weaving",
	}

	assigned := CategorizeSkills(categories, skills, []string{"kubernetes"})

	seen := make(map[string]int)
	total := 0
	for _, list := range assigned {
		for _, skill := range list {
			seen[skill]++
			total++
		}
	}

	assert.Equal(t, len(skills), total)
	for skill, count := range seen {
		assert.Equal(t, 1, count, "skill %q assigned %d times", skill, count)
	}
}

func TestCategorizeSkills_PatternAssignment(t *testing.T) {
	categories := []string{"Cloud & Infrastructure", "People Management"}

	assigned := CategorizeSkills(categories, []string{"AWS", "Hiring"}, nil)

	assert.Contains(t, assigned["Cloud & Infrastructure"], "AWS")
	assert.Contains(t, assigned["People Management"], "Hiring")
}

func TestCategorizeSkills_JDKeywordGoesToTechnicalCategory(t *testing.T) {
	categories := []string{"Domain Expertise", "Cloud & Infrastructure"}

	// "quarkus" matches no pattern but is a JD keyword, so it lands in the
	// technical category rather than the least-populated one.
	assigned := CategorizeSkills(categories, []string{"Quarkus"}, []string{"quarkus", "aws"})

	assert.Contains(t, assigned["Cloud & Infrastructure"], "Quarkus")
}

func TestCategorizeSkills_UnmatchedSkillBalancesLoad(t *testing.T) {
	categories := []string{"Cloud & Infrastructure", "Domain Expertise"}

	assigned := CategorizeSkills(categories, []string{"AWS", "Kubernetes", "Fencing"}, nil)

	// Fencing matches nothing and is not a JD keyword; it goes to the
	// emptier category.
	assert.Contains(t, assigned["Domain Expertise"], "Fencing")
}

func TestCategorizeSkills_DeduplicatesInput(t *testing.T) {
	categories := []string{"Cloud & Infrastructure", "Domain Expertise", "People Management"}

	assigned := CategorizeSkills(categories, []string{"AWS", "aws", "AWS"}, nil)

	total := 0
	for _, list := range assigned {
		total += len(list)
	}
	assert.Equal(t, 1, total)
}

func TestCategorizeSkills_EmptyInputs(t *testing.T) {
	assigned := CategorizeSkills(nil, []string{"Go"}, nil)
	assert.Empty(t, assigned)

	assigned = CategorizeSkills([]string{"Technical Skills"}, nil, nil)
	require.Len(t, assigned, 1)
	assert.Empty(t, assigned["Technical Skills"])
}

func TestPatternsForCategory(t *testing.T) {
	assert.Contains(t, patternsForCategory("Cloud Platform Engineering"), "kubernetes")
	assert.Contains(t, patternsForCategory("Organizational Leadership"), "mentoring")
	assert.Contains(t, patternsForCategory("Data Platforms"), "sql")
	assert.Nil(t, patternsForCategory("Miscellaneous"))
}

func TestLeastPopulatedCategory_FirstWinsTies(t *testing.T) {
	categories := []string{"A", "B"}
	assigned := map[string][]string{"A": {}, "B": {}}

	assert.Equal(t, "A", leastPopulatedCategory(categories, assigned))
}
