package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taimooralam/job-search-sub004/internal/types"
)

func allZones() CVZones {
	return CVZones{
		Headline:  "Senior Python Engineer",
		Narrative: "Ten years building Python services at scale.",
		SkillsGroupings: []string{
			"Languages: Python, Go",
			"Cloud: AWS, Kubernetes",
		},
		RecentRoleBullets: []string{
			"Led a Python migration across 40 services",
		},
	}
}

func TestValidate_KeywordInAllFourZonesScores100(t *testing.T) {
	result := Validate(allZones(), []types.PriorityKeyword{
		{Keyword: "python", PriorityRank: 1},
	})

	require.Len(t, result.Placements, 1)
	placement := result.Placements[0]
	assert.Equal(t, 100, placement.PlacementScore)
	assert.True(t, placement.IsInTopThird)
	assert.Equal(t, 100, result.OverallScore)
}

func TestValidate_RecentRoleOnlyScores10(t *testing.T) {
	zones := CVZones{
		Headline:          "Engineering Manager",
		Narrative:         "People-first leader.",
		RecentRoleBullets: []string{"Rolled out Terraform modules for all environments"},
	}

	result := Validate(zones, []types.PriorityKeyword{
		{Keyword: "terraform", PriorityRank: 1},
	})

	require.Len(t, result.Placements, 1)
	placement := result.Placements[0]
	assert.Equal(t, 10, placement.PlacementScore)
	assert.False(t, placement.IsInTopThird)
}

func TestValidate_AbsentKeywordScoresZero(t *testing.T) {
	result := Validate(allZones(), []types.PriorityKeyword{
		{Keyword: "haskell", PriorityRank: 1},
	})

	require.Len(t, result.Placements, 1)
	assert.Equal(t, 0, result.Placements[0].PlacementScore)
	assert.False(t, result.Placements[0].IsInTopThird)
}

func TestValidate_EmptyKeywordListPassesVacuously(t *testing.T) {
	result := Validate(CVZones{}, nil)

	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, 100, result.MustHaveScore)
	assert.Equal(t, 100, result.IdentityScore)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Violations)
}

func TestValidate_TrailingWildcardMatchesVariants(t *testing.T) {
	zones := CVZones{Headline: "Python3 Platform Engineer"}

	result := Validate(zones, []types.PriorityKeyword{
		{Keyword: "python", PriorityRank: 1},
	})

	assert.True(t, result.Placements[0].InHeadline)
}

func TestValidate_WordBoundaryPreventsMidWordMatch(t *testing.T) {
	zones := CVZones{Headline: "Cryptography Specialist"}

	// "graph" only occurs mid-word in "Cryptography"
	result := Validate(zones, []types.PriorityKeyword{
		{Keyword: "graph", PriorityRank: 1},
	})

	assert.False(t, result.Placements[0].InHeadline)
}

func TestValidate_MustHaveViolation(t *testing.T) {
	zones := CVZones{
		Headline:          "Engineering Manager",
		RecentRoleBullets: []string{"Introduced Kafka for event streaming"},
	}

	result := Validate(zones, []types.PriorityKeyword{
		{Keyword: "kafka", PriorityRank: 1, IsMustHave: true},
	})

	assert.Equal(t, 0, result.MustHaveScore)
	assert.False(t, result.Passed)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "kafka")
	assert.Contains(t, result.Violations[0], "top third")
}

func TestValidate_IdentityKeywordMustBeInHeadline(t *testing.T) {
	zones := CVZones{
		Headline:  "Seasoned Technology Executive",
		Narrative: "An engineering manager who scales teams.",
	}

	result := Validate(zones, []types.PriorityKeyword{
		{Keyword: "engineering manager", PriorityRank: 1, IsIdentity: true},
	})

	assert.Equal(t, 0, result.IdentityScore)
	require.NotEmpty(t, result.Violations)
	assert.Contains(t, result.Violations[0], "headline")
}

func TestValidate_CoreStrengthAbsentIsSuggestionOnly(t *testing.T) {
	result := Validate(allZones(), []types.PriorityKeyword{
		{Keyword: "python", PriorityRank: 1, IsMustHave: true},
		{Keyword: "rust", PriorityRank: 2, IsCoreStrength: true},
	})

	assert.Empty(t, result.Violations)
	require.Len(t, result.Suggestions, 1)
	assert.Contains(t, result.Suggestions[0], "rust")
}

func TestValidate_OverallScoreIsFloorDividedMean(t *testing.T) {
	zones := CVZones{
		Headline:          "Go Engineer",
		RecentRoleBullets: []string{"Shipped Kafka consumers"},
	}

	// go: headline only = 40; kafka: recent only = 10 -> mean 25
	result := Validate(zones, []types.PriorityKeyword{
		{Keyword: "go", PriorityRank: 1},
		{Keyword: "kafka", PriorityRank: 2},
	})

	assert.Equal(t, 25, result.OverallScore)
}

func TestValidate_PassRequiresBothThresholds(t *testing.T) {
	zones := allZones()

	result := Validate(zones, []types.PriorityKeyword{
		{Keyword: "python", PriorityRank: 1, IsMustHave: true},
	})

	assert.GreaterOrEqual(t, result.OverallScore, 80)
	assert.GreaterOrEqual(t, result.MustHaveScore, 90)
	assert.True(t, result.Passed)
}

func TestValidate_RankOrderStable(t *testing.T) {
	result := Validate(allZones(), []types.PriorityKeyword{
		{Keyword: "kubernetes", PriorityRank: 2},
		{Keyword: "python", PriorityRank: 1},
		{Keyword: "aws", PriorityRank: 2},
	})

	require.Len(t, result.Placements, 3)
	assert.Equal(t, "python", result.Placements[0].Keyword)
	// Equal ranks keep input order
	assert.Equal(t, "kubernetes", result.Placements[1].Keyword)
	assert.Equal(t, "aws", result.Placements[2].Keyword)
}
