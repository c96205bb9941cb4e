package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_DeploymentAchievementMatchesReleaseRequirement(t *testing.T) {
	achievements := []string{"Reduced deployment time from 2 hours to 15 minutes using CI/CD automation"}
	requirements := []string{"Need to accelerate release cycles"}

	mappings := Map(achievements, requirements, DefaultMatchThreshold)

	require.Len(t, mappings, 1)
	mapping := mappings[0]

	assert.False(t, mapping.Unmatched)
	require.NotNil(t, mapping.BestMatch)
	assert.GreaterOrEqual(t, mapping.BestMatch.Confidence, 0.25)
	assert.Contains(t, mapping.BestMatch.Reason, "keyword overlap")
	assert.NotEmpty(t, mapping.BestMatch.MatchedTerms)
}

func TestMap_UnrelatedPairYieldsUnmatched(t *testing.T) {
	achievements := []string{"Organized the annual charity bake sale"}
	requirements := []string{"Harden Kubernetes cluster security posture"}

	mappings := Map(achievements, requirements, DefaultMatchThreshold)

	require.Len(t, mappings, 1)
	assert.True(t, mappings[0].Unmatched)
	assert.Nil(t, mappings[0].BestMatch)
	assert.Empty(t, mappings[0].Matches)
}

func TestMap_NoRequirements(t *testing.T) {
	mappings := Map([]string{"Led migration to the cloud"}, nil, DefaultMatchThreshold)

	require.Len(t, mappings, 1)
	assert.True(t, mappings[0].Unmatched)
}

func TestMap_EmptyAchievements(t *testing.T) {
	mappings := Map(nil, []string{"Need faster releases"}, DefaultMatchThreshold)
	assert.Empty(t, mappings)
}

func TestMap_PreservesAchievementOrder(t *testing.T) {
	achievements := []string{
		"Migrated databases to the cloud platform",
		"Mentored a team of five engineers",
	}
	requirements := []string{"Lead database migration efforts"}

	mappings := Map(achievements, requirements, DefaultMatchThreshold)

	require.Len(t, mappings, 2)
	assert.Equal(t, achievements[0], mappings[0].Achievement)
	assert.Equal(t, achievements[1], mappings[1].Achievement)
}

func TestMap_MatchesSortedByConfidence(t *testing.T) {
	achievements := []string{"Automated the deployment pipeline to accelerate release velocity"}
	requirements := []string{
		"Improve hiring processes",
		"Need to accelerate release cycles through deployment automation",
		"Automate manual release workflows",
	}

	mappings := Map(achievements, requirements, 0.1)

	require.Len(t, mappings, 1)
	matches := mappings[0].Matches
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Confidence, matches[i].Confidence)
	}
	assert.Equal(t, matches[0].Requirement, mappings[0].BestMatch.Requirement)
}

func TestScorePair_CombinedScoreBounded(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"Reduced costs by 40%", "Cut infrastructure spend"},
		{"Built a streaming analytics platform", "Built a streaming analytics platform"},
		{"a", "completely different text with many tokens in it"},
		{"Scaled the platform to 10M users", "Need help with scale and reliability"},
	}

	for _, pair := range pairs {
		combined, keywordScore, stringSim, _ := scorePair(pair[0], pair[1])
		assert.GreaterOrEqual(t, combined, 0.0, "pair %v", pair)
		assert.LessOrEqual(t, combined, 1.0, "pair %v", pair)
		assert.GreaterOrEqual(t, keywordScore, 0.0, "pair %v", pair)
		assert.LessOrEqual(t, keywordScore, 1.0, "pair %v", pair)
		assert.GreaterOrEqual(t, stringSim, 0.0, "pair %v", pair)
		assert.LessOrEqual(t, stringSim, 1.0, "pair %v", pair)
	}
}

func TestScorePair_IdenticalTexts(t *testing.T) {
	combined, _, stringSim, _ := scorePair(
		"Led the security compliance audit",
		"Led the security compliance audit",
	)

	assert.InDelta(t, 1.0, stringSim, 0.001)
	assert.Greater(t, combined, 0.9)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Reduced LATENCY", "reduced latency"},
		{"strips punctuation", "cut costs by 40%!", "cut costs by"},
		{"keeps hyphens", "cross-functional teams", "cross-functional teams"},
		{"collapses whitespace", "a   b\t c", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeText(tt.input))
		})
	}
}

func TestCanonicalTerms(t *testing.T) {
	terms := canonicalTerms("deployment release automation using cat")

	// deployment and release collapse into one family
	assert.True(t, terms["delivery"])
	assert.True(t, terms["automation"])
	// stopwords and short tokens are dropped
	assert.False(t, terms["using"])
	assert.False(t, terms["cat"])
	assert.Len(t, terms, 2)
}

func TestMatchReason(t *testing.T) {
	assert.Contains(t, matchReason(0.5, 0.1, []string{"delivery"}), "keyword overlap")
	assert.Equal(t, "semantic similarity", matchReason(0.1, 0.6, nil))
	assert.Equal(t, "partial match", matchReason(0.1, 0.1, nil))
}

func TestSimilarityRatio(t *testing.T) {
	assert.InDelta(t, 1.0, similarityRatio("abc", "abc"), 0.001)
	assert.InDelta(t, 0.0, similarityRatio("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0, similarityRatio("", ""), 0.001)
	assert.InDelta(t, 0.0, similarityRatio("abc", ""), 0.001)

	// "abcd" vs "bcde": matching block "bcd" of length 3 -> 2*3/8
	assert.InDelta(t, 0.75, similarityRatio("abcd", "bcde"), 0.001)
}
