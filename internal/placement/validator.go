// Package placement provides functionality to validate that priority keywords
// occupy the CV zones that receive the most scanning attention.
package placement

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/taimooralam/job-search-sub004/internal/types"
)

// Zone weights for the per-keyword placement score. The four zones are not
// mutually exclusive, so a keyword present in all of them scores 100.
const (
	headlineWeight  = 40
	narrativeWeight = 30
	skillsWeight    = 20
	recentWeight    = 10

	maxPlacementScore = 100

	// Aggregate pass thresholds
	overallPassThreshold  = 80
	mustHavePassThreshold = 90
)

// CVZones holds the four scored zones of an assembled CV.
type CVZones struct {
	Headline         string
	Narrative        string
	SkillsGroupings  []string
	RecentRoleBullets []string
}

// Validate measures where each priority keyword appears in the CV and
// computes the aggregate placement result. An empty keyword list yields all
// scores = 100 (vacuously passing). Empty zone text is a no-match, not an error.
func Validate(zones CVZones, keywords []types.PriorityKeyword) *types.KeywordPlacementResult {
	if len(keywords) == 0 {
		return &types.KeywordPlacementResult{
			OverallScore:  maxPlacementScore,
			MustHaveScore: maxPlacementScore,
			IdentityScore: maxPlacementScore,
			Passed:        true,
		}
	}

	// Rank order, ties keep input order
	ordered := make([]types.PriorityKeyword, len(keywords))
	copy(ordered, keywords)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PriorityRank < ordered[j].PriorityRank
	})

	headline := strings.ToLower(zones.Headline)
	narrative := strings.ToLower(zones.Narrative)
	skills := strings.ToLower(strings.Join(zones.SkillsGroupings, "\n"))
	recent := strings.ToLower(strings.Join(zones.RecentRoleBullets, "\n"))

	result := &types.KeywordPlacementResult{
		Placements: make([]types.KeywordPlacement, 0, len(ordered)),
	}

	scoreSum := 0
	mustHaveTotal, mustHaveTop := 0, 0
	identityTotal, identityInHeadline := 0, 0

	for _, kw := range ordered {
		placement := locateKeyword(kw.Keyword, headline, narrative, skills, recent)
		scoreSum += placement.PlacementScore

		if kw.IsMustHave {
			mustHaveTotal++
			if placement.IsInTopThird {
				mustHaveTop++
			} else {
				result.Violations = append(result.Violations,
					fmt.Sprintf("must-have keyword %q is missing from the top third of the CV", kw.Keyword))
				result.Suggestions = append(result.Suggestions,
					fmt.Sprintf("add %q to the opening narrative or a skills grouping", kw.Keyword))
			}
		}

		if kw.IsIdentity {
			identityTotal++
			if placement.InHeadline {
				identityInHeadline++
			} else {
				result.Violations = append(result.Violations,
					fmt.Sprintf("identity keyword %q does not appear in the headline", kw.Keyword))
				result.Suggestions = append(result.Suggestions,
					fmt.Sprintf("work %q into the headline", kw.Keyword))
			}
		}

		if kw.IsCoreStrength && placement.Occurrences == 0 {
			result.Suggestions = append(result.Suggestions,
				fmt.Sprintf("core strength %q is absent; consider adding it where it is true", kw.Keyword))
		}

		result.Placements = append(result.Placements, placement)
	}

	result.OverallScore = scoreSum / len(ordered)
	result.MustHaveScore = percentage(mustHaveTop, mustHaveTotal)
	result.IdentityScore = percentage(identityInHeadline, identityTotal)
	result.Passed = result.OverallScore >= overallPassThreshold &&
		result.MustHaveScore >= mustHavePassThreshold

	return result
}

// locateKeyword tests one keyword against each lowered zone text and derives
// its placement record.
func locateKeyword(keyword, headline, narrative, skills, recent string) types.KeywordPlacement {
	re := keywordPattern(keyword)

	placement := types.KeywordPlacement{Keyword: keyword}

	count := func(zone string) int {
		if zone == "" {
			return 0
		}
		return len(re.FindAllString(zone, -1))
	}

	headlineHits := count(headline)
	narrativeHits := count(narrative)
	skillsHits := count(skills)
	recentHits := count(recent)

	placement.InHeadline = headlineHits > 0
	placement.InNarrative = narrativeHits > 0
	placement.InSkillsSection = skillsHits > 0
	placement.InRecentRole = recentHits > 0
	placement.Occurrences = headlineHits + narrativeHits + skillsHits + recentHits

	score := 0
	if placement.InHeadline {
		score += headlineWeight
	}
	if placement.InNarrative {
		score += narrativeWeight
	}
	if placement.InSkillsSection {
		score += skillsWeight
	}
	if placement.InRecentRole {
		score += recentWeight
	}
	if score > maxPlacementScore {
		score = maxPlacementScore
	}
	placement.PlacementScore = score

	// Recent-role-only placement explicitly does not count as top third
	placement.IsInTopThird = placement.InHeadline || placement.InNarrative || placement.InSkillsSection

	return placement
}

// keywordPattern builds a word-boundary, case-insensitive pattern with a
// trailing wildcard so "python" matches "Python3".
func keywordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.TrimSpace(keyword)) + `\w*`)
}

// percentage returns 100*part/total floor-divided, or 100 for an empty total.
func percentage(part, total int) int {
	if total == 0 {
		return maxPlacementScore
	}
	return part * 100 / total
}
