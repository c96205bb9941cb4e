// Package mapping provides functionality to map candidate achievements to employer pain points.
// The mapper runs upstream of CV assembly and biases bullet selection toward
// requirements the candidate can actually support.
package mapping

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/taimooralam/job-search-sub004/internal/types"
)

// DefaultMatchThreshold is the minimum combined score for a pair to be
// retained as a match.
const DefaultMatchThreshold = 0.25

// Weights for the combined pair score
const (
	keywordScoreWeight = 0.7
	stringSimWeight    = 0.3

	// technicalTermWeight is the bonus weight for overlap terms that belong
	// to the domain vocabulary.
	technicalTermWeight = 0.5

	// Reason heuristic thresholds
	keywordReasonThreshold  = 0.4
	semanticReasonThreshold = 0.5
)

var nonTokenChars = regexp.MustCompile(`[^a-z\s-]`)

// Map scores every achievement against every requirement and returns one
// mapping per achievement, in input order. A mapping holds all matches at or
// above threshold, sorted descending by confidence; Unmatched is true iff no
// pair cleared the threshold. Pure function, never errors.
func Map(achievements, requirements []string, threshold float64) []types.AchievementMapping {
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}

	mappings := make([]types.AchievementMapping, 0, len(achievements))
	for _, achievement := range achievements {
		mappings = append(mappings, mapAchievement(achievement, requirements, threshold))
	}
	return mappings
}

// mapAchievement scores one achievement against all requirements.
func mapAchievement(achievement string, requirements []string, threshold float64) types.AchievementMapping {
	var matches []types.AchievementRequirementMatch

	for _, requirement := range requirements {
		combined, keywordScore, stringSim, matchedTerms := scorePair(achievement, requirement)
		if combined < threshold {
			continue
		}

		matches = append(matches, types.AchievementRequirementMatch{
			Achievement:  achievement,
			Requirement:  requirement,
			Confidence:   combined,
			Reason:       matchReason(keywordScore, stringSim, matchedTerms),
			MatchedTerms: matchedTerms,
		})
	}

	// Descending by confidence; stable so equal scores keep requirement order
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	mapping := types.AchievementMapping{
		Achievement: achievement,
		Matches:     matches,
		Unmatched:   len(matches) == 0,
	}
	if len(matches) > 0 {
		mapping.BestMatch = &matches[0]
	}
	return mapping
}

// scorePair computes the combined relevance score for one (achievement,
// requirement) pair. The keyword component is a weighted Jaccard over
// canonicalized token sets; the string component is a sequence similarity
// ratio over the normalized texts.
func scorePair(achievement, requirement string) (combined, keywordScore, stringSim float64, matchedTerms []string) {
	normA := normalizeText(achievement)
	normB := normalizeText(requirement)

	termsA := canonicalTerms(normA)
	termsB := canonicalTerms(normB)

	keywordScore, matchedTerms = weightedJaccard(termsA, termsB)
	stringSim = similarityRatio(normA, normB)

	combined = keywordScoreWeight*keywordScore + stringSimWeight*stringSim
	if combined > 1.0 {
		combined = 1.0
	}
	return combined, keywordScore, stringSim, matchedTerms
}

// weightedJaccard computes (|overlap| + 0.5*|technical overlap|) / |union|,
// clipped to 1.0. Technical overlap is the subset of shared terms that are
// canonical vocabulary families.
func weightedJaccard(termsA, termsB map[string]bool) (float64, []string) {
	union := make(map[string]bool, len(termsA)+len(termsB))
	for term := range termsA {
		union[term] = true
	}
	for term := range termsB {
		union[term] = true
	}
	if len(union) == 0 {
		return 0.0, nil
	}

	var overlap []string
	technical := 0
	for term := range termsA {
		if !termsB[term] {
			continue
		}
		overlap = append(overlap, term)
		if familyNames[term] {
			technical++
		}
	}
	sort.Strings(overlap)

	score := (float64(len(overlap)) + technicalTermWeight*float64(technical)) / float64(len(union))
	if score > 1.0 {
		score = 1.0
	}
	return score, overlap
}

// normalizeText lowercases and strips punctuation except hyphens.
func normalizeText(text string) string {
	lower := strings.ToLower(text)
	cleaned := nonTokenChars.ReplaceAllString(lower, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// canonicalTerms tokenizes normalized text into alphabetic tokens longer than
// three characters, drops stopwords, and canonicalizes vocabulary terms to
// their family label.
func canonicalTerms(normalized string) map[string]bool {
	terms := make(map[string]bool)
	for _, token := range strings.Fields(normalized) {
		token = strings.Trim(token, "-")
		if len(token) <= 3 || stopwords[token] {
			continue
		}
		if family, ok := technicalVocabulary[token]; ok {
			terms[family] = true
			continue
		}
		terms[token] = true
	}
	return terms
}

// matchReason derives a human-readable explanation for a retained match.
func matchReason(keywordScore, stringSim float64, matchedTerms []string) string {
	switch {
	case keywordScore > keywordReasonThreshold:
		return fmt.Sprintf("keyword overlap (%s)", strings.Join(matchedTerms, ", "))
	case stringSim > semanticReasonThreshold:
		return "semantic similarity"
	default:
		return "partial match"
	}
}
