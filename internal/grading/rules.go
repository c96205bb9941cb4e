// Package grading provides functionality to score an assembled CV against a
// target job on five weighted quality dimensions.
package grading

import (
	"fmt"
	"strings"

	"github.com/taimooralam/job-search-sub004/internal/types"
)

// Sub-score maxima for the composed dimensions.
const (
	painPointSubMax   = 4.0
	roleKeywordSubMax = 3.0
	terminologySubMax = 3.0

	strategicSubMax  = 4.0
	leadershipSubMax = 3.0
	businessSubMax   = 3.0

	metricPreservationSubMax = 5.0
	// companyPreservationScore is a known stub: real company cross-checking
	// is not implemented, so every CV receives the full sub-score.
	companyPreservationScore = 3.0
	fabricationSubMax        = 2.0
	fabricationPenalty       = 0.5

	formatBonus = 0.5

	seniorityPenaltyBar   = 7.0
	seniorityPenaltyFloor = 5.0
)

// scoreKeywordFormat measures JD keyword coverage through a stepped curve,
// with a small bonus for canonical section structure.
func scoreKeywordFormat(in *Input) types.DimensionScore {
	text := strings.ToLower(in.CVText)
	keywords := in.Job.AllKeywords()

	coverage := 1.0
	var missing []string
	if len(keywords) > 0 {
		found := 0
		for _, kw := range keywords {
			if containsTerm(text, kw) {
				found++
			} else {
				missing = append(missing, kw)
			}
		}
		coverage = float64(found) / float64(len(keywords))
	}

	var score float64
	switch {
	case coverage >= 0.67:
		score = 10
	case coverage >= 0.53:
		score = 9
	case coverage >= 0.40:
		score = 8
	case coverage >= 0.27:
		score = 7
	default:
		score = 5 + coverage*5
	}

	hasFormat := hasCanonicalFormat(text)
	if hasFormat {
		score += formatBonus
	}

	ds := types.DimensionScore{
		Dimension: DimensionKeywordFormat,
		Score:     clampScore(score),
		Weight:    weightFor(DimensionKeywordFormat),
		Feedback:  fmt.Sprintf("keyword coverage %.0f%%", coverage*100),
	}
	if len(missing) > 0 {
		ds.Issues = append(ds.Issues, fmt.Sprintf("missing keywords: %s", strings.Join(capList(missing, 5), ", ")))
	}
	if hasFormat {
		ds.Strengths = append(ds.Strengths, "has standard sections and bulleted content")
	} else {
		ds.Issues = append(ds.Issues, "missing standard section headers or bullet structure")
	}
	return ds
}

// scoreImpactClarity rewards quantified metrics, strong leading verbs, and
// specific (longer) bullets.
func scoreImpactClarity(in *Input) types.DimensionScore {
	metricCount := countMetrics(in.CVText)
	verbCount := countStrongVerbs(in.CVText)
	avgBulletWords := averageBulletWordCount(in.CVText)

	metricScore := minFloat(3, float64(metricCount)/5)
	verbScore := minFloat(3, float64(verbCount)/5)
	specificity := minFloat(4, 1+(avgBulletWords/10)*3)

	ds := types.DimensionScore{
		Dimension: DimensionImpactClarity,
		Score:     clampScore(metricScore + verbScore + specificity),
		Weight:    weightFor(DimensionImpactClarity),
		Feedback: fmt.Sprintf("%d metrics, %d strong verbs, avg bullet length %.0f words",
			metricCount, verbCount, avgBulletWords),
	}
	if metricCount < 3 {
		ds.Issues = append(ds.Issues, "few quantified results; add concrete metrics")
	} else {
		ds.Strengths = append(ds.Strengths, "results are quantified")
	}
	if verbCount < 3 {
		ds.Issues = append(ds.Issues, "bullets rarely lead with strong action verbs")
	}
	return ds
}

// scoreRequirementAlignment sums linear sub-scores for pain-point coverage,
// role-category keywords, and JD terminology overlap.
func scoreRequirementAlignment(in *Input) types.DimensionScore {
	text := strings.ToLower(in.CVText)

	painScore, uncovered := fractionSubScore(text, in.Job.ImpliedPainPoints, painPointSubMax, painPointCovered)
	roleTerms := roleCategoryKeywords[strings.ToLower(in.Job.RoleCategory)]
	roleScore, _ := fractionSubScore(text, roleTerms, roleKeywordSubMax, containsTerm)
	termScore, missingTerms := fractionSubScore(text, in.Job.TopKeywords, terminologySubMax, containsTerm)

	ds := types.DimensionScore{
		Dimension: DimensionRequirementAlignment,
		Score:     clampScore(painScore + roleScore + termScore),
		Weight:    weightFor(DimensionRequirementAlignment),
		Feedback: fmt.Sprintf("pain points %.1f/%.0f, role keywords %.1f/%.0f, terminology %.1f/%.0f",
			painScore, painPointSubMax, roleScore, roleKeywordSubMax, termScore, terminologySubMax),
	}
	if len(uncovered) > 0 {
		ds.Issues = append(ds.Issues, fmt.Sprintf("pain points not addressed: %s", strings.Join(capList(uncovered, 3), "; ")))
	}
	if len(missingTerms) > 0 {
		ds.Issues = append(ds.Issues, fmt.Sprintf("JD terminology not mirrored: %s", strings.Join(capList(missingTerms, 5), ", ")))
	}
	return ds
}

// scoreSeniorityFraming counts strategic, leadership, and business-outcome
// language. Senior role categories get penalized when the framing is weak.
func scoreSeniorityFraming(in *Input) types.DimensionScore {
	text := strings.ToLower(in.CVText)

	strategic := minFloat(strategicSubMax, float64(countTerms(text, strategicTerms)))
	leadership := minFloat(leadershipSubMax, float64(countTerms(text, leadershipTerms)))
	business := minFloat(businessSubMax, float64(countTerms(text, businessOutcomeTerms)))

	score := strategic + leadership + business

	penalized := false
	if seniorRoleCategories[strings.ToLower(in.Job.RoleCategory)] && score < seniorityPenaltyBar {
		score--
		if score < seniorityPenaltyFloor {
			score = seniorityPenaltyFloor
		}
		penalized = true
	}

	ds := types.DimensionScore{
		Dimension: DimensionSeniorityFraming,
		Score:     clampScore(score),
		Weight:    weightFor(DimensionSeniorityFraming),
		Feedback: fmt.Sprintf("strategic %.0f/%.0f, leadership %.0f/%.0f, business %.0f/%.0f",
			strategic, strategicSubMax, leadership, leadershipSubMax, business, businessSubMax),
	}
	if strategic < 2 {
		ds.Issues = append(ds.Issues, "little strategic language for the target seniority")
	}
	if leadership < 2 {
		ds.Issues = append(ds.Issues, "thin leadership evidence")
	}
	if penalized {
		ds.Issues = append(ds.Issues, "framing reads below the role's seniority bar")
	}
	return ds
}

// scoreFactualGrounding checks that CV metrics trace back to the reference
// source and penalizes suspicious unverifiable claims.
func scoreFactualGrounding(in *Input) types.DimensionScore {
	cvMetrics := percentMetricPattern.FindAllString(in.CVText, -1)

	preservation := metricPreservationSubMax
	var unverified []string
	if len(cvMetrics) > 0 {
		preserved := 0
		for _, metric := range cvMetrics {
			if strings.Contains(in.ReferenceText, metric) {
				preserved++
			} else {
				unverified = append(unverified, metric)
			}
		}
		preservation = metricPreservationSubMax * float64(preserved) / float64(len(cvMetrics))
	}

	fabrication := fabricationSubMax
	var flagged []string
	for _, pattern := range suspiciousClaimPatterns {
		if match := pattern.FindString(in.CVText); match != "" {
			fabrication -= fabricationPenalty
			flagged = append(flagged, match)
		}
	}
	if fabrication < 0 {
		fabrication = 0
	}

	ds := types.DimensionScore{
		Dimension: DimensionFactualGrounding,
		Score:     clampScore(preservation + companyPreservationScore + fabrication),
		Weight:    weightFor(DimensionFactualGrounding),
		Feedback: fmt.Sprintf("%d/%d percentage metrics verified against the source",
			len(cvMetrics)-len(unverified), len(cvMetrics)),
	}
	if len(unverified) > 0 {
		ds.Issues = append(ds.Issues, fmt.Sprintf("metrics not found in source: %s", strings.Join(capList(unverified, 5), ", ")))
	}
	if len(flagged) > 0 {
		ds.Issues = append(ds.Issues, fmt.Sprintf("suspicious claims: %s", strings.Join(capList(flagged, 3), "; ")))
	}
	if len(unverified) == 0 && len(cvMetrics) > 0 {
		ds.Strengths = append(ds.Strengths, "all metrics trace back to the source record")
	}
	return ds
}

// --- helpers ---

// containsTerm is a case-insensitive substring check; text must already be
// lowered.
func containsTerm(text, term string) bool {
	return strings.Contains(text, strings.ToLower(strings.TrimSpace(term)))
}

// painPointCovered treats a pain point as addressed when any of its
// significant tokens appears in the CV text.
func painPointCovered(text, painPoint string) bool {
	for _, token := range strings.Fields(strings.ToLower(painPoint)) {
		token = strings.Trim(token, ".,;:!?()")
		if len(token) <= 3 {
			continue
		}
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

// fractionSubScore maps matched/total onto [0, subMax] and returns the
// unmatched items. An empty item list earns the full sub-score.
func fractionSubScore(text string, items []string, subMax float64, match func(text, item string) bool) (float64, []string) {
	if len(items) == 0 {
		return subMax, nil
	}
	matched := 0
	var unmatched []string
	for _, item := range items {
		if match(text, item) {
			matched++
		} else {
			unmatched = append(unmatched, item)
		}
	}
	return subMax * float64(matched) / float64(len(items)), unmatched
}

// countTerms counts how many terms from the list occur in the lowered text.
func countTerms(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			count++
		}
	}
	return count
}

// countMetrics counts quantified results across the three metric families.
func countMetrics(text string) int {
	count := len(percentMetricPattern.FindAllString(text, -1))
	count += len(scaledNumberPattern.FindAllString(text, -1))
	count += len(currencyPattern.FindAllString(text, -1))
	return count
}

// countStrongVerbs counts words from the strong verb list.
func countStrongVerbs(text string) int {
	count := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,;:!?()•-*")
		if strongVerbs[word] {
			count++
		}
	}
	return count
}

// averageBulletWordCount computes the mean word count of bulleted lines.
// Returns 0 when the text has no bullets.
func averageBulletWordCount(text string) float64 {
	lines := strings.Split(text, "\n")
	bullets := 0
	words := 0
	for _, line := range lines {
		if !bulletMarkerPattern.MatchString(line) {
			continue
		}
		bullets++
		words += len(strings.Fields(bulletMarkerPattern.ReplaceAllString(line, "")))
	}
	if bullets == 0 {
		return 0
	}
	return float64(words) / float64(bullets)
}

// hasCanonicalFormat reports whether the lowered text has all canonical
// section headers and at least one bullet marker.
func hasCanonicalFormat(loweredText string) bool {
	for _, header := range sectionHeaders {
		if !strings.Contains(loweredText, header) {
			return false
		}
	}
	return bulletMarkerPattern.MatchString(loweredText)
}

// capList truncates a list for readable feedback strings.
func capList(items []string, max int) []string {
	if len(items) <= max {
		return items
	}
	return items[:max]
}

// clampScore bounds a dimension score to [0, 10].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// minFloat returns the smaller of two floats.
func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
