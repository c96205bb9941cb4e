package improvement

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taimooralam/job-search-sub004/internal/grading"
	"github.com/taimooralam/job-search-sub004/internal/llm"
	"github.com/taimooralam/job-search-sub004/internal/types"
)

// MockLLMClient implements llm.Client for tests.
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSONFunc    func(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, system, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, system, prompt, tier)
	}
	return "{}", nil
}

func (m *MockLLMClient) GetModel(tier llm.ModelTier) string { return "mock-model" }
func (m *MockLLMClient) Close() error                       { return nil }

func failingGrade() *types.GradeResult {
	return &types.GradeResult{
		Dimensions: []types.DimensionScore{
			{Dimension: grading.DimensionKeywordFormat, Score: 8.0, Weight: 0.20},
			{Dimension: grading.DimensionImpactClarity, Score: 6.0, Weight: 0.25,
				Issues: []string{"few quantified results; add concrete metrics"}},
			{Dimension: grading.DimensionRequirementAlignment, Score: 8.0, Weight: 0.25},
			{Dimension: grading.DimensionSeniorityFraming, Score: 7.5, Weight: 0.15},
			{Dimension: grading.DimensionFactualGrounding, Score: 9.0, Weight: 0.15},
		},
		CompositeScore: 7.5,
		Passed:         false,
		Threshold:      8.5,
	}
}

func testJob() *types.JobContext {
	return &types.JobContext{
		TopKeywords:       []string{"python", "kubernetes"},
		ImpliedPainPoints: []string{"slow delivery"},
		RoleCategory:      "platform_engineer",
	}
}

const originalCV = `Senior Platform Engineer

EXPERIENCE
- Built deployment tooling used across the company
- Ran the internal Kubernetes platform for three years`

func TestImprove_PassingGradeShortCircuits(t *testing.T) {
	called := false
	client := &MockLLMClient{
		GenerateContentFunc: func(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error) {
			called = true
			return "should never be called", nil
		},
	}
	improver := NewImprover(client, nil)

	grade := &types.GradeResult{CompositeScore: 9.1, Passed: true, Threshold: 8.5}
	result := improver.Improve(context.Background(), originalCV, grade, testJob())

	assert.False(t, called, "passing grades must not trigger an external call")
	assert.Equal(t, types.ImprovementSkipped, result.Status)
	assert.False(t, result.Improved)
	assert.Equal(t, originalCV, result.CVText)
	assert.Equal(t, 9.1, result.OriginalScore)
}

func TestImprove_TargetsLowestDimension(t *testing.T) {
	var capturedPrompt string
	revised := originalCV + "\n- Reduced deploy time for 40 services"
	client := &MockLLMClient{
		GenerateContentFunc: func(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error) {
			capturedPrompt = prompt
			assert.Equal(t, llm.TierAdvanced, tier)
			return revised, nil
		},
	}
	improver := NewImprover(client, nil)

	result := improver.Improve(context.Background(), originalCV, failingGrade(), testJob())

	assert.Equal(t, types.ImprovementApplied, result.Status)
	assert.True(t, result.Improved)
	assert.Equal(t, grading.DimensionImpactClarity, result.TargetDimension)
	assert.Equal(t, revised, result.CVText)
	assert.Contains(t, capturedPrompt, grading.DimensionImpactClarity)
	assert.Contains(t, capturedPrompt, "few quantified results")
	assert.Contains(t, result.ChangesMade, "few quantified results; add concrete metrics")
}

func TestImprove_TransportFailureKeepsOriginalText(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &MockLLMClient{
		GenerateContentFunc: func(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error) {
			cancel() // skip retry backoff
			return "", fmt.Errorf("model unavailable")
		},
	}
	improver := NewImprover(client, nil)

	result := improver.Improve(ctx, originalCV, failingGrade(), testJob())

	assert.Equal(t, types.ImprovementFailed, result.Status)
	assert.False(t, result.Improved)
	assert.Equal(t, originalCV, result.CVText)
	assert.Contains(t, result.ImprovementSummary, "revision failed")
}

func TestImprove_RejectsTruncatedRevision(t *testing.T) {
	client := &MockLLMClient{
		GenerateContentFunc: func(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error) {
			return "Short.", nil
		},
	}
	improver := NewImprover(client, nil)

	result := improver.Improve(context.Background(), originalCV, failingGrade(), testJob())

	assert.Equal(t, types.ImprovementFailed, result.Status)
	assert.Equal(t, originalCV, result.CVText)
}

func TestImprove_NilClientFails(t *testing.T) {
	improver := NewImprover(nil, nil)

	result := improver.Improve(context.Background(), originalCV, failingGrade(), testJob())

	assert.Equal(t, types.ImprovementFailed, result.Status)
	assert.Equal(t, originalCV, result.CVText)
}

func TestImprove_NilGradeFails(t *testing.T) {
	improver := NewImprover(&MockLLMClient{}, nil)

	result := improver.Improve(context.Background(), originalCV, nil, testJob())

	assert.Equal(t, types.ImprovementFailed, result.Status)
	assert.Equal(t, originalCV, result.CVText)
}

func TestStrategyTable_CoversAllDimensions(t *testing.T) {
	for _, name := range grading.DimensionNames() {
		plan, ok := strategyTable[name]
		require.True(t, ok, "dimension %s has no strategy", name)
		assert.NotEmpty(t, plan.Focus)
		assert.GreaterOrEqual(t, len(plan.Tactics), 3)
		assert.LessOrEqual(t, len(plan.Tactics), 5)
	}
}

func TestStrategyFor_UnknownDimensionFallsBack(t *testing.T) {
	plan := strategyFor("nonexistent")
	assert.NotEmpty(t, plan.Focus)
	assert.NotEmpty(t, plan.Tactics)
}

func TestImprove_FeedbackUsedWhenNoIssues(t *testing.T) {
	var capturedPrompt string
	grade := failingGrade()
	grade.Dimensions[1].Issues = nil
	grade.Dimensions[1].Feedback = "2 metrics, 1 strong verb"
	revised := originalCV + "\n- extra line to keep length"

	client := &MockLLMClient{
		GenerateContentFunc: func(ctx context.Context, system, prompt string, tier llm.ModelTier) (string, error) {
			capturedPrompt = prompt
			return revised, nil
		},
	}
	improver := NewImprover(client, nil)

	result := improver.Improve(context.Background(), originalCV, grade, testJob())

	require.Equal(t, types.ImprovementApplied, result.Status)
	assert.True(t, strings.Contains(capturedPrompt, "2 metrics, 1 strong verb"))
}
