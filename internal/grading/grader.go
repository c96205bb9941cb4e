package grading

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/taimooralam/job-search-sub004/internal/llm"
	"github.com/taimooralam/job-search-sub004/internal/types"
)

// Grading modes recorded on the result so callers can tell which scorer
// actually produced it.
const (
	ModeRuleBased = "rule_based"
	ModeLLM       = "llm"
)

// Scorer grades a CV against a job on the five dimensions.
type Scorer interface {
	Score(ctx context.Context, in *Input) (*types.GradeResult, error)
}

// RuleBasedScorer grades deterministically from the dimension table. It never
// fails and needs no network, which also makes it the fallback behind the LLM
// scorer.
type RuleBasedScorer struct{}

// Score runs every dimension's rule function and assembles the composite.
func (s *RuleBasedScorer) Score(_ context.Context, in *Input) (*types.GradeResult, error) {
	if in == nil || in.Job == nil {
		return nil, fmt.Errorf("grading input requires a job context")
	}
	return assembleResult(scoreAllDimensions(in), ModeRuleBased, DefaultPassingThreshold), nil
}

// scoreAllDimensions evaluates the dimension table in fixed order.
func scoreAllDimensions(in *Input) []types.DimensionScore {
	dimensions := make([]types.DimensionScore, 0, len(dimensionTable))
	for _, spec := range dimensionTable {
		dimensions = append(dimensions, spec.score(in))
	}
	return dimensions
}

// assembleResult folds dimension scores into a GradeResult with the weighted
// composite.
func assembleResult(dimensions []types.DimensionScore, mode string, threshold float64) *types.GradeResult {
	composite := 0.0
	for _, d := range dimensions {
		composite += d.WeightedScore()
	}
	if composite < 0 {
		composite = 0
	}
	if composite > 10 {
		composite = 10
	}
	return &types.GradeResult{
		Dimensions:     dimensions,
		CompositeScore: composite,
		Passed:         composite >= threshold,
		Threshold:      threshold,
		Mode:           mode,
	}
}

// Grader wraps a scorer with a configurable passing threshold.
type Grader struct {
	scorer    Scorer
	threshold float64
	logger    *zap.Logger
}

// Option configures a Grader.
type Option func(*Grader)

// WithThreshold overrides the default passing threshold.
func WithThreshold(threshold float64) Option {
	return func(g *Grader) { g.threshold = threshold }
}

// WithScorer replaces the scorer. Mostly useful in tests.
func WithScorer(s Scorer) Option {
	return func(g *Grader) { g.scorer = s }
}

// NewGrader builds a Grader. When client is non-nil the LLM scorer runs first
// with rule-based scoring as fallback; a nil client grades rule-based only.
func NewGrader(client llm.Client, logger *zap.Logger, opts ...Option) *Grader {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Grader{
		threshold: DefaultPassingThreshold,
		logger:    logger,
	}
	if client != nil {
		g.scorer = NewLLMScorer(client, logger)
	} else {
		g.scorer = &RuleBasedScorer{}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Grade scores the CV and applies the grader's threshold.
func (g *Grader) Grade(ctx context.Context, in *Input) (*types.GradeResult, error) {
	result, err := g.scorer.Score(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to grade CV: %w", err)
	}
	result.Threshold = g.threshold
	result.Passed = result.CompositeScore >= g.threshold
	g.logger.Info("graded CV",
		zap.Float64("composite", result.CompositeScore),
		zap.Bool("passed", result.Passed),
		zap.String("mode", result.Mode))
	return result, nil
}
