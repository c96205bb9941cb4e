package improvement

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/taimooralam/job-search-sub004/internal/llm"
	"github.com/taimooralam/job-search-sub004/internal/prompts"
	"github.com/taimooralam/job-search-sub004/internal/types"
)

// Improver runs the single targeted revision pass against the lowest-scoring
// dimension of a failed grade.
type Improver struct {
	client llm.Client
	logger *zap.Logger
}

// NewImprover creates an Improver. A nil logger is replaced with a no-op.
func NewImprover(client llm.Client, logger *zap.Logger) *Improver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Improver{client: client, logger: logger}
}

// Improve attempts one revision of the CV targeting the weakest dimension.
// A passing grade short-circuits without any external call. A failed call
// returns the original text with a failed status, never an error: the caller
// always gets a usable CV back.
func (i *Improver) Improve(ctx context.Context, cvText string, grade *types.GradeResult, job *types.JobContext) *types.ImprovementResult {
	if grade == nil {
		return &types.ImprovementResult{
			Status:             types.ImprovementFailed,
			CVText:             cvText,
			ImprovementSummary: "no grade result provided",
		}
	}

	if grade.Passed {
		return &types.ImprovementResult{
			Status:             types.ImprovementSkipped,
			OriginalScore:      grade.CompositeScore,
			CVText:             cvText,
			ImprovementSummary: fmt.Sprintf("composite %.2f already meets the %.1f threshold", grade.CompositeScore, grade.Threshold),
		}
	}

	target := grade.LowestDimension()
	if target == nil || job == nil {
		reason := "grade result has no dimensions to target"
		if job == nil {
			reason = "no job context provided"
		}
		return &types.ImprovementResult{
			Status:             types.ImprovementFailed,
			OriginalScore:      grade.CompositeScore,
			CVText:             cvText,
			ImprovementSummary: reason,
		}
	}

	revised, err := i.reviseDimension(ctx, cvText, target, job)
	if err != nil {
		i.logger.Warn("improvement pass failed, keeping original CV",
			zap.String("dimension", target.Dimension),
			zap.Error(err))
		return &types.ImprovementResult{
			Status:             types.ImprovementFailed,
			TargetDimension:    target.Dimension,
			OriginalScore:      grade.CompositeScore,
			CVText:             cvText,
			ImprovementSummary: fmt.Sprintf("revision failed: %v", err),
		}
	}

	plan := strategyFor(target.Dimension)
	i.logger.Info("applied targeted improvement",
		zap.String("dimension", target.Dimension),
		zap.Float64("dimension_score", target.Score))

	return &types.ImprovementResult{
		Improved:           true,
		Status:             types.ImprovementApplied,
		TargetDimension:    target.Dimension,
		ChangesMade:        target.Issues,
		OriginalScore:      grade.CompositeScore,
		CVText:             revised,
		ImprovementSummary: fmt.Sprintf("revised %s: %s", target.Dimension, plan.Focus),
	}
}

// reviseDimension makes the single retried model call and sanity-checks the
// revision before accepting it.
func (i *Improver) reviseDimension(ctx context.Context, cvText string, target *types.DimensionScore, job *types.JobContext) (string, error) {
	if i.client == nil {
		return "", fmt.Errorf("no LLM client configured")
	}

	system, err := prompts.Get("improvement.json", "improve-dimension-system")
	if err != nil {
		return "", fmt.Errorf("failed to load improvement prompt: %w", err)
	}
	userTemplate, err := prompts.Get("improvement.json", "improve-dimension-user")
	if err != nil {
		return "", fmt.Errorf("failed to load improvement prompt: %w", err)
	}

	plan := strategyFor(target.Dimension)
	issues := target.Issues
	if len(issues) == 0 {
		issues = []string{target.Feedback}
	}

	user := prompts.Format(userTemplate, map[string]string{
		"Dimension":    target.Dimension,
		"Score":        fmt.Sprintf("%.1f", target.Score),
		"Focus":        plan.Focus,
		"Tactics":      strings.Join(plan.Tactics, "; "),
		"Issues":       "- " + strings.Join(issues, "\n- "),
		"RoleCategory": job.RoleCategory,
		"Keywords":     strings.Join(job.AllKeywords(), ", "),
		"PainPoints":   strings.Join(job.ImpliedPainPoints, "; "),
		"CVText":       cvText,
	})

	var revised string
	err = llm.WithRetry(ctx, llm.DefaultMaxAttempts, func() error {
		var genErr error
		revised, genErr = i.client.GenerateContent(ctx, system, user, llm.TierAdvanced)
		return genErr
	})
	if err != nil {
		return "", fmt.Errorf("revision call failed: %w", err)
	}

	revised = strings.TrimSpace(llm.CleanJSONBlock(revised))
	if revised == "" {
		return "", fmt.Errorf("revision returned empty text")
	}
	// A revision a fraction of the original's length means the model dropped
	// content instead of editing it.
	if len(revised) < len(cvText)/2 {
		return "", fmt.Errorf("revision lost too much content (%d of %d chars)", len(revised), len(cvText))
	}
	return revised, nil
}
