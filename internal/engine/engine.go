// Package engine provides the high-level orchestration for one CV quality run:
// mapping, categorization, placement validation, grading, and the single
// targeted improvement pass.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/taimooralam/job-search-sub004/internal/categories"
	"github.com/taimooralam/job-search-sub004/internal/grading"
	"github.com/taimooralam/job-search-sub004/internal/improvement"
	"github.com/taimooralam/job-search-sub004/internal/llm"
	"github.com/taimooralam/job-search-sub004/internal/mapping"
	"github.com/taimooralam/job-search-sub004/internal/observability"
	"github.com/taimooralam/job-search-sub004/internal/placement"
	"github.com/taimooralam/job-search-sub004/internal/types"
)

// Input holds everything one quality run needs. Zones may be left zero, in
// which case they are parsed from CVText.
type Input struct {
	CVText        string
	Zones         placement.CVZones
	Job           *types.JobContext
	Achievements  []string
	Skills        []string
	Keywords      []types.PriorityKeyword
	ReferenceText string
}

// RunReport is the complete output of one quality run.
type RunReport struct {
	RunID             string                        `json:"run_id"`
	Mappings          []types.AchievementMapping    `json:"mappings"`
	GenerationContext string                        `json:"generation_context,omitempty"`
	Categories        *types.CategorizedSkills      `json:"categories,omitempty"`
	Placement         *types.KeywordPlacementResult `json:"placement"`
	Grade             *types.GradeResult            `json:"grade"`
	Improvement       *types.ImprovementResult      `json:"improvement,omitempty"`
	FinalPlacement    *types.KeywordPlacementResult `json:"final_placement,omitempty"`
	FinalCVText       string                        `json:"final_cv_text"`
}

// Options configures an Engine.
type Options struct {
	// Client is optional. Without it the generator falls back to default
	// category names, grading is rule-based, and improvement always fails soft.
	Client         llm.Client
	Logger         *zap.Logger
	Printer        *observability.Printer
	MatchThreshold float64
	GradeThreshold float64
	// SkipImprovement stops the run after grading.
	SkipImprovement bool
}

// Engine wires the five quality components behind one Run call.
type Engine struct {
	opts      Options
	generator *categories.Generator
	grader    *grading.Grader
	improver  *improvement.Improver
	logger    *zap.Logger
}

// New creates an Engine from options, applying defaults for thresholds and
// the logger.
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.MatchThreshold <= 0 {
		opts.MatchThreshold = mapping.DefaultMatchThreshold
	}
	if opts.GradeThreshold <= 0 {
		opts.GradeThreshold = grading.DefaultPassingThreshold
	}
	return &Engine{
		opts:      opts,
		generator: categories.NewGenerator(opts.Client, opts.Logger),
		grader:    grading.NewGrader(opts.Client, opts.Logger, grading.WithThreshold(opts.GradeThreshold)),
		improver:  improvement.NewImprover(opts.Client, opts.Logger),
		logger:    opts.Logger,
	}
}

// Run executes one full quality pass. Mapping and categorization are
// independent and run concurrently; the remaining stages are sequential.
func (e *Engine) Run(ctx context.Context, in *Input) (*RunReport, error) {
	if in == nil || in.Job == nil {
		return nil, fmt.Errorf("engine input requires a job context")
	}

	runID := uuid.New().String()
	e.logger.Info("starting quality run",
		zap.String("run_id", runID),
		zap.String("role_category", in.Job.RoleCategory))

	report := &RunReport{RunID: runID, FinalCVText: in.CVText}

	zones := in.Zones
	if zonesEmpty(zones) {
		zones = placement.ParseZones(in.CVText)
	}

	g, gCtx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	g.Go(func() error {
		mappings := mapping.Map(in.Achievements, requirementsOf(in.Job), e.opts.MatchThreshold)
		genContext := mapping.FormatGenerationContext(mappings, requirementsOf(in.Job))
		mu.Lock()
		report.Mappings = mappings
		report.GenerationContext = genContext
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		categorized := e.generator.GenerateCategorized(gCtx, in.Job.AllKeywords(), in.Skills, in.Job.RoleCategory)
		mu.Lock()
		report.Categories = categorized
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if e.opts.Printer != nil {
		e.opts.Printer.PrintMappings(report.Mappings)
		e.opts.Printer.PrintCategories(report.Categories)
	}

	report.Placement = placement.Validate(zones, in.Keywords)
	if e.opts.Printer != nil {
		e.opts.Printer.PrintPlacementResult(report.Placement)
	}

	grade, err := e.grader.Grade(ctx, &grading.Input{
		CVText:        in.CVText,
		Job:           in.Job,
		ReferenceText: in.ReferenceText,
	})
	if err != nil {
		return nil, fmt.Errorf("quality run %s failed: %w", runID, err)
	}
	report.Grade = grade
	if e.opts.Printer != nil {
		e.opts.Printer.PrintGradeResult(grade)
	}

	if e.opts.SkipImprovement {
		return report, nil
	}

	report.Improvement = e.improver.Improve(ctx, in.CVText, grade, in.Job)
	report.FinalCVText = report.Improvement.CVText
	if e.opts.Printer != nil {
		e.opts.Printer.PrintImprovementResult(report.Improvement)
	}

	// Revised text can shift keywords between zones, so placement is measured
	// again on the final CV.
	if report.Improvement.Improved {
		report.FinalPlacement = placement.Validate(placement.ParseZones(report.FinalCVText), in.Keywords)
		if e.opts.Printer != nil {
			e.opts.Printer.PrintPlacementResult(report.FinalPlacement)
		}
	}

	e.logger.Info("quality run complete",
		zap.String("run_id", runID),
		zap.Float64("composite", grade.CompositeScore),
		zap.Bool("passed", grade.Passed),
		zap.String("improvement_status", string(report.Improvement.Status)))

	return report, nil
}

// requirementsOf flattens the job's pain points and responsibilities into the
// requirement list achievements are mapped against.
func requirementsOf(job *types.JobContext) []string {
	requirements := make([]string, 0, len(job.ImpliedPainPoints)+len(job.Responsibilities))
	requirements = append(requirements, job.ImpliedPainPoints...)
	requirements = append(requirements, job.Responsibilities...)
	return requirements
}

// zonesEmpty reports whether the caller provided no zone content at all.
func zonesEmpty(z placement.CVZones) bool {
	return z.Headline == "" && z.Narrative == "" &&
		len(z.SkillsGroupings) == 0 && len(z.RecentRoleBullets) == 0
}
