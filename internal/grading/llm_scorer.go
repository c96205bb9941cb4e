package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/taimooralam/job-search-sub004/internal/llm"
	"github.com/taimooralam/job-search-sub004/internal/prompts"
	"github.com/taimooralam/job-search-sub004/internal/types"
)

// gradeResponseSchema constrains the model's grading response before it is
// trusted: exactly five dimension entries, scores within range.
const gradeResponseSchema = `{
  "type": "object",
  "required": ["dimensions"],
  "properties": {
    "dimensions": {
      "type": "array",
      "minItems": 5,
      "maxItems": 5,
      "items": {
        "type": "object",
        "required": ["dimension", "score", "feedback"],
        "properties": {
          "dimension": {"type": "string"},
          "score": {"type": "number", "minimum": 1, "maximum": 10},
          "feedback": {"type": "string"},
          "issues": {"type": "array", "items": {"type": "string"}},
          "strengths": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

// gradeResponse mirrors the JSON the model is asked to return.
type gradeResponse struct {
	Dimensions []gradedDimension `json:"dimensions" validate:"required,len=5,dive"`
}

type gradedDimension struct {
	Dimension string   `json:"dimension" validate:"required"`
	Score     float64  `json:"score" validate:"gte=1,lte=10"`
	Feedback  string   `json:"feedback" validate:"required"`
	Issues    []string `json:"issues"`
	Strengths []string `json:"strengths"`
}

// LLMScorer grades with a single model call and falls back to rule-based
// scoring whenever the call or its output cannot be trusted.
type LLMScorer struct {
	client   llm.Client
	fallback Scorer
	logger   *zap.Logger
	validate *validator.Validate
	schema   *gojsonschema.Schema
}

// NewLLMScorer builds an LLM scorer backed by the rule-based fallback.
func NewLLMScorer(client llm.Client, logger *zap.Logger) *LLMScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	schemaLoader := gojsonschema.NewStringLoader(gradeResponseSchema)
	schema, err := gojsonschema.NewSchema(schemaLoader)
	if err != nil {
		// The schema is a compile-time constant; failing to parse it is a bug.
		panic(fmt.Sprintf("invalid grade response schema: %v", err))
	}
	return &LLMScorer{
		client:   client,
		fallback: &RuleBasedScorer{},
		logger:   logger,
		validate: validator.New(),
		schema:   schema,
	}
}

// Score asks the model to grade the CV. Any transport, parse, or validation
// failure degrades to the deterministic rule-based result instead of erroring.
func (s *LLMScorer) Score(ctx context.Context, in *Input) (*types.GradeResult, error) {
	if in == nil || in.Job == nil {
		return nil, fmt.Errorf("grading input requires a job context")
	}

	result, err := s.scoreWithModel(ctx, in)
	if err != nil {
		s.logger.Warn("LLM grading failed, falling back to rule-based scoring", zap.Error(err))
		return s.fallback.Score(ctx, in)
	}
	return result, nil
}

func (s *LLMScorer) scoreWithModel(ctx context.Context, in *Input) (*types.GradeResult, error) {
	system, err := prompts.Get("grading.json", "grade-cv-system")
	if err != nil {
		return nil, fmt.Errorf("failed to load grading prompt: %w", err)
	}
	userTemplate, err := prompts.Get("grading.json", "grade-cv-user")
	if err != nil {
		return nil, fmt.Errorf("failed to load grading prompt: %w", err)
	}

	user := prompts.Format(userTemplate, map[string]string{
		"RoleCategory":   in.Job.RoleCategory,
		"SeniorityLevel": in.Job.SeniorityLevel,
		"Keywords":       strings.Join(in.Job.AllKeywords(), ", "),
		"PainPoints":     strings.Join(in.Job.ImpliedPainPoints, "; "),
		"CVText":         in.CVText,
		"ReferenceText":  in.ReferenceText,
	})

	var raw string
	err = llm.WithRetry(ctx, llm.DefaultMaxAttempts, func() error {
		var genErr error
		raw, genErr = s.client.GenerateJSON(ctx, system, user, llm.TierStandard)
		return genErr
	})
	if err != nil {
		return nil, fmt.Errorf("grading model call failed: %w", err)
	}

	parsed, err := s.parseResponse(raw)
	if err != nil {
		return nil, err
	}

	dimensions, err := toDimensionScores(parsed)
	if err != nil {
		return nil, err
	}
	return assembleResult(dimensions, ModeLLM, DefaultPassingThreshold), nil
}

// parseResponse cleans, schema-checks, unmarshals, and field-validates the
// model output.
func (s *LLMScorer) parseResponse(raw string) (*gradeResponse, error) {
	cleaned := llm.CleanJSONBlock(raw)

	check, err := s.schema.Validate(gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return nil, fmt.Errorf("grading response is not valid JSON: %w", err)
	}
	if !check.Valid() {
		return nil, fmt.Errorf("grading response failed schema validation: %v", check.Errors())
	}

	var parsed gradeResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse grading response: %w", err)
	}
	if err := s.validate.Struct(&parsed); err != nil {
		return nil, fmt.Errorf("grading response failed field validation: %w", err)
	}
	return &parsed, nil
}

// toDimensionScores maps the response onto the fixed dimension order, checking
// that the model graded exactly the expected dimensions.
func toDimensionScores(parsed *gradeResponse) ([]types.DimensionScore, error) {
	byName := make(map[string]gradedDimension, len(parsed.Dimensions))
	for _, d := range parsed.Dimensions {
		byName[strings.ToLower(strings.TrimSpace(d.Dimension))] = d
	}

	dimensions := make([]types.DimensionScore, 0, len(dimensionTable))
	for _, spec := range dimensionTable {
		graded, ok := byName[spec.name]
		if !ok {
			return nil, fmt.Errorf("grading response is missing dimension %q", spec.name)
		}
		dimensions = append(dimensions, types.DimensionScore{
			Dimension: spec.name,
			Score:     clampScore(graded.Score),
			Weight:    spec.weight,
			Feedback:  graded.Feedback,
			Issues:    graded.Issues,
			Strengths: graded.Strengths,
		})
	}
	return dimensions, nil
}
