package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taimooralam/job-search-sub004/internal/grading"
	"github.com/taimooralam/job-search-sub004/internal/observability"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a CV on the five quality dimensions",
	Long:  "Score a CV against the job context on keyword/format, impact clarity, requirement alignment, seniority framing, and factual grounding. Uses the LLM scorer when an API key is available, otherwise rule-based scoring.",
	RunE:  runGrade,
}

var (
	gradeCVFile        string
	gradeJobFile       string
	gradeReferenceFile string
	gradeOutputFile    string
	gradeAPIKey        string
	gradeThresholdFlag float64
	gradeRuleBased     bool
	gradeVerbose       bool
)

func init() {
	gradeCmd.Flags().StringVarP(&gradeCVFile, "cv", "c", "", "Path to CV text file (required)")
	gradeCmd.Flags().StringVarP(&gradeJobFile, "job", "j", "", "Path to job context JSON file (required)")
	gradeCmd.Flags().StringVarP(&gradeReferenceFile, "reference", "r", "", "Path to the unedited source record for factual grounding")
	gradeCmd.Flags().StringVarP(&gradeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	gradeCmd.Flags().StringVar(&gradeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	gradeCmd.Flags().Float64Var(&gradeThresholdFlag, "threshold", grading.DefaultPassingThreshold, "Composite score required to pass")
	gradeCmd.Flags().BoolVar(&gradeRuleBased, "rule-based", false, "Force deterministic rule-based scoring")
	gradeCmd.Flags().BoolVarP(&gradeVerbose, "verbose", "v", false, "Print a formatted grade summary")
	_ = gradeCmd.MarkFlagRequired("cv")
	_ = gradeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(gradeCmd)
}

func runGrade(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(gradeVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cvText, err := os.ReadFile(gradeCVFile)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	job, err := loadJobContext(gradeJobFile)
	if err != nil {
		return err
	}

	referenceText := ""
	if gradeReferenceFile != "" {
		data, err := os.ReadFile(gradeReferenceFile)
		if err != nil {
			return fmt.Errorf("failed to read reference file: %w", err)
		}
		referenceText = string(data)
	}

	ctx := context.Background()
	client := newLLMClient(ctx, gradeAPIKey, logger)
	if gradeRuleBased {
		client = nil
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	grader := grading.NewGrader(client, logger, grading.WithThreshold(gradeThresholdFlag))
	result, err := grader.Grade(ctx, &grading.Input{
		CVText:        string(cvText),
		Job:           job,
		ReferenceText: referenceText,
	})
	if err != nil {
		return err
	}

	if gradeVerbose {
		observability.NewPrinter(os.Stdout).PrintGradeResult(result)
	}
	return writeJSON(result, gradeOutputFile)
}
