package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taimooralam/job-search-sub004/internal/categories"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize",
	Short: "Generate role-tailored skill categories and assign skills to them",
	Long:  "Generate 3-4 skill category names tailored to the role (LLM-assisted with a deterministic fallback) and assign every candidate skill to exactly one category.",
	RunE:  runCategorize,
}

var (
	categorizeSkillsFile string
	categorizeJobFile    string
	categorizeOutputFile string
	categorizeAPIKey     string
	categorizeVerbose    bool
)

func init() {
	categorizeCmd.Flags().StringVarP(&categorizeSkillsFile, "skills", "s", "", "Path to skills file, one per line (required)")
	categorizeCmd.Flags().StringVarP(&categorizeJobFile, "job", "j", "", "Path to job context JSON file (required)")
	categorizeCmd.Flags().StringVarP(&categorizeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	categorizeCmd.Flags().StringVar(&categorizeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	categorizeCmd.Flags().BoolVarP(&categorizeVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = categorizeCmd.MarkFlagRequired("skills")
	_ = categorizeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(categorizeCmd)
}

func runCategorize(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(categorizeVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	skills, err := readLines(categorizeSkillsFile)
	if err != nil {
		return fmt.Errorf("failed to load skills: %w", err)
	}

	job, err := loadJobContext(categorizeJobFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := newLLMClient(ctx, categorizeAPIKey, logger)
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	generator := categories.NewGenerator(client, logger)
	categorized := generator.GenerateCategorized(ctx, job.AllKeywords(), skills, job.RoleCategory)

	return writeJSON(categorized, categorizeOutputFile)
}
