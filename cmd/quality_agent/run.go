package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taimooralam/job-search-sub004/internal/config"
	"github.com/taimooralam/job-search-sub004/internal/engine"
	"github.com/taimooralam/job-search-sub004/internal/observability"
	"github.com/taimooralam/job-search-sub004/internal/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full CV quality pipeline",
	Long:  "Run mapping, categorization, placement validation, grading, and the single targeted improvement pass, producing a complete run report.",
	RunE:  runRun,
}

var (
	runCVFile           string
	runJobFile          string
	runKeywordsFile     string
	runAchievementsFile string
	runSkillsFile       string
	runReferenceFile    string
	runOutputFile       string
	runConfigFile       string
	runAPIKey           string
	runSkipImprovement  bool
	runVerbose          bool
)

func init() {
	runCmd.Flags().StringVarP(&runCVFile, "cv", "c", "", "Path to CV text file")
	runCmd.Flags().StringVarP(&runJobFile, "job", "j", "", "Path to job context JSON file")
	runCmd.Flags().StringVarP(&runKeywordsFile, "keywords", "k", "", "Path to priority keywords JSON file")
	runCmd.Flags().StringVarP(&runAchievementsFile, "achievements", "a", "", "Path to achievements file, one per line")
	runCmd.Flags().StringVarP(&runSkillsFile, "skills", "s", "", "Path to skills file, one per line")
	runCmd.Flags().StringVarP(&runReferenceFile, "reference", "r", "", "Path to the unedited source record for factual grounding")
	runCmd.Flags().StringVarP(&runOutputFile, "out", "o", "", "Path to output report JSON file (default: stdout)")
	runCmd.Flags().StringVar(&runConfigFile, "config", "", "Path to JSON config file providing flag defaults")
	runCmd.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	runCmd.Flags().BoolVar(&runSkipImprovement, "skip-improvement", false, "Stop after grading, never revise")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print formatted summaries of each stage")

	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		CV:              runCVFile,
		Job:             runJobFile,
		Keywords:        runKeywordsFile,
		Reference:       runReferenceFile,
		APIKey:          runAPIKey,
		Verbose:         runVerbose,
		SkipImprovement: runSkipImprovement,
	}

	if runConfigFile != "" {
		fileCfg, err := config.LoadConfig(runConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.CV == "" {
		return fmt.Errorf("a CV file is required (--cv or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("a job context file is required (--job or config)")
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cvText, err := os.ReadFile(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	job, err := loadJobContext(cfg.Job)
	if err != nil {
		return err
	}

	var keywords []types.PriorityKeyword
	if cfg.Keywords != "" {
		keywords, err = loadKeywords(cfg.Keywords)
		if err != nil {
			return err
		}
	}

	var achievements, skills []string
	if runAchievementsFile != "" {
		achievements, err = readLines(runAchievementsFile)
		if err != nil {
			return fmt.Errorf("failed to load achievements: %w", err)
		}
	}
	if runSkillsFile != "" {
		skills, err = readLines(runSkillsFile)
		if err != nil {
			return fmt.Errorf("failed to load skills: %w", err)
		}
	}

	referenceText := ""
	if cfg.Reference != "" {
		data, err := os.ReadFile(cfg.Reference)
		if err != nil {
			return fmt.Errorf("failed to read reference file: %w", err)
		}
		referenceText = string(data)
	}

	ctx := context.Background()
	client := newLLMClient(ctx, cfg.APIKey, logger)
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	var printer *observability.Printer
	if cfg.Verbose {
		printer = observability.NewPrinter(os.Stdout)
	}

	e := engine.New(engine.Options{
		Client:          client,
		Logger:          logger,
		Printer:         printer,
		MatchThreshold:  cfg.MatchThreshold,
		GradeThreshold:  cfg.GradeThreshold,
		SkipImprovement: cfg.SkipImprovement,
	})

	report, err := e.Run(ctx, &engine.Input{
		CVText:        string(cvText),
		Job:           job,
		Achievements:  achievements,
		Skills:        skills,
		Keywords:      keywords,
		ReferenceText: referenceText,
	})
	if err != nil {
		return err
	}

	return writeJSON(report, runOutputFile)
}
