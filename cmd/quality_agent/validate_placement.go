package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taimooralam/job-search-sub004/internal/observability"
	"github.com/taimooralam/job-search-sub004/internal/placement"
)

var validatePlacementCmd = &cobra.Command{
	Use:   "validate-placement",
	Short: "Validate priority keyword placement across CV zones",
	Long:  "Check where each priority keyword appears in the CV (headline, narrative, skills, most recent role) and score the placement against the pass thresholds.",
	RunE:  runValidatePlacement,
}

var (
	placementCVFile       string
	placementKeywordsFile string
	placementOutputFile   string
	placementVerbose      bool
)

func init() {
	validatePlacementCmd.Flags().StringVarP(&placementCVFile, "cv", "c", "", "Path to CV text file (required)")
	validatePlacementCmd.Flags().StringVarP(&placementKeywordsFile, "keywords", "k", "", "Path to priority keywords JSON file (required)")
	validatePlacementCmd.Flags().StringVarP(&placementOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	validatePlacementCmd.Flags().BoolVarP(&placementVerbose, "verbose", "v", false, "Print a formatted placement summary")
	_ = validatePlacementCmd.MarkFlagRequired("cv")
	_ = validatePlacementCmd.MarkFlagRequired("keywords")

	rootCmd.AddCommand(validatePlacementCmd)
}

func runValidatePlacement(_ *cobra.Command, _ []string) error {
	cvText, err := os.ReadFile(placementCVFile)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	keywords, err := loadKeywords(placementKeywordsFile)
	if err != nil {
		return err
	}

	zones := placement.ParseZones(string(cvText))
	result := placement.Validate(zones, keywords)

	if placementVerbose {
		observability.NewPrinter(os.Stdout).PrintPlacementResult(result)
	}
	return writeJSON(result, placementOutputFile)
}
