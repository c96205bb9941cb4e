package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taimooralam/job-search-sub004/internal/mapping"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map CV achievements to job requirements",
	Long:  "Map each achievement to the job requirements it addresses, using weighted keyword overlap and string similarity. Outputs the mappings and the generation context block.",
	RunE:  runMap,
}

var (
	mapAchievementsFile string
	mapJobFile          string
	mapOutputFile       string
	mapThreshold        float64
	mapShowContext      bool
)

func init() {
	mapCmd.Flags().StringVarP(&mapAchievementsFile, "achievements", "a", "", "Path to achievements file, one per line (required)")
	mapCmd.Flags().StringVarP(&mapJobFile, "job", "j", "", "Path to job context JSON file (required)")
	mapCmd.Flags().StringVarP(&mapOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	mapCmd.Flags().Float64Var(&mapThreshold, "threshold", mapping.DefaultMatchThreshold, "Minimum combined score for a match")
	mapCmd.Flags().BoolVar(&mapShowContext, "context", false, "Print the generation context block instead of JSON")
	_ = mapCmd.MarkFlagRequired("achievements")
	_ = mapCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, _ []string) error {
	achievements, err := readLines(mapAchievementsFile)
	if err != nil {
		return fmt.Errorf("failed to load achievements: %w", err)
	}

	job, err := loadJobContext(mapJobFile)
	if err != nil {
		return err
	}

	requirements := append(append([]string{}, job.ImpliedPainPoints...), job.Responsibilities...)
	mappings := mapping.Map(achievements, requirements, mapThreshold)

	if mapShowContext {
		cmd.Println(mapping.FormatGenerationContext(mappings, requirements))
		return nil
	}
	return writeJSON(mappings, mapOutputFile)
}
