// Package main provides the CLI entry point for the CV quality engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quality_agent",
	Short: "CV quality engine",
	Long:  "quality_agent scores generated CVs against job requirements: achievement mapping, skill categorization, keyword placement validation, multi-dimensional grading, and one targeted improvement pass.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
