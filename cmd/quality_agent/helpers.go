package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/taimooralam/job-search-sub004/internal/llm"
	"github.com/taimooralam/job-search-sub004/internal/schemas"
	"github.com/taimooralam/job-search-sub004/internal/types"
)

// newLogger builds the CLI logger. Verbose mode uses the human-readable
// development encoder.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// newLLMClient creates the Gemini client when an API key is available, from
// the flag or GEMINI_API_KEY. Returns nil (deterministic mode) without a key.
func newLLMClient(ctx context.Context, apiKey string, logger *zap.Logger) llm.Client {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		logger.Warn("no API key configured; running in deterministic mode (set GEMINI_API_KEY or --api-key)")
		return nil
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		logger.Warn("failed to create LLM client; running in deterministic mode", zap.Error(err))
		return nil
	}
	return client
}

// loadJobContext reads and schema-validates a job context JSON file.
func loadJobContext(path string) (*types.JobContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job context file: %w", err)
	}

	if err := validateAgainstSchema(schemas.JobContextSchema, string(data)); err != nil {
		return nil, fmt.Errorf("job context does not validate against schema: %w", err)
	}

	var job types.JobContext
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job context JSON: %w", err)
	}
	return &job, nil
}

// loadKeywords reads and schema-validates a priority keywords JSON file.
func loadKeywords(path string) ([]types.PriorityKeyword, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}

	if err := validateAgainstSchema(schemas.PriorityKeywordsSchema, string(data)); err != nil {
		return nil, fmt.Errorf("keywords do not validate against schema: %w", err)
	}

	var keywords []types.PriorityKeyword
	if err := json.Unmarshal(data, &keywords); err != nil {
		return nil, fmt.Errorf("failed to parse keywords JSON: %w", err)
	}
	return keywords, nil
}

// validateAgainstSchema validates a document against a repo schema file.
// A missing schema file only warns; a real validation failure errors.
func validateAgainstSchema(schemaRelPath, document string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		fmt.Fprintf(os.Stderr, "Warning: schema %s not found, skipping validation\n", schemaRelPath)
		return nil
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read schema %s: %v\n", schemaPath, err)
		return nil
	}

	if err := schemas.ValidateJSONString(string(schemaContent), document); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return err
		}
		fmt.Fprintf(os.Stderr, "Warning: could not validate against schema: %v\n", err)
	}
	return nil
}

// readLines reads a text file into trimmed non-empty lines. Used for
// achievement and skill list files.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// writeJSON marshals v with indentation and writes it to outPath, or stdout
// when outPath is empty.
func writeJSON(v any, outPath string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if outPath == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(outPath, jsonBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)
	return nil
}
