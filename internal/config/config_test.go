package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeTempConfig(t, `{
		"cv": "cv.txt",
		"match_threshold": 0.3,
		"grade_threshold": 9.0,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "cv.txt", cfg.CV)
	assert.Equal(t, 0.3, cfg.MatchThreshold)
	assert.Equal(t, 9.0, cfg.GradeThreshold)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_ThresholdRanges(t *testing.T) {
	cfg := &Config{MatchThreshold: 1.5}
	assert.Error(t, cfg.Validate())

	cfg = &Config{GradeThreshold: 11}
	assert.Error(t, cfg.Validate())

	cfg = &Config{MatchThreshold: 0.25, GradeThreshold: 8.5}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingReferencedFile(t *testing.T) {
	cfg := &Config{CV: filepath.Join(t.TempDir(), "missing.txt")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{CV: "mine.txt"}
	defaults := Config{CV: "default.txt", Job: "job.json", MatchThreshold: 0.25}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.txt", merged.CV)
	assert.Equal(t, "job.json", merged.Job)
	assert.Equal(t, 0.25, merged.MatchThreshold)
}
