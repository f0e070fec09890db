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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"job_url": "https://example.com/jobs/123",
		"region": "GB",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/jobs/123", cfg.JobURL)
	assert.Equal(t, "GB", cfg.Region)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.Job)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"region": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	jobPath := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("Senior Engineer"), 0o644))

	cfg := &Config{Job: jobPath, JobURL: "https://example.com/jobs/1"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_BadRegion(t *testing.T) {
	cfg := &Config{Region: "USA"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadJobURL(t *testing.T) {
	cfg := &Config{JobURL: "not a url"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingJobFile(t *testing.T) {
	cfg := &Config{Job: filepath.Join(t.TempDir(), "missing.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestValidate_Empty(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Region: "GB"}
	merged := cfg.MergeWithDefaults(Config{
		Region:      "US",
		Vocabulary:  "vocab.json",
		DatabaseURL: "postgres://localhost/ranker",
		Verbose:     true,
	})

	assert.Equal(t, "GB", merged.Region)
	assert.Equal(t, "vocab.json", merged.Vocabulary)
	assert.Equal(t, "postgres://localhost/ranker", merged.DatabaseURL)
	assert.True(t, merged.Verbose)
}
