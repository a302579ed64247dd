package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergedConfig_FlagsOverrideConfigFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("resume"), 0o644))

	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"resume": "`+resume+`", "job_url": "https://example.com/a"}`), 0o644))

	analyzeConfigPath = configPath
	require.NoError(t, analyzeCommand.Flags().Set("job-url", "https://example.com/b"))
	defer resetAnalyzeFlags(t)

	cfg, err := mergedConfig(analyzeCommand)

	require.NoError(t, err)
	assert.Equal(t, resume, cfg.Resume)
	assert.Equal(t, "https://example.com/b", cfg.JobURL)
}

func TestMergedConfig_JobAndJobURLMutuallyExclusive(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	analyzeConfigPath = ""
	require.NoError(t, analyzeCommand.Flags().Set("job", "job.txt"))
	require.NoError(t, analyzeCommand.Flags().Set("job-url", "https://example.com/job"))
	defer resetAnalyzeFlags(t)

	_, err := mergedConfig(analyzeCommand)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestMergedConfig_APIKeyFallsBackToEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	analyzeConfigPath = ""
	defer resetAnalyzeFlags(t)

	cfg, err := mergedConfig(analyzeCommand)

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
}

// resetAnalyzeFlags restores the analyze command's flags to their defaults so
// tests do not leak flag state into each other.
func resetAnalyzeFlags(t *testing.T) {
	t.Helper()
	analyzeConfigPath = ""
	analyzeCommand.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
