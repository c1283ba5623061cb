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

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"provider": "openai",
		"tone": "confident",
		"name": "Jordan Lee",
		"research": true,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "confident", cfg.Tone)
	assert.Equal(t, "Jordan Lee", cfg.Name)
	assert.True(t, cfg.Research)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"provider": `)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	jobPath := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("job"), 0o600))

	cfg := &Config{Provider: "gemini", Job: jobPath}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "claude"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestValidate_MissingJobFile(t *testing.T) {
	cfg := &Config{Job: filepath.Join(t.TempDir(), "missing.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job description file not found")
}

func TestValidate_MissingHistoryFile(t *testing.T) {
	cfg := &Config{PersonalHistory: filepath.Join(t.TempDir(), "missing.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "personal history file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Provider: "openai", Tone: ""}
	defaults := Config{Provider: "gemini", Tone: "enthusiastic", Name: "Jordan Lee"}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "openai", merged.Provider)
	assert.Equal(t, "enthusiastic", merged.Tone)
	assert.Equal(t, "Jordan Lee", merged.Name)
}
