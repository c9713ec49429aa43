package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survey-report/internal/logger"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultDataPath, cfg.DataPath)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, logger.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
	assert.EqualValues(t, 1200, cfg.WindowWidth)
	assert.EqualValues(t, 800, cfg.WindowHeight)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"SURVEY_DATA_PATH":   "dados.csv",
		"SURVEY_DELIMITER":   ",",
		"LOG_LEVEL":          "debug",
		"SURVEY_JSON_LOGS":   "true",
		"SURVEY_WINDOW_SIZE": "1024x768",
	}))
	require.NoError(t, err)
	assert.Equal(t, "dados.csv", cfg.DataPath)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
	assert.EqualValues(t, 1024, cfg.WindowWidth)
	assert.EqualValues(t, 768, cfg.WindowHeight)
}

func TestFromEnvDebugFlag(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{"DEBUG": "1"}))
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"SURVEY_JSON_LOGS": "maybe"}))
	assert.Error(t, err)

	_, err = FromEnv(envMap(map[string]string{"SURVEY_WINDOW_SIZE": "wide"}))
	assert.Error(t, err)

	_, err = FromEnv(envMap(map[string]string{"SURVEY_WINDOW_SIZE": "100x100"}))
	assert.Error(t, err)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SURVEY_DELIMITER=|\n"), 0o644))
	t.Setenv("SURVEY_DELIMITER", "")
	os.Unsetenv("SURVEY_DELIMITER")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "|", cfg.Delimiter)
}
