package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/writealign/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, DefaultComparisonMaxTokens, cfg.ComparisonConfig.MaxTokens)
	assert.True(t, cfg.ComparisonConfig.RebuildMalformedSpans)
	assert.True(t, cfg.ComparisonConfig.GroupSentences)
	assert.Equal(t, "info", cfg.LogConfig.LogLevel)
	assert.Equal(t, "json", cfg.ReporterConfig.Format)
	assert.True(t, cfg.ProgressConfig.EnableProgress)
	assert.Equal(t, 3*time.Second, cfg.ProgressConfig.GetDisplayIntervalDuration())
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_NoConfigFile(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json", zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
	assert.True(t, common.IsValidationError(err))
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"log_config": {"log_level": "debug"},
		"comparison_config": {"max_tokens": 500, "refine_keywords": true}
	}`)

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, 500, cfg.ComparisonConfig.MaxTokens)
	assert.True(t, cfg.ComparisonConfig.RefineKeywords)
	assert.Equal(t, DefaultComparisonMinWords, cfg.ComparisonConfig.MinWords, "absent fields keep defaults")
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
log_config:
  log_level: warn
  log_format: json
comparison_config:
  group_sentences: false
  batch_concurrency: 8
reporter_config:
  format: html
  report_title: Essay feedback
`)

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogConfig.LogLevel)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
	assert.False(t, cfg.ComparisonConfig.GroupSentences)
	assert.Equal(t, 8, cfg.ComparisonConfig.BatchConcurrency)
	assert.Equal(t, "html", cfg.ReporterConfig.Format)
	assert.Equal(t, "Essay feedback", cfg.ReporterConfig.ReportTitle)
}

func TestLoadGlobalConfig_EnvPath(t *testing.T) {
	path := writeConfig(t, "custom.yml", "comparison_config:\n  max_tokens: 42\n")
	t.Setenv(ConfigPathEnv, path)

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 42, cfg.ComparisonConfig.MaxTokens)
}

func TestLoadGlobalConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "invalid.json", `{"log_config": {},}`)

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "invalid.yaml", `
log_config:
  log_level: debug
 invalid_indent: value
`)

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to unmarshal YAML")
}

func TestIsYAMLFile(t *testing.T) {
	tests := []struct {
		ext      string
		expected bool
	}{
		{".yaml", true},
		{".yml", true},
		{".json", false},
		{".txt", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.expected, isYAMLFile(tt.ext))
		})
	}
}

func TestGetConfigPath_FlagWins(t *testing.T) {
	t.Setenv(ConfigPathEnv, writeConfig(t, "env.yaml", ""))

	assert.Equal(t, "/some/flag.yaml", GetConfigPath("/some/flag.yaml"))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *GlobalConfig)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(cfg *GlobalConfig) {}},
		{name: "bad log level", mutate: func(cfg *GlobalConfig) { cfg.LogConfig.LogLevel = "loud" }, wantErr: "loglevel"},
		{name: "bad log format", mutate: func(cfg *GlobalConfig) { cfg.LogConfig.LogFormat = "xml" }, wantErr: "logformat"},
		{name: "bad report format", mutate: func(cfg *GlobalConfig) { cfg.ReporterConfig.Format = "pdf" }, wantErr: "reportformat"},
		{name: "negative max tokens", mutate: func(cfg *GlobalConfig) { cfg.ComparisonConfig.MaxTokens = -1 }, wantErr: "MaxTokens"},
		{name: "zero concurrency", mutate: func(cfg *GlobalConfig) { cfg.ComparisonConfig.BatchConcurrency = 0 }, wantErr: "BatchConcurrency"},
		{name: "zero progress interval", mutate: func(cfg *GlobalConfig) { cfg.ProgressConfig.DisplayInterval = 0 }, wantErr: "DisplayInterval"},
		{name: "upper case values accepted", mutate: func(cfg *GlobalConfig) { cfg.ReporterConfig.Format = "HTML" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
