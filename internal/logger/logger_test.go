package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/writealign/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	_, err := New(NewDefaultFileLogConfig())
	require.NoError(t, err)
}

func TestLoggerBuilder_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewDefaultFileLogConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"

	l, err := NewLoggerBuilder().WithOutput(&buf).WithConfig(cfg).Build()
	require.NoError(t, err)

	l.GetZerolog().Debug().Str("component", "test").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestLoggerBuilder_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewDefaultFileLogConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	l, err := NewLoggerBuilder().WithOutput(&buf).WithConfig(cfg).Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.GetZerolog().Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestLoggerBuilder_InvalidLevel(t *testing.T) {
	cfg := NewDefaultFileLogConfig()
	cfg.LogLevel = "loud"

	_, err := NewLoggerBuilder().WithConfig(cfg).Build()
	assert.Error(t, err)
}

func TestLoggerBuilder_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "writealign.log")
	cfg := NewDefaultFileLogConfig()
	cfg.LogFile = path
	cfg.LogFormat = "json"

	var console bytes.Buffer
	l, err := NewLoggerBuilder().WithOutput(&console).WithConfig(cfg).Build()
	require.NoError(t, err)
	assert.True(t, l.Config().EnableFile)

	l.GetZerolog().Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, console.String(), "to file")
}

func TestLoggerBuilder_ValidateConfig(t *testing.T) {
	b := NewLoggerBuilder()
	b.config.EnableFile = true
	b.config.FilePath = ""

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestConfigConverter_ConvertConfig(t *testing.T) {
	cc := NewConfigConverter()

	got, err := cc.ConvertConfig(FileLogConfig{LogLevel: "ERROR", LogFormat: "text"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, got.Level)
	assert.Equal(t, FormatText, got.Format)
	assert.False(t, got.EnableFile)
	assert.Equal(t, DefaultMaxLogSizeMB, got.MaxSizeMB)
	assert.Equal(t, DefaultMaxLogBackups, got.MaxBackups)
}

func TestLogFormatParser_ParseFormat(t *testing.T) {
	p := NewLogFormatParser()

	tests := []struct {
		input    string
		expected LogFormat
	}{
		{input: "json", expected: FormatJSON},
		{input: "CONSOLE", expected: FormatConsole},
		{input: "text", expected: FormatText},
		{input: "", expected: FormatConsole},
		{input: "xml", expected: FormatConsole},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.ParseFormat(tt.input))
		})
	}
}
