package logger

import (
	"github.com/rs/zerolog"
)

// ConfigConverter converts FileLogConfig to LoggerConfig
type ConfigConverter struct {
	levelParser  *LogLevelParser
	formatParser *LogFormatParser
}

// NewConfigConverter creates a new config converter
func NewConfigConverter() *ConfigConverter {
	return &ConfigConverter{
		levelParser:  NewLogLevelParser(),
		formatParser: NewLogFormatParser(),
	}
}

// ConvertConfig converts file config to logger config. An unknown level falls back to info
// and is reported through the returned error.
func (cc *ConfigConverter) ConvertConfig(cfg FileLogConfig) (LoggerConfig, error) {
	base := DefaultLoggerConfig()

	level, err := cc.levelParser.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	base.Level = level
	base.Format = cc.formatParser.ParseFormat(cfg.LogFormat)
	base.EnableFile = cfg.LogFile != ""
	base.FilePath = cfg.LogFile
	base.MaxSizeMB = cc.getMaxSizeMB(cfg.MaxLogSizeMB)
	base.MaxBackups = cc.getMaxBackups(cfg.MaxLogBackups)

	return base, err
}

// getMaxSizeMB returns max size with default fallback
func (cc *ConfigConverter) getMaxSizeMB(maxSize int) int {
	if maxSize <= 0 {
		return DefaultMaxLogSizeMB
	}
	return maxSize
}

// getMaxBackups returns max backups with default fallback
func (cc *ConfigConverter) getMaxBackups(maxBackups int) int {
	if maxBackups <= 0 {
		return DefaultMaxLogBackups
	}
	return maxBackups
}
