package config

const (
	// ConfigPathEnv names the environment variable consulted for the config file path
	ConfigPathEnv = "WRITEALIGN_CONFIG_PATH"

	// Comparison Defaults
	DefaultComparisonMaxTokens        = 20000
	DefaultComparisonRebuildMalformed = true
	DefaultComparisonRefineKeywords   = false
	DefaultComparisonMinWords         = 4
	DefaultComparisonMinKeywordLen    = 4
	DefaultComparisonGroupSentences   = true
	DefaultComparisonComputeStats     = true
	DefaultComparisonBatchConcurrency = 4
	DefaultDiffTimeoutMs              = 1000

	// Reporter Defaults
	DefaultReporterFormat = "json"
	DefaultReporterTitle  = "Writing Comparison"

	// Progress Defaults
	DefaultProgressDisplayInterval = 3
	DefaultProgressEnabled         = true
	DefaultProgressShowETA         = true

	// Config file limits
	MaxConfigFileSize = 10 * 1024 * 1024
)
