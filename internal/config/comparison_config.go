package config

// ComparisonConfig defines how requests are compared
type ComparisonConfig struct {
	// MaxTokens caps the combined token count of both texts; 0 disables the cap.
	MaxTokens             int  `json:"max_tokens" yaml:"max_tokens" validate:"min=0"`
	RebuildMalformedSpans bool `json:"rebuild_malformed_spans" yaml:"rebuild_malformed_spans"`
	RefineKeywords        bool `json:"refine_keywords" yaml:"refine_keywords"`
	MinWords              int  `json:"min_words,omitempty" yaml:"min_words,omitempty" validate:"min=1"`
	MinKeywordLen         int  `json:"min_keyword_len,omitempty" yaml:"min_keyword_len,omitempty" validate:"min=1"`
	GroupSentences        bool `json:"group_sentences" yaml:"group_sentences"`
	ComputeStats          bool `json:"compute_stats" yaml:"compute_stats"`
	BatchConcurrency      int  `json:"batch_concurrency,omitempty" yaml:"batch_concurrency,omitempty" validate:"min=1,max=256"`
	DiffTimeoutMs         int  `json:"diff_timeout_ms,omitempty" yaml:"diff_timeout_ms,omitempty" validate:"min=0"`
}

// NewDefaultComparisonConfig creates default comparison configuration
func NewDefaultComparisonConfig() ComparisonConfig {
	return ComparisonConfig{
		MaxTokens:             DefaultComparisonMaxTokens,
		RebuildMalformedSpans: DefaultComparisonRebuildMalformed,
		RefineKeywords:        DefaultComparisonRefineKeywords,
		MinWords:              DefaultComparisonMinWords,
		MinKeywordLen:         DefaultComparisonMinKeywordLen,
		GroupSentences:        DefaultComparisonGroupSentences,
		ComputeStats:          DefaultComparisonComputeStats,
		BatchConcurrency:      DefaultComparisonBatchConcurrency,
		DiffTimeoutMs:         DefaultDiffTimeoutMs,
	}
}
