package differ

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffProcessor runs character-level diffs with diff-match-patch
type DiffProcessor struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config DiffConfig
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor(config DiffConfig) *DiffProcessor {
	dmp := diffmatchpatch.New()
	if config.Timeout > 0 {
		dmp.DiffTimeout = config.Timeout
	}
	return &DiffProcessor{
		dmp:    dmp,
		config: config,
	}
}

// ProcessDiff generates diff between two strings, applying semantic cleanup when enabled
func (dp *DiffProcessor) ProcessDiff(text1, text2 string) []diffmatchpatch.Diff {
	diffs := dp.RawDiff(text1, text2)

	if dp.config.EnableSemanticCleanup {
		diffs = dp.dmp.DiffCleanupSemantic(diffs)
	}

	return diffs
}

// RawDiff generates the uncleaned diff between two strings
func (dp *DiffProcessor) RawDiff(text1, text2 string) []diffmatchpatch.Diff {
	return dp.dmp.DiffMain(text1, text2, dp.config.EnableLineBasedDiff)
}

// Levenshtein returns the edit distance in runes described by diffs
func (dp *DiffProcessor) Levenshtein(diffs []diffmatchpatch.Diff) int {
	return dp.dmp.DiffLevenshtein(diffs)
}
