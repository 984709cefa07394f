package differ

import (
	"unicode/utf8"

	"github.com/antzucaro/matchr"
	"github.com/aleister1102/writealign/internal/models"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// StatsCalculator computes character-level change statistics for a sentence pair
type StatsCalculator struct {
	processor *DiffProcessor
}

// NewStatsCalculator creates a new stats calculator
func NewStatsCalculator(config DiffConfig) *StatsCalculator {
	return &StatsCalculator{processor: NewDiffProcessor(config)}
}

// Calculate compares original and corrected. Insertion and deletion runs are counted on
// the cleaned diff; the Levenshtein distance is taken from the raw diff.
func (sc *StatsCalculator) Calculate(original, corrected string) models.ChangeStats {
	if original == corrected {
		return models.ChangeStats{
			Similarity:  1,
			IsIdentical: true,
		}
	}

	raw := sc.processor.RawDiff(original, corrected)
	stats := models.ChangeStats{
		Levenshtein: sc.processor.Levenshtein(raw),
		Similarity:  similarity(original, corrected),
	}

	cleaned := raw
	if sc.processor.config.EnableSemanticCleanup {
		cleaned = sc.processor.dmp.DiffCleanupSemantic(copyDiffs(raw))
	}

	for _, d := range cleaned {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			stats.Insertions++
			stats.CharsAdded += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffDelete:
			stats.Deletions++
			stats.CharsDeleted += utf8.RuneCountInString(d.Text)
		}
	}

	return stats
}

// similarity is the Jaro-Winkler score of the two texts, 0 when either side is empty
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return matchr.JaroWinkler(a, b, false)
}

func copyDiffs(diffs []diffmatchpatch.Diff) []diffmatchpatch.Diff {
	out := make([]diffmatchpatch.Diff, len(diffs))
	copy(out, diffs)
	return out
}
