package comparer

import (
	"testing"

	"github.com/aleister1102/writealign/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	corrections := []models.Correction{
		{ID: "1", Category: models.CategoryGrammar, Severity: models.SeverityMajor},
		{ID: "2", Category: models.CategoryGrammar, Severity: models.SeverityMinor},
		{ID: "3", Category: models.CategoryVocabulary, Severity: models.SeverityMinor},
		{ID: "4"},
	}

	summary := Summarize(corrections)

	assert.Equal(t, 4, summary.TotalCorrections)
	assert.Equal(t, map[string]int{"grammar": 2, "vocabulary": 1, "style": 0, "punctuation": 0, "structure": 0}, summary.ByCategory)
	assert.Equal(t, map[string]int{"minor": 2, "moderate": 0, "major": 1}, summary.BySeverity)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.TotalCorrections)
	assert.Len(t, summary.ByCategory, len(models.Categories))
	assert.Len(t, summary.BySeverity, len(models.Severities))
	for _, count := range summary.ByCategory {
		assert.Zero(t, count)
	}
}
