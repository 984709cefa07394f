package comparer

import (
	"testing"

	"github.com/aleister1102/writealign/internal/models"
	"github.com/aleister1102/writealign/internal/projector"
	"github.com/stretchr/testify/assert"
)

func TestBuildSpans(t *testing.T) {
	originalSpans, correctedSpans := BuildSpans("I has a apple.", "I have an apple.")

	assert.Equal(t, models.SpanList{neutral("I "), errSpan("has"), neutral(" "), errSpan("a"), neutral(" apple.")}, originalSpans)
	assert.Equal(t, models.SpanList{neutral("I "), improvement("have"), neutral(" "), improvement("an"), neutral(" apple.")}, correctedSpans)
}

func TestBuildSpans_Validity(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"", "Added."},
		{"Removed.", ""},
		{"The cat sat on the mat.", "A cat was sitting on a mat!"},
		{"Unchanged text.", "Unchanged text."},
	}

	for _, p := range pairs {
		originalSpans, correctedSpans := BuildSpans(p[0], p[1])
		assert.True(t, projector.IsValidFor(originalSpans, p[0]), "original %q", p[0])
		assert.True(t, projector.IsValidFor(correctedSpans, p[1]), "corrected %q", p[1])
		assert.Equal(t, projector.Merge(originalSpans), originalSpans)
		assert.Equal(t, projector.Merge(correctedSpans), correctedSpans)
	}
}

func TestBuildSpans_IdenticalTextsAreNeutral(t *testing.T) {
	originalSpans, correctedSpans := BuildSpans("Unchanged text.", "Unchanged text.")

	assert.Equal(t, models.SpanList{neutral("Unchanged text.")}, originalSpans)
	assert.Equal(t, originalSpans, correctedSpans)
	assert.False(t, originalSpans.HasHighlights())
}
