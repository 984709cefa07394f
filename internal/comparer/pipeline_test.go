package comparer

import (
	"testing"

	"github.com/aleister1102/writealign/internal/models"
	"github.com/aleister1102/writealign/internal/projector"
	"github.com/aleister1102/writealign/internal/segmenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neutral(text string) models.Span {
	return models.Span{Text: text, Status: models.StatusNeutral}
}

func errSpan(text string) models.Span {
	return models.Span{Text: text, Status: models.StatusError}
}

func improvement(text string) models.Span {
	return models.Span{Text: text, Status: models.StatusImprovement}
}

func TestCompare_SingleSentenceCorrections(t *testing.T) {
	originalSpans := models.SpanList{neutral("I "), errSpan("has"), neutral(" "), errSpan("a"), neutral(" apple.")}
	correctedSpans := models.SpanList{neutral("I "), improvement("have"), neutral(" "), improvement("an"), neutral(" apple.")}

	rows := Compare("I has a apple.", "I have an apple.", originalSpans, correctedSpans)

	require.Len(t, rows, 1)
	assert.Equal(t, originalSpans, rows[0].OriginalSpans)
	assert.Equal(t, correctedSpans, rows[0].CorrectedSpans)
	assert.Equal(t, "I has a apple.", rows[0].Original)
	assert.Equal(t, "I have an apple.", rows[0].Corrected)
	assert.Equal(t, 0, rows[0].Index)
}

func TestCompare_InsertionStaysWithItsSentence(t *testing.T) {
	original := "Cats run. Dogs bark."
	corrected := "Cats run fast. Dogs bark."
	originalSpans := models.SpanList{neutral(original)}
	correctedSpans := models.SpanList{neutral("Cats run"), improvement(" fast"), neutral(". Dogs bark.")}

	rows := Compare(original, corrected, originalSpans, correctedSpans)

	require.Len(t, rows, 2)
	assert.Equal(t, models.SpanList{neutral("Cats run.")}, rows[0].OriginalSpans)
	assert.Equal(t, models.SpanList{neutral("Cats run"), improvement(" fast"), neutral(".")}, rows[0].CorrectedSpans)
	assert.Equal(t, "Cats run fast.", rows[0].Corrected)

	assert.Equal(t, models.SpanList{neutral("Dogs bark.")}, rows[1].OriginalSpans)
	assert.Equal(t, models.SpanList{neutral("Dogs bark.")}, rows[1].CorrectedSpans)
	assert.Equal(t, 1, rows[1].Index)
}

func TestCompare_EmptyCorrectedText(t *testing.T) {
	original := "One. Two. Three."
	rows := Compare(original, "", models.SpanList{errSpan(original)}, models.SpanList{})

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, models.SpanList{errSpan(segmenter.Segment(original)[i].Text(original))}, row.OriginalSpans)
		assert.Empty(t, row.CorrectedSpans)
		assert.Equal(t, "", row.Corrected)
	}
}

func TestCompare_EmptyOriginalText(t *testing.T) {
	rows := Compare("", "Something new.", models.SpanList{}, models.SpanList{improvement("Something new.")})

	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].OriginalSpans)
	assert.Empty(t, rows[0].CorrectedSpans)
}

func TestCompare_RowsCoverOriginalSentences(t *testing.T) {
	pairs := [][2]string{
		{"I has a apple. It are red!", "I have an apple. It is red!"},
		{"First line\nSecond line. Third?", "First line.\nThe second line. Third?"},
		{"Short.", "A much longer replacement sentence. With another one."},
		{"Keep this. Drop this. Keep that.", "Keep this. Keep that."},
	}

	for _, p := range pairs {
		originalSpans, correctedSpans := BuildSpans(p[0], p[1])
		rows := Compare(p[0], p[1], originalSpans, correctedSpans)
		ranges := segmenter.Segment(p[0])

		require.Len(t, rows, len(ranges))
		prevEnd := -1
		for i, row := range rows {
			assert.Equal(t, ranges[i].Text(p[0]), projector.Concat(row.OriginalSpans))
			assert.Equal(t, row.Corrected, projector.Concat(row.CorrectedSpans))
			assert.Contains(t, p[1], row.Corrected)

			for j := 1; j < len(row.CorrectedSpans); j++ {
				assert.NotEqual(t, row.CorrectedSpans[j-1].Status, row.CorrectedSpans[j].Status)
			}
			if row.Corrected != "" {
				start := indexFrom(p[1], row.Corrected, max(prevEnd, 0))
				assert.GreaterOrEqual(t, start, 0)
				prevEnd = start
			}
		}
	}
}

func TestCompare_Deterministic(t *testing.T) {
	original := "Cats run. Dogs bark."
	corrected := "Cats run fast. Dogs bark loudly."
	o, c := BuildSpans(original, corrected)

	assert.Equal(t, Compare(original, corrected, o, c), Compare(original, corrected, o, c))
}

func indexFrom(s, sub string, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
