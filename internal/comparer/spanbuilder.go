package comparer

import (
	"strings"

	"github.com/aleister1102/writealign/internal/differ"
	"github.com/aleister1102/writealign/internal/models"
	"github.com/aleister1102/writealign/internal/projector"
	"github.com/aleister1102/writealign/internal/tokenizer"
)

// BuildSpans derives annotations for both texts from their token diff: unchanged runs are
// neutral, deleted runs are errors in the original and inserted runs are improvements in
// the corrected text.
func BuildSpans(original, corrected string) (models.SpanList, models.SpanList) {
	a := tokenizer.Texts(tokenizer.Tokenize(original))
	b := tokenizer.Texts(tokenizer.Tokenize(corrected))
	return spansFromScript(differ.Diff(a, b))
}

func spansFromScript(script []differ.EditOp) (models.SpanList, models.SpanList) {
	var originalSpans, correctedSpans models.SpanList
	for _, op := range script {
		switch op.Kind {
		case differ.Equal:
			text := strings.Join(op.A, "")
			originalSpans = append(originalSpans, models.Span{Text: text, Status: models.StatusNeutral})
			correctedSpans = append(correctedSpans, models.Span{Text: text, Status: models.StatusNeutral})
		case differ.Delete:
			originalSpans = append(originalSpans, models.Span{Text: strings.Join(op.A, ""), Status: models.StatusError})
		case differ.Insert:
			correctedSpans = append(correctedSpans, models.Span{Text: strings.Join(op.B, ""), Status: models.StatusImprovement})
		}
	}
	return projector.Merge(originalSpans), projector.Merge(correctedSpans)
}
