// Package projector restricts span lists to byte ranges of the text they annotate.
package projector

import (
	"fmt"

	"github.com/aleister1102/writealign/internal/common"
	"github.com/aleister1102/writealign/internal/models"
)

// Project returns the spans covering [start, end) of the text spans annotates, cutting
// spans at the range bounds and merging neighbours with equal status. Bounds outside the
// text are clamped and an empty or inverted range yields an empty list.
func Project(spans models.SpanList, start, end int) models.SpanList {
	total := spans.Len()
	start = max(start, 0)
	end = min(end, total)
	if start >= end {
		return models.SpanList{}
	}

	out := make(models.SpanList, 0, len(spans))
	offset := 0
	for _, span := range spans {
		spanStart, spanEnd := offset, offset+len(span.Text)
		offset = spanEnd
		if spanEnd <= start {
			continue
		}
		if spanStart >= end {
			break
		}

		from := max(spanStart, start) - spanStart
		to := min(spanEnd, end) - spanStart
		out = appendMerged(out, models.Span{Text: span.Text[from:to], Status: span.Status})
	}
	return out
}

// Merge normalises a span list: empty spans are dropped and adjacent spans with the same
// status are joined. The concatenated text is unchanged.
func Merge(spans models.SpanList) models.SpanList {
	out := make(models.SpanList, 0, len(spans))
	for _, span := range spans {
		out = appendMerged(out, span)
	}
	return out
}

// Concat returns the text annotated by spans.
func Concat(spans models.SpanList) string {
	return spans.Text()
}

// IsValidFor reports whether spans concatenate to exactly s.
func IsValidFor(spans models.SpanList, s string) bool {
	if spans.Len() != len(s) {
		return false
	}
	offset := 0
	for _, span := range spans {
		if s[offset:offset+len(span.Text)] != span.Text {
			return false
		}
		offset += len(span.Text)
	}
	return true
}

// ValidateRange checks that [start, end) is a well-formed range within a text of the given length.
func ValidateRange(start, end, length int) error {
	switch {
	case start < 0:
		return common.NewValidationError("start", start, "range start must not be negative")
	case end < start:
		return common.NewValidationError("end", end, fmt.Sprintf("range end must not precede start %d", start))
	case end > length:
		return common.NewValidationError("end", end, fmt.Sprintf("range end exceeds text length %d", length))
	}
	return nil
}

func appendMerged(out models.SpanList, span models.Span) models.SpanList {
	if span.Text == "" {
		return out
	}
	if last := len(out) - 1; last >= 0 && out[last].Status == span.Status {
		out[last].Text += span.Text
		return out
	}
	return append(out, span)
}
