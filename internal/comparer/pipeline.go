// Package comparer aligns original and corrected writing sentence by sentence.
package comparer

import (
	"context"
	"sort"

	"github.com/aleister1102/writealign/internal/aligner"
	"github.com/aleister1102/writealign/internal/differ"
	"github.com/aleister1102/writealign/internal/models"
	"github.com/aleister1102/writealign/internal/projector"
	"github.com/aleister1102/writealign/internal/segmenter"
	"github.com/aleister1102/writealign/internal/tokenizer"
)

// Compare splits original into sentences and pairs each with the corrected tokens aligned
// to it. Both span lists are projected onto each pair. Rows follow sentence order.
func Compare(original, corrected string, originalSpans, correctedSpans models.SpanList) []models.ComparisonRow {
	p := newPipeline(original, corrected)
	p.diff(nil)
	rows, _ := p.rows(context.Background(), originalSpans, correctedSpans)
	return rows
}

// pipeline holds the per-invocation state shared by every sentence row.
type pipeline struct {
	original  string
	corrected string
	tokA      []tokenizer.Token
	tokB      []tokenizer.Token
	script    []differ.EditOp
	alignment aligner.AlignmentMap
}

func newPipeline(original, corrected string) *pipeline {
	return &pipeline{
		original:  original,
		corrected: corrected,
		tokA:      tokenizer.Tokenize(original),
		tokB:      tokenizer.Tokenize(corrected),
	}
}

// tokenCount returns the combined token count of both sides
func (p *pipeline) tokenCount() int {
	return len(p.tokA) + len(p.tokB)
}

// diff computes the edit script and alignment. A non-nil script is used as given.
func (p *pipeline) diff(script []differ.EditOp) {
	if script == nil {
		script = differ.Diff(tokenizer.Texts(p.tokA), tokenizer.Texts(p.tokB))
	}
	p.script = script
	p.alignment = aligner.Align(script)
}

// rows builds one row per sentence, stopping early if ctx is cancelled.
func (p *pipeline) rows(ctx context.Context, originalSpans, correctedSpans models.SpanList) ([]models.ComparisonRow, error) {
	ranges := segmenter.Segment(p.original)
	rows := make([]models.ComparisonRow, 0, len(ranges))

	for i, r := range ranges {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		cStart, cEnd := p.correctedRange(r)
		rows = append(rows, models.ComparisonRow{
			Index:          i,
			Original:       p.original[r.Start:r.End],
			Corrected:      p.corrected[cStart:cEnd],
			OriginalSpans:  projector.Project(originalSpans, r.Start, r.End),
			CorrectedSpans: projector.Project(correctedSpans, cStart, cEnd),
		})
	}
	return rows, nil
}

// correctedRange returns the byte range of the corrected text aligned to sentence r.
// An empty range (0, 0) means nothing in the corrected text belongs to it.
func (p *pipeline) correctedRange(r segmenter.SentenceRange) (int, int) {
	aStart, aEnd, ok := overlappingTokens(p.tokA, r)
	if !ok {
		return 0, 0
	}

	indices := p.alignment.CorrectedIndices(aStart, aEnd)
	if len(indices) == 0 {
		return 0, 0
	}

	first, last := indices[0], indices[len(indices)-1]
	return p.tokB[first].Start, p.tokB[last].End
}

// overlappingTokens finds the contiguous token index range [aStart, aEnd] intersecting r.
func overlappingTokens(tokens []tokenizer.Token, r segmenter.SentenceRange) (int, int, bool) {
	aStart := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].End > r.Start
	})
	aEnd := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].Start >= r.End
	}) - 1

	if aStart >= len(tokens) || aEnd < aStart {
		return 0, 0, false
	}
	return aStart, aEnd, true
}
