package comparer

import (
	"strings"
	"unicode"

	"github.com/aleister1102/writealign/internal/models"
	"github.com/aleister1102/writealign/internal/projector"
)

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`the a an and or but if then so because as of to in on at by for
		with about into over after before from is are was were be been being it its this that
		these those their there here also very much more most many few some any than both either
		neither not no do does did can could should would may might will shall i you he she we
		they one two three`) {
		stopwords[w] = struct{}{}
	}
}

// RefineKeywords narrows long highlights to their key words. A highlighted span with at
// least minWords whitespace-separated words is split into pieces; only words that are not
// stopwords and have at least minKeywordLen letters keep the status, everything else
// becomes neutral. The result annotates the same text.
func RefineKeywords(spans models.SpanList, minWords, minKeywordLen int) models.SpanList {
	out := make(models.SpanList, 0, len(spans))
	for _, span := range spans {
		if !span.Status.IsHighlighted() || len(strings.Fields(span.Text)) < minWords {
			out = append(out, span)
			continue
		}
		for _, piece := range splitWords(span.Text) {
			status := models.StatusNeutral
			if piece.word && isKeyword(piece.text, minKeywordLen) {
				status = span.Status
			}
			out = append(out, models.Span{Text: piece.text, Status: status})
		}
	}
	return projector.Merge(out)
}

type textPiece struct {
	text string
	word bool
}

// splitWords cuts text into whitespace runs and non-whitespace runs, separating leading
// and trailing punctuation from each non-whitespace run.
func splitWords(text string) []textPiece {
	var pieces []textPiece
	for len(text) > 0 {
		end := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) })
		if end != 0 {
			if end < 0 {
				end = len(text)
			}
			pieces = append(pieces, textPiece{text: text[:end]})
			text = text[end:]
			continue
		}

		end = strings.IndexFunc(text, unicode.IsSpace)
		if end < 0 {
			end = len(text)
		}
		pieces = append(pieces, splitPunctuation(text[:end])...)
		text = text[end:]
	}
	return pieces
}

// splitPunctuation separates the outer non-word characters of a whitespace-free run.
func splitPunctuation(run string) []textPiece {
	start := strings.IndexFunc(run, isWordChar)
	if start < 0 {
		return []textPiece{{text: run}}
	}
	end := strings.LastIndexFunc(run, isWordChar) + 1

	var pieces []textPiece
	if start > 0 {
		pieces = append(pieces, textPiece{text: run[:start]})
	}
	pieces = append(pieces, textPiece{text: run[start:end], word: true})
	if end < len(run) {
		pieces = append(pieces, textPiece{text: run[end:]})
	}
	return pieces
}

// isKeyword lowercases word, keeps only letters, apostrophes and hyphens, and checks the
// result against the stopword list and minimum length.
func isKeyword(word string, minLen int) bool {
	normalized := strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || r == '\'' || r == '-' {
			return r
		}
		return -1
	}, word)
	if normalized == "" {
		return false
	}
	if _, stop := stopwords[normalized]; stop {
		return false
	}
	return len(normalized) >= minLen
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
