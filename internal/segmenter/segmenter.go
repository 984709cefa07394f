// Package segmenter splits original text into sentence ranges.
package segmenter

import (
	"unicode"
	"unicode/utf8"
)

// SentenceRange is a half-open byte range [Start, End) over the original text.
type SentenceRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the byte length of the range.
func (r SentenceRange) Len() int {
	return r.End - r.Start
}

// Text returns the slice of s covered by the range.
func (r SentenceRange) Text(s string) string {
	return s[r.Start:r.End]
}

// Segment splits text at '.', '!', '?' and '\n'. A sentence ends one byte past its
// terminator and the whitespace after it is skipped. Abbreviations and decimals are not
// special-cased. Empty text yields a single empty range; trailing whitespace after the
// last terminator yields no range.
func Segment(text string) []SentenceRange {
	if text == "" {
		return []SentenceRange{{Start: 0, End: 0}}
	}

	var ranges []SentenceRange
	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminator(text[i]) {
			continue
		}
		ranges = append(ranges, SentenceRange{Start: start, End: i + 1})
		start = skipSpace(text, i+1)
		i = start - 1
	}
	if start < len(text) {
		ranges = append(ranges, SentenceRange{Start: start, End: len(text)})
	}
	return ranges
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?' || b == '\n'
}

// skipSpace returns the first offset at or after i that does not start a whitespace rune.
func skipSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}
