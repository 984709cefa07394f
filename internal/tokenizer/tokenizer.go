// Package tokenizer splits text into positioned word, whitespace and symbol tokens.
package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// Token is a classified substring of the source with its byte offsets.
// End-Start always equals len(Text).
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type tokenClass int

const (
	classWord tokenClass = iota
	classSpace
	classSymbol
)

// Tokenize scans input left to right. Each maximal run of [A-Za-z0-9_] is one token,
// each maximal run of whitespace is one token, and every other rune is a token of its own.
// The returned tokens partition input exactly.
func Tokenize(input string) []Token {
	if input == "" {
		return nil
	}

	tokens := make([]Token, 0, len(input)/2+1)
	start := 0
	for start < len(input) {
		r, size := utf8.DecodeRuneInString(input[start:])
		class := classify(r)
		end := start + size

		if class != classSymbol {
			for end < len(input) {
				next, nextSize := utf8.DecodeRuneInString(input[end:])
				if classify(next) != class {
					break
				}
				end += nextSize
			}
		}

		tokens = append(tokens, Token{Text: input[start:end], Start: start, End: end})
		start = end
	}
	return tokens
}

// Texts returns the text of each token, in order.
func Texts(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}
	return texts
}

func classify(r rune) tokenClass {
	switch {
	case isWordRune(r):
		return classWord
	case unicode.IsSpace(r):
		return classSpace
	default:
		return classSymbol
	}
}

// isWordRune matches the ASCII word class; letters outside ASCII are symbols.
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
