package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single word", input: "apple", expected: []string{"apple"}},
		{name: "sentence", input: "I has a apple.", expected: []string{"I", " ", "has", " ", "a", " ", "apple", "."}},
		{name: "whitespace runs collapse", input: "a  \n\tb", expected: []string{"a", "  \n\t", "b"}},
		{name: "punctuation is split per character", input: "wait?!", expected: []string{"wait", "?", "!"}},
		{name: "underscore and digits are word characters", input: "snake_case 42x", expected: []string{"snake_case", " ", "42x"}},
		{name: "apostrophe splits a contraction", input: "don't", expected: []string{"don", "'", "t"}},
		{name: "non ascii letters are symbols", input: "café", expected: []string{"caf", "é"}},
		{name: "leading whitespace", input: " hi", expected: []string{" ", "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if tt.expected == nil {
				assert.Empty(t, tokens)
				return
			}
			assert.Equal(t, tt.expected, Texts(tokens))
		})
	}
}

func TestTokenize_PartitionsInput(t *testing.T) {
	inputs := []string{
		"Cats run. Dogs bark.",
		"  Leading and trailing  ",
		"Multi-line\ntext, with: punctuation; and émojis 🙂!",
		"\xff\xfe invalid utf8",
	}

	for _, input := range inputs {
		tokens := Tokenize(input)
		var b strings.Builder
		prevEnd := 0
		for _, tok := range tokens {
			require.Equal(t, prevEnd, tok.Start, "tokens must be contiguous in %q", input)
			require.Equal(t, tok.End-tok.Start, len(tok.Text))
			require.Equal(t, input[tok.Start:tok.End], tok.Text)
			prevEnd = tok.End
			b.WriteString(tok.Text)
		}
		assert.Equal(t, len(input), prevEnd)
		assert.Equal(t, input, b.String())
	}
}

func TestTokenize_Offsets(t *testing.T) {
	tokens := Tokenize("Hi, you")

	require.Len(t, tokens, 4)
	assert.Equal(t, Token{Text: "Hi", Start: 0, End: 2}, tokens[0])
	assert.Equal(t, Token{Text: ",", Start: 2, End: 3}, tokens[1])
	assert.Equal(t, Token{Text: " ", Start: 3, End: 4}, tokens[2])
	assert.Equal(t, Token{Text: "you", Start: 4, End: 7}, tokens[3])
}

func TestTokenize_Deterministic(t *testing.T) {
	input := "The same input, twice."
	assert.Equal(t, Tokenize(input), Tokenize(input))
}
