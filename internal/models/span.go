package models

import (
	"fmt"
	"strings"
)

// SpanStatus represents the highlight status of a span of text.
type SpanStatus string

const (
	// StatusError marks text in the original writing that was changed or removed.
	StatusError SpanStatus = "error"
	// StatusImprovement marks text in the corrected writing that was added or changed.
	StatusImprovement SpanStatus = "improvement"
	// StatusNeutral marks unchanged text.
	StatusNeutral SpanStatus = "neutral"
)

// ParseSpanStatus parses a wire status. "suggestion" and "enhancement" are accepted as
// aliases of error and improvement, and an empty status is neutral.
func ParseSpanStatus(s string) (SpanStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "suggestion":
		return StatusError, nil
	case "improvement", "enhancement":
		return StatusImprovement, nil
	case "neutral", "":
		return StatusNeutral, nil
	default:
		return "", fmt.Errorf("unknown span status %q", s)
	}
}

// IsHighlighted reports whether the status is rendered with emphasis.
func (s SpanStatus) IsHighlighted() bool {
	return s == StatusError || s == StatusImprovement
}

// UnmarshalText implements encoding.TextUnmarshaler for both JSON and YAML decoding.
func (s *SpanStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseSpanStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Span is a contiguous piece of text tagged with a status.
type Span struct {
	Text   string     `json:"text" yaml:"text"`
	Status SpanStatus `json:"status" yaml:"status" validate:"omitempty,oneof=error improvement neutral"`
}

// SpanList is an ordered list of spans. It is valid for a string S when the
// concatenation of its texts equals S exactly.
type SpanList []Span

// Text returns the concatenation of all span texts.
func (sl SpanList) Text() string {
	var b strings.Builder
	for _, s := range sl {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Len returns the total byte length of the spans.
func (sl SpanList) Len() int {
	n := 0
	for _, s := range sl {
		n += len(s.Text)
	}
	return n
}

// HasHighlights reports whether any span carries an error or improvement status.
func (sl SpanList) HasHighlights() bool {
	for _, s := range sl {
		if s.Status.IsHighlighted() {
			return true
		}
	}
	return false
}
