package models

// SentenceGroup labels the part of an essay a sentence belongs to.
type SentenceGroup string

const (
	GroupIntro      SentenceGroup = "intro"
	GroupBody       SentenceGroup = "body"
	GroupConclusion SentenceGroup = "conclusion"
)

// ChangeStats holds character-level change statistics for one sentence pair.
type ChangeStats struct {
	Insertions   int     `json:"insertions"`
	Deletions    int     `json:"deletions"`
	CharsAdded   int     `json:"chars_added"`
	CharsDeleted int     `json:"chars_deleted"`
	Levenshtein  int     `json:"levenshtein"`
	Similarity   float64 `json:"similarity"`
	IsIdentical  bool    `json:"is_identical"`
}

// ComparisonRow is one aligned sentence pair ready for rendering. An empty span list
// means the side has no content for this sentence.
type ComparisonRow struct {
	Index          int           `json:"index"`
	Original       string        `json:"original"`
	Corrected      string        `json:"corrected"`
	OriginalSpans  SpanList      `json:"original_spans"`
	CorrectedSpans SpanList      `json:"corrected_spans"`
	Group          SentenceGroup `json:"group,omitempty"`
	Stats          *ChangeStats  `json:"stats,omitempty"`
}

// RowGroup is a contiguous run of rows [Start, End) sharing a label.
type RowGroup struct {
	Label SentenceGroup `json:"label"`
	Start int           `json:"start"`
	End   int           `json:"end"`
}

// Size returns the number of rows in the group.
func (g RowGroup) Size() int {
	return g.End - g.Start
}

// ComparisonRequest is the input envelope for a comparison. Texts may be omitted when
// the matching span list is present; the text is then rebuilt from the spans.
type ComparisonRequest struct {
	OriginalText   string             `json:"original_text" yaml:"original_text"`
	CorrectedText  string             `json:"corrected_text" yaml:"corrected_text"`
	OriginalSpans  SpanList           `json:"original_spans,omitempty" yaml:"original_spans,omitempty" validate:"omitempty,dive"`
	CorrectedSpans SpanList           `json:"corrected_spans,omitempty" yaml:"corrected_spans,omitempty" validate:"omitempty,dive"`
	Corrections    []Correction       `json:"corrections,omitempty" yaml:"corrections,omitempty" validate:"omitempty,dive"`
	Summary        *CorrectionSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Title          string             `json:"title,omitempty" yaml:"title,omitempty"`
}

// ComparisonResult holds the structured output of a comparison.
type ComparisonResult struct {
	Title            string            `json:"title,omitempty"`
	Rows             []ComparisonRow   `json:"rows"`
	Groups           []RowGroup        `json:"groups,omitempty"`
	OriginalSpans    SpanList          `json:"original_spans"`
	CorrectedSpans   SpanList          `json:"corrected_spans"`
	Corrections      []Correction      `json:"corrections"`
	Summary          CorrectionSummary `json:"summary"`
	Warnings         []string          `json:"warnings,omitempty"`
	ProcessingTimeMs int64             `json:"processing_time_ms"`
}
