package models

// CorrectionCategory classifies a correction.
type CorrectionCategory string

const (
	CategoryGrammar     CorrectionCategory = "grammar"
	CategoryVocabulary  CorrectionCategory = "vocabulary"
	CategoryStyle       CorrectionCategory = "style"
	CategoryPunctuation CorrectionCategory = "punctuation"
	CategoryStructure   CorrectionCategory = "structure"
)

// CorrectionSeverity ranks a correction.
type CorrectionSeverity string

const (
	SeverityMinor    CorrectionSeverity = "minor"
	SeverityModerate CorrectionSeverity = "moderate"
	SeverityMajor    CorrectionSeverity = "major"
)

// Categories lists every known category in display order.
var Categories = []CorrectionCategory{
	CategoryGrammar,
	CategoryVocabulary,
	CategoryStyle,
	CategoryPunctuation,
	CategoryStructure,
}

// Severities lists every known severity in display order.
var Severities = []CorrectionSeverity{
	SeverityMinor,
	SeverityModerate,
	SeverityMajor,
}

// Position is a character range in the original text.
type Position struct {
	Start int `json:"start" yaml:"start" validate:"min=0"`
	End   int `json:"end" yaml:"end" validate:"gtefield=Start"`
}

// Correction describes one edit suggested by the grading step. Field names follow the
// grader's payload.
type Correction struct {
	ID            string             `json:"id" yaml:"id"`
	OriginalText  string             `json:"originalText" yaml:"originalText"`
	CorrectedText string             `json:"correctedText" yaml:"correctedText"`
	Category      CorrectionCategory `json:"category" yaml:"category" validate:"omitempty,oneof=grammar vocabulary style punctuation structure"`
	Severity      CorrectionSeverity `json:"severity" yaml:"severity" validate:"omitempty,oneof=minor moderate major"`
	Explanation   string             `json:"explanation" yaml:"explanation"`
	Example       string             `json:"example,omitempty" yaml:"example,omitempty"`
	Position      Position           `json:"position" yaml:"position"`
}

// CorrectionSummary aggregates corrections by category and severity.
type CorrectionSummary struct {
	TotalCorrections int            `json:"totalCorrections" yaml:"totalCorrections"`
	ByCategory       map[string]int `json:"byCategory" yaml:"byCategory"`
	BySeverity       map[string]int `json:"bySeverity" yaml:"bySeverity"`
}
