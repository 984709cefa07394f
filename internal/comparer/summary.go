package comparer

import "github.com/aleister1102/writealign/internal/models"

// Summarize counts corrections by category and severity. Every known category and severity
// is present in the result; unknown values are counted under their own key.
func Summarize(corrections []models.Correction) models.CorrectionSummary {
	summary := models.CorrectionSummary{
		TotalCorrections: len(corrections),
		ByCategory:       make(map[string]int, len(models.Categories)),
		BySeverity:       make(map[string]int, len(models.Severities)),
	}
	for _, c := range models.Categories {
		summary.ByCategory[string(c)] = 0
	}
	for _, s := range models.Severities {
		summary.BySeverity[string(s)] = 0
	}

	for _, c := range corrections {
		if c.Category != "" {
			summary.ByCategory[string(c.Category)]++
		}
		if c.Severity != "" {
			summary.BySeverity[string(c.Severity)]++
		}
	}
	return summary
}
