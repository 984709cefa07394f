package reporter

import (
	"html/template"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/aleister1102/writealign/internal/models"
)

// titleCase converts string to title case
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// GetCommonTemplateFunctions returns common functions for templates
func GetCommonTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"title": titleCase,
		"inc": func(i int) int {
			return i + 1
		},
		"formatTime": func(t time.Time, layout string) string {
			if t.IsZero() {
				return "N/A"
			}
			return t.Format(layout)
		},
	}
}

// GetComparisonTemplateFunctions returns functions specific to the comparison template
func GetComparisonTemplateFunctions() template.FuncMap {
	funcMap := GetCommonTemplateFunctions()
	utils := NewSpanUtils()

	funcMap["renderOriginal"] = func(spans models.SpanList) template.HTML {
		return utils.RenderSpans(spans, SideOriginal)
	}
	funcMap["renderCorrected"] = func(spans models.SpanList) template.HTML {
		return utils.RenderSpans(spans, SideCorrected)
	}
	funcMap["rowSummary"] = utils.CreateRowSummary

	return funcMap
}

// countEntry is one key of a count map in display order
type countEntry struct {
	Key   string
	Count int
}

// sortedCounts orders known keys first, then any others alphabetically
func sortedCounts(counts map[string]int, known []string) []countEntry {
	entries := make([]countEntry, 0, len(counts))
	seen := make(map[string]bool, len(known))
	for _, k := range known {
		seen[k] = true
		entries = append(entries, countEntry{Key: k, Count: counts[k]})
	}

	var extra []string
	for k := range counts {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		entries = append(entries, countEntry{Key: k, Count: counts[k]})
	}
	return entries
}
