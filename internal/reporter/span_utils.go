package reporter

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/aleister1102/writealign/internal/models"
)

// Side identifies which text of a comparison a span list belongs to.
type Side string

const (
	SideOriginal  Side = "original"
	SideCorrected Side = "corrected"
)

// SpanUtils renders span lists and row summaries for the report
type SpanUtils struct{}

// NewSpanUtils creates a new SpanUtils
func NewSpanUtils() *SpanUtils {
	return &SpanUtils{}
}

// SpanClass returns the CSS class for a span status on the given side. Errors are only
// emphasised on the original side and improvements only on the corrected side.
func (su *SpanUtils) SpanClass(status models.SpanStatus, side Side) string {
	switch {
	case side == SideOriginal && status == models.StatusError:
		return "hl-error"
	case side == SideCorrected && status == models.StatusImprovement:
		return "hl-improvement"
	default:
		return ""
	}
}

// RenderSpans creates escaped HTML for a span list. An empty list renders the placeholder.
func (su *SpanUtils) RenderSpans(spans models.SpanList, side Side) template.HTML {
	if len(spans) == 0 {
		return template.HTML(fmt.Sprintf(`<span class="placeholder">%s</span>`, EmptyPlaceholder))
	}

	var b strings.Builder
	for _, span := range spans {
		escapedText := template.HTMLEscapeString(span.Text)
		if class := su.SpanClass(span.Status, side); class != "" {
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, escapedText)
			continue
		}
		b.WriteString(escapedText)
	}
	return template.HTML(b.String())
}

// CreateRowSummary creates a short text summary of a row's change statistics
func (su *SpanUtils) CreateRowSummary(stats *models.ChangeStats) string {
	if stats == nil {
		return ""
	}
	if stats.IsIdentical {
		return "No changes."
	}
	return fmt.Sprintf("%d insertions (+%d chars), %d deletions (-%d chars), similarity %.0f%%.",
		stats.Insertions, stats.CharsAdded, stats.Deletions, stats.CharsDeleted, stats.Similarity*100)
}
