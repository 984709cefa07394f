// Package reporter renders comparison results for people and machines.
package reporter

import (
	"io"
	"strings"

	"github.com/aleister1102/writealign/internal/common"
	"github.com/aleister1102/writealign/internal/config"
	"github.com/aleister1102/writealign/internal/models"
	"github.com/rs/zerolog"
)

// Reporter renders a comparison result
type Reporter interface {
	Render(w io.Writer, result *models.ComparisonResult) error
	WriteReport(outputPath string, result *models.ComparisonResult) error
}

// NewReporter creates the reporter matching cfg.Format. An empty format selects JSON.
func NewReporter(cfg config.ReporterConfig, logger zerolog.Logger) (Reporter, error) {
	switch strings.ToLower(cfg.Format) {
	case "", FormatJSON:
		return NewJSONReporter(logger), nil
	case FormatHTML:
		htmlReporter, err := NewHTMLReporter(cfg, logger)
		if err != nil {
			return nil, err
		}
		return htmlReporter, nil
	default:
		return nil, common.NewConfigurationError("reporter_config", "format", "unsupported report format "+cfg.Format)
	}
}
