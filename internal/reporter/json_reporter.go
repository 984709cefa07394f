package reporter

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/aleister1102/writealign/internal/common"
	"github.com/aleister1102/writealign/internal/models"
	"github.com/rs/zerolog"
)

// JSONReporter writes comparison results as indented JSON
type JSONReporter struct {
	logger      zerolog.Logger
	fileManager *common.FileManager
}

// NewJSONReporter creates a new JSONReporter
func NewJSONReporter(logger zerolog.Logger) *JSONReporter {
	reporterLogger := logger.With().Str("component", "JSONReporter").Logger()
	return &JSONReporter{
		logger:      reporterLogger,
		fileManager: common.NewFileManager(reporterLogger),
	}
}

// Render encodes result to w
func (r *JSONReporter) Render(w io.Writer, result *models.ComparisonResult) error {
	if result == nil {
		return common.NewValidationError("result", nil, "comparison result cannot be nil")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(result); err != nil {
		return common.WrapError(err, "failed to encode comparison result")
	}
	return nil
}

// WriteReport encodes result and writes it to outputPath
func (r *JSONReporter) WriteReport(outputPath string, result *models.ComparisonResult) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, result); err != nil {
		return err
	}
	if err := writeReportFile(r.fileManager, outputPath, buf.Bytes()); err != nil {
		return err
	}
	r.logger.Info().Str("path", outputPath).Int("rows", len(result.Rows)).Msg("JSON report written")
	return nil
}
