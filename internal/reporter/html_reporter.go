package reporter

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/aleister1102/writealign/internal/common"
	"github.com/aleister1102/writealign/internal/config"
	"github.com/aleister1102/writealign/internal/models"
	"github.com/rs/zerolog"
)

// HTMLReporter renders comparison results as a self-contained side-by-side HTML page
type HTMLReporter struct {
	cfg         config.ReporterConfig
	logger      zerolog.Logger
	template    *template.Template
	fileManager *common.FileManager
}

// comparisonSection is a labelled run of rows in the page
type comparisonSection struct {
	Label string
	Rows  []models.ComparisonRow
}

// comparisonPageData holds everything the template needs
type comparisonPageData struct {
	ReportTitle      string
	GeneratedAt      time.Time
	Sections         []comparisonSection
	RowCount         int
	Warnings         []string
	Summary          models.CorrectionSummary
	CategoryCounts   []countEntry
	SeverityCounts   []countEntry
	Corrections      []models.Correction
	ProcessingTimeMs int64
	InlineCSS        template.CSS
}

// NewHTMLReporter creates a new HTMLReporter
func NewHTMLReporter(cfg config.ReporterConfig, logger zerolog.Logger) (*HTMLReporter, error) {
	reporterLogger := logger.With().Str("component", "HTMLReporter").Logger()

	r := &HTMLReporter{
		cfg:         cfg,
		logger:      reporterLogger,
		fileManager: common.NewFileManager(reporterLogger),
	}

	if err := r.initializeTemplate(); err != nil {
		return nil, err
	}
	return r, nil
}

// initializeTemplate parses the embedded report template
func (r *HTMLReporter) initializeTemplate() error {
	tmpl, err := template.New("").Funcs(GetComparisonTemplateFunctions()).ParseFS(templatesFS, "templates/"+DefaultReportTemplateName)
	if err != nil {
		return common.WrapError(err, "failed to parse comparison report template")
	}
	r.template = tmpl
	return nil
}

// Render writes the HTML page for result to w
func (r *HTMLReporter) Render(w io.Writer, result *models.ComparisonResult) error {
	if result == nil {
		return common.NewValidationError("result", nil, "comparison result cannot be nil")
	}

	pageData, err := r.preparePageData(result)
	if err != nil {
		return err
	}

	if err := r.template.ExecuteTemplate(w, DefaultReportTemplateName, pageData); err != nil {
		return common.WrapError(err, "failed to execute comparison report template")
	}

	r.logger.Debug().Int("rows", pageData.RowCount).Int("sections", len(pageData.Sections)).Msg("Rendered HTML report")
	return nil
}

// WriteReport renders result and writes it to outputPath, creating parent directories
func (r *HTMLReporter) WriteReport(outputPath string, result *models.ComparisonResult) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, result); err != nil {
		return err
	}
	return writeReportFile(r.fileManager, outputPath, buf.Bytes())
}

func (r *HTMLReporter) preparePageData(result *models.ComparisonResult) (comparisonPageData, error) {
	css, err := assetsFS.ReadFile(EmbeddedCSSPath)
	if err != nil {
		return comparisonPageData{}, common.WrapError(err, "failed to read embedded css")
	}

	return comparisonPageData{
		ReportTitle:      r.reportTitle(result),
		GeneratedAt:      time.Now(),
		Sections:         buildSections(result.Rows, result.Groups),
		RowCount:         len(result.Rows),
		Warnings:         result.Warnings,
		Summary:          result.Summary,
		CategoryCounts:   sortedCounts(result.Summary.ByCategory, categoryKeys()),
		SeverityCounts:   sortedCounts(result.Summary.BySeverity, severityKeys()),
		Corrections:      result.Corrections,
		ProcessingTimeMs: result.ProcessingTimeMs,
		InlineCSS:        template.CSS(css),
	}, nil
}

func (r *HTMLReporter) reportTitle(result *models.ComparisonResult) string {
	switch {
	case result.Title != "":
		return result.Title
	case r.cfg.ReportTitle != "":
		return r.cfg.ReportTitle
	default:
		return DefaultReportTitle
	}
}

// buildSections splits rows by groups. Without groups all rows form one unlabelled section.
func buildSections(rows []models.ComparisonRow, groups []models.RowGroup) []comparisonSection {
	if len(rows) == 0 {
		return nil
	}
	if len(groups) == 0 {
		return []comparisonSection{{Rows: rows}}
	}

	sections := make([]comparisonSection, 0, len(groups))
	for _, g := range groups {
		start, end := max(g.Start, 0), min(g.End, len(rows))
		if start >= end {
			continue
		}
		sections = append(sections, comparisonSection{
			Label: titleCase(string(g.Label)),
			Rows:  rows[start:end],
		})
	}
	return sections
}

func categoryKeys() []string {
	keys := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		keys[i] = string(c)
	}
	return keys
}

func severityKeys() []string {
	keys := make([]string, len(models.Severities))
	for i, s := range models.Severities {
		keys[i] = string(s)
	}
	return keys
}

func writeReportFile(fm *common.FileManager, outputPath string, data []byte) error {
	if outputPath == "" {
		return common.NewValidationError("output_path", outputPath, "output path cannot be empty")
	}
	opts := common.FileWriteOptions{CreateDirs: true, Permissions: FilePermissions}
	if err := fm.WriteFile(outputPath, data, opts); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", outputPath, err)
	}
	return nil
}
