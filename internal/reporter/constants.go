package reporter

const (
	// Template and embedded asset paths
	DefaultReportTemplateName = "comparison_report.html.tmpl"
	EmbeddedCSSPath           = "assets/css/comparison_report.css"

	// Report defaults
	DefaultReportTitle = "Writing Comparison"
	EmptyPlaceholder   = "—"

	// Output formats
	FormatJSON = "json"
	FormatHTML = "html"

	// File permissions
	DirPermissions  = 0755
	FilePermissions = 0644
)
