package config

// ReporterConfig defines configuration for rendering results
type ReporterConfig struct {
	Format      string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,reportformat"`
	ReportTitle string `json:"report_title,omitempty" yaml:"report_title,omitempty"`
	OutputPath  string `json:"output_path,omitempty" yaml:"output_path,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		Format:      DefaultReporterFormat,
		ReportTitle: DefaultReporterTitle,
		OutputPath:  "",
	}
}
