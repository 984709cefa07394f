package main

import (
	"flag"
	"fmt"
	"io"
)

type AppFlags struct {
	InputFile        string
	GlobalConfigFile string
	Format           string
	OutputPath       string
	Title            string
}

// ParseFlags parses args (without the program name). Short aliases are used only when
// the long flag is unset.
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("writealign", flag.ContinueOnError)
	fs.SetOutput(output)

	inputFile := fs.String("input", "", "Path to a JSON/YAML comparison request, or a list of requests. Use - or leave empty to read JSON from stdin.")
	inputFileAlias := fs.String("i", "", "Alias for -input")

	globalConfigFile := fs.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("c", "", "Alias for -config")

	format := fs.String("format", "", "Report format: json or html (overrides config file if set)")
	formatAlias := fs.String("f", "", "Alias for -format")

	outputPath := fs.String("output", "", "Path of the report file. Writes to stdout if not set.")
	outputPathAlias := fs.String("o", "", "Alias for -output")

	title := fs.String("title", "", "Report title for requests without one (overrides config file if set)")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}
	if fs.NArg() > 0 {
		return AppFlags{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return AppFlags{
		InputFile:        firstNonEmpty(*inputFile, *inputFileAlias),
		GlobalConfigFile: firstNonEmpty(*globalConfigFile, *globalConfigFileAlias),
		Format:           firstNonEmpty(*format, *formatAlias),
		OutputPath:       firstNonEmpty(*outputPath, *outputPathAlias),
		Title:            *title,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
