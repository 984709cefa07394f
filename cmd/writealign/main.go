package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aleister1102/writealign/internal/comparer"
	"github.com/aleister1102/writealign/internal/config"
	"github.com/aleister1102/writealign/internal/logger"
	"github.com/aleister1102/writealign/internal/models"
	"github.com/aleister1102/writealign/internal/progress"
	"github.com/aleister1102/writealign/internal/reporter"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run wires configuration, logging, the comparer and the reporter for one invocation
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, err := ParseFlags(args, stderr)
	if err != nil {
		return err
	}

	// Config loading happens before the configured logger exists
	bootLogger := zerolog.New(stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, bootLogger)
	if err != nil {
		return fmt.Errorf("could not load global config using path '%s': %w", flags.GlobalConfigFile, err)
	}

	applyFlagOverrides(gCfg, flags)

	if err := config.ValidateConfig(gCfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	zLogger, err := buildLogger(gCfg.LogConfig, stderr)
	if err != nil {
		return fmt.Errorf("could not initialize logger: %w", err)
	}

	reqs, err := loadRequests(flags.InputFile, stdin, zLogger)
	if err != nil {
		return err
	}
	zLogger.Debug().Int("requests", len(reqs)).Str("input", flags.InputFile).Msg("Requests loaded")

	batchProgress := progress.NewProgress()
	cmp, err := comparer.NewComparerBuilder(zLogger).
		WithConfig(gCfg.ComparisonConfig).
		WithProgress(batchProgress).
		Build()
	if err != nil {
		return fmt.Errorf("could not create comparer: %w", err)
	}

	display := progress.NewDisplayManager(zLogger, displayConfig(gCfg.ProgressConfig, len(reqs)), batchProgress)
	display.Start(ctx)
	results, err := cmp.CompareBatch(ctx, reqs)
	display.Stop()
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	rep, err := reporter.NewReporter(gCfg.ReporterConfig, zLogger)
	if err != nil {
		return fmt.Errorf("could not create reporter: %w", err)
	}

	return writeResults(rep, gCfg.ReporterConfig, results, stdout)
}

func applyFlagOverrides(gCfg *config.GlobalConfig, flags AppFlags) {
	if flags.Format != "" {
		gCfg.ReporterConfig.Format = flags.Format
	}
	if flags.OutputPath != "" {
		gCfg.ReporterConfig.OutputPath = flags.OutputPath
	}
	if flags.Title != "" {
		gCfg.ReporterConfig.ReportTitle = flags.Title
	}
}

// displayConfig enables progress logging only for batches of more than one request
func displayConfig(cfg config.ProgressConfig, requests int) progress.DisplayConfig {
	return progress.DisplayConfig{
		DisplayInterval:   cfg.GetDisplayIntervalDuration(),
		EnableProgress:    cfg.EnableProgress && requests > 1,
		ShowETAEstimation: cfg.ShowETAEstimation,
	}
}

// buildLogger creates the application logger. Console output goes to stderr so stdout
// stays reserved for reports.
func buildLogger(cfg logger.FileLogConfig, stderr io.Writer) (zerolog.Logger, error) {
	l, err := logger.NewLoggerBuilder().WithConfig(cfg).WithOutput(stderr).Build()
	if err != nil {
		return zerolog.Nop(), err
	}
	return *l.GetZerolog(), nil
}

// writeResults renders each result. With an output path a batch writes one file per
// request; without one, reports go to stdout.
func writeResults(rep reporter.Reporter, cfg config.ReporterConfig, results []*models.ComparisonResult, stdout io.Writer) error {
	if cfg.ReportTitle != "" {
		for _, result := range results {
			if result.Title == "" {
				result.Title = cfg.ReportTitle
			}
		}
	}

	if cfg.OutputPath == "" {
		if len(results) > 1 && strings.EqualFold(cfg.Format, reporter.FormatHTML) {
			return fmt.Errorf("html output for %d requests requires -output", len(results))
		}
		for _, result := range results {
			if err := rep.Render(stdout, result); err != nil {
				return err
			}
		}
		return nil
	}

	if len(results) == 1 {
		return rep.WriteReport(cfg.OutputPath, results[0])
	}
	for i, result := range results {
		if err := rep.WriteReport(batchOutputPath(cfg.OutputPath, i), result); err != nil {
			return fmt.Errorf("request %d: %w", i, err)
		}
	}
	return nil
}
