package progress

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DisplayConfig configures periodic progress logging
type DisplayConfig struct {
	DisplayInterval   time.Duration
	EnableProgress    bool
	ShowETAEstimation bool
}

// NewDefaultDisplayConfig creates default display configuration
func NewDefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		DisplayInterval:   3 * time.Second,
		EnableProgress:    true,
		ShowETAEstimation: true,
	}
}

// DisplayManager logs a Progress at a fixed interval while it runs
type DisplayManager struct {
	progress      *Progress
	mutex         sync.Mutex
	logger        zerolog.Logger
	displayTicker *time.Ticker
	isRunning     bool
	ctx           context.Context
	cancel        context.CancelFunc
	done          chan struct{}
	lastDisplayed string
	config        DisplayConfig
}

// NewDisplayManager creates a display manager for p
func NewDisplayManager(logger zerolog.Logger, config DisplayConfig, p *Progress) *DisplayManager {
	if config.DisplayInterval <= 0 {
		config.DisplayInterval = NewDefaultDisplayConfig().DisplayInterval
	}
	return &DisplayManager{
		progress: p,
		logger:   logger.With().Str("component", "ProgressDisplay").Logger(),
		config:   config,
	}
}

// Start begins periodic logging. It does nothing when progress display is disabled.
func (dm *DisplayManager) Start(ctx context.Context) {
	dm.mutex.Lock()
	defer dm.mutex.Unlock()

	if dm.isRunning {
		return
	}
	if !dm.config.EnableProgress {
		dm.logger.Debug().Msg("Progress display disabled in configuration")
		return
	}

	dm.isRunning = true
	dm.ctx, dm.cancel = context.WithCancel(ctx)
	dm.done = make(chan struct{})
	dm.displayTicker = time.NewTicker(dm.config.DisplayInterval)

	go dm.displayLoop()
}

// Stop ends periodic logging and logs the final state once
func (dm *DisplayManager) Stop() {
	dm.mutex.Lock()
	if !dm.isRunning {
		dm.mutex.Unlock()
		return
	}
	dm.isRunning = false
	dm.cancel()
	dm.displayTicker.Stop()
	done := dm.done
	dm.mutex.Unlock()

	<-done
	dm.displayProgress()
}

func (dm *DisplayManager) displayLoop() {
	defer close(dm.done)
	for {
		select {
		case <-dm.ctx.Done():
			return
		case <-dm.displayTicker.C:
			dm.displayProgress()
		}
	}
}

// displayProgress logs the current state unless it matches the last logged line
func (dm *DisplayManager) displayProgress() {
	output := dm.formatProgress(dm.progress.Info())
	if output == "" || output == dm.lastDisplayed {
		return
	}
	dm.logger.Info().Msg(output)
	dm.lastDisplayed = output
}

func (dm *DisplayManager) formatProgress(info ProgressInfo) string {
	if info.Status == ProgressStatusIdle || info.Total <= 0 {
		return ""
	}

	var builder strings.Builder
	percentage := info.GetPercentage()
	builder.WriteString(fmt.Sprintf("Compare: %s %s %.1f%% (%d/%d)",
		getStatusIcon(info.Status), createProgressBar(percentage, 20), percentage, info.Current, info.Total))

	if info.Failed > 0 {
		builder.WriteString(fmt.Sprintf(" | failed: %d", info.Failed))
	}
	if info.Stage != "" {
		builder.WriteString(fmt.Sprintf(" | %s", info.Stage))
	}
	if dm.config.ShowETAEstimation && info.EstimatedETA > 0 && info.Status == ProgressStatusRunning {
		builder.WriteString(fmt.Sprintf(" | ETA: %s", formatDuration(info.EstimatedETA)))
	}
	if info.Message != "" {
		builder.WriteString(fmt.Sprintf(" | %s", info.Message))
	}
	return builder.String()
}

func getStatusIcon(status ProgressStatus) string {
	switch status {
	case ProgressStatusRunning:
		return "⏳"
	case ProgressStatusComplete:
		return "✅"
	case ProgressStatusError:
		return "❌"
	case ProgressStatusCancelled:
		return "🚫"
	case ProgressStatusIdle:
		return "💤"
	default:
		return "❓"
	}
}

func createProgressBar(percentage float64, width int) string {
	if width <= 0 {
		return ""
	}

	filled := min(int((percentage/100.0)*float64(width)), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s]", bar)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.0fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.0fm", d.Minutes())
	default:
		return fmt.Sprintf("%.1fh", d.Hours())
	}
}
