// Package progress tracks and periodically logs the progress of comparison batches.
package progress

import (
	"sync"
	"time"
)

// Progress encapsulates a single progress indicator. It is safe for concurrent use.
type Progress struct {
	mu   sync.RWMutex
	info ProgressInfo
}

// NewProgress creates a new idle Progress indicator.
func NewProgress() *Progress {
	return &Progress{
		info: ProgressInfo{Status: ProgressStatusIdle},
	}
}

// Info returns a copy of the ProgressInfo.
func (p *Progress) Info() ProgressInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.info
}

// Start resets the counters and marks the progress as running
func (p *Progress) Start(total int, stage string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	p.info = ProgressInfo{
		Status:         ProgressStatusRunning,
		Total:          int64(total),
		Stage:          stage,
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// Increment records one finished item
func (p *Progress) Increment(failed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info.Current++
	if failed {
		p.info.Failed++
	}
	p.info.LastUpdateTime = time.Now()
	p.info.UpdateETA()
}

// SetStatus sets the progress status.
func (p *Progress) SetStatus(status ProgressStatus, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info.Status = status
	p.info.Message = message
	p.info.LastUpdateTime = time.Now()
	if status != ProgressStatusRunning {
		p.info.EstimatedETA = 0
	}
}
