package performance

import (
	"sync"
	"time"
)

// RollingAverage maintains a rolling average of durations over a fixed window
type RollingAverage struct {
	samples    []time.Duration
	maxSamples int
	sum        time.Duration
	index      int
	filled     bool
	mu         sync.RWMutex
}

// NewRollingAverage creates a rolling average tracker with specified window size
func NewRollingAverage(windowSize int) *RollingAverage {
	return &RollingAverage{
		samples:    make([]time.Duration, windowSize),
		maxSamples: windowSize,
	}
}

// Add records a new sample and updates the rolling average
func (r *RollingAverage) Add(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Subtract old value if we're overwriting
	if r.filled {
		r.sum -= r.samples[r.index]
	}

	// Add new value
	r.samples[r.index] = d
	r.sum += d

	// Advance index
	r.index++
	if r.index >= r.maxSamples {
		r.index = 0
		r.filled = true
	}
}

// Average returns the current rolling average
func (r *RollingAverage) Average() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.filled && r.index == 0 {
		return 0 // No samples yet
	}

	count := r.index
	if r.filled {
		count = r.maxSamples
	}

	if count == 0 {
		return 0
	}

	return r.sum / time.Duration(count)
}

// Count returns the number of samples currently tracked
func (r *RollingAverage) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.filled {
		return r.maxSamples
	}
	return r.index
}

// Reset clears all samples
func (r *RollingAverage) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sum = 0
	r.index = 0
	r.filled = false
	r.samples = make([]time.Duration, r.maxSamples)
}

// FrameMonitor tracks UI render loop timing against a target frame
// budget.
type FrameMonitor struct {
	frameTimes *RollingAverage
	budget     time.Duration
	longFrames int
	total      int
	mu         sync.RWMutex
}

// FrameReport contains aggregated frame timing metrics
type FrameReport struct {
	AvgFrameMs   float64 // Average frame time in milliseconds
	LongFrames   int     // Frames that blew the budget
	TotalFrames  int     // Total frames recorded
	LongRate     float64 // Percentage of long frames
	WithinBudget bool    // True if the average fits the budget
}

// NewFrameMonitor creates a frame monitor.
// windowSize determines how many frames to average (120 = 2 seconds at 60fps)
func NewFrameMonitor(windowSize int, budget time.Duration) *FrameMonitor {
	return &FrameMonitor{
		frameTimes: NewRollingAverage(windowSize),
		budget:     budget,
	}
}

// RecordFrame records one frame's total time
func (m *FrameMonitor) RecordFrame(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frameTimes.Add(d)
	m.total++
	if d > m.budget {
		m.longFrames++
	}
}

// Report generates a report with current metrics
func (m *FrameMonitor) Report() FrameReport {
	m.mu.RLock()
	defer m.mu.RUnlock()

	avg := m.frameTimes.Average()

	longRate := 0.0
	if m.total > 0 {
		longRate = float64(m.longFrames) / float64(m.total) * 100.0
	}

	return FrameReport{
		AvgFrameMs:   float64(avg.Microseconds()) / 1000.0,
		LongFrames:   m.longFrames,
		TotalFrames:  m.total,
		LongRate:     longRate,
		WithinBudget: avg <= m.budget,
	}
}

// Reset clears all metrics
func (m *FrameMonitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frameTimes.Reset()
	m.longFrames = 0
	m.total = 0
}
