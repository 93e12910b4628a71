package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts what happened in a session.
type Metrics struct {
	keys       atomic.Uint64
	ignored    atomic.Uint64
	cells      atomic.Uint64
	indicators atomic.Uint64
	deletions  atomic.Uint64
	copies     atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a metrics tracker starting now.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordKey records a handled key. Keys with no binding count as ignored.
func (m *Metrics) RecordKey(handled bool) {
	m.keys.Add(1)
	if !handled {
		m.ignored.Add(1)
	}
}

// RecordCells records committed cells.
func (m *Metrics) RecordCells(n int) {
	if n > 0 {
		m.cells.Add(uint64(n))
	}
}

// RecordIndicator records a resolved two-cell indicator.
func (m *Metrics) RecordIndicator() {
	m.indicators.Add(1)
}

// RecordDeletion records a deleted character.
func (m *Metrics) RecordDeletion() {
	m.deletions.Add(1)
}

// RecordCopy records a clipboard copy.
func (m *Metrics) RecordCopy() {
	m.copies.Add(1)
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Keys       uint64
	Ignored    uint64
	Cells      uint64
	Indicators uint64
	Deletions  uint64
	Copies     uint64
	Uptime     time.Duration
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Keys:       m.keys.Load(),
		Ignored:    m.ignored.Load(),
		Cells:      m.cells.Load(),
		Indicators: m.indicators.Load(),
		Deletions:  m.deletions.Load(),
		Copies:     m.copies.Load(),
		Uptime:     time.Since(m.startTime),
	}
}
