package vcl

import (
	"sync/atomic"
	"time"
)

// Metrics tracks parse performance using lock-free atomic counters.
// All methods are safe for concurrent use.
type Metrics struct {
	parsesTotal     atomic.Uint64
	parsesSucceeded atomic.Uint64

	// Timing, stored as nanoseconds
	parseTimeTotal atomic.Uint64
	parseTimeMin   atomic.Uint64
	parseTimeMax   atomic.Uint64

	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Min starts at max uint64 so the first sample becomes the minimum
	m.parseTimeMin.Store(^uint64(0))
	return m
}

// RecordParse records one completed parse attempt.
func (m *Metrics) RecordParse(duration time.Duration, ok bool) {
	m.parsesTotal.Add(1)
	if ok {
		m.parsesSucceeded.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.parseTimeTotal.Add(ns)

	for {
		old := m.parseTimeMin.Load()
		if ns >= old || m.parseTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.parseTimeMax.Load()
		if ns <= old || m.parseTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordCacheHit records a memo cache hit.
func (m *Metrics) RecordCacheHit() {
	m.cacheHits.Add(1)
}

// RecordCacheMiss records a memo cache miss.
func (m *Metrics) RecordCacheMiss() {
	m.cacheMisses.Add(1)
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	ParsesTotal     uint64
	ParsesSucceeded uint64
	ParsesFailed    uint64

	ParseTimeTotalNs uint64
	ParseTimeMinNs   uint64
	ParseTimeMaxNs   uint64

	CacheHits   uint64
	CacheMisses uint64
}

// AvgNs returns the mean parse time in nanoseconds.
func (s *Snapshot) AvgNs() uint64 {
	if s.ParsesTotal == 0 {
		return 0
	}
	return s.ParseTimeTotalNs / s.ParsesTotal
}

// Snapshot returns a consistent-enough copy for reporting.
func (m *Metrics) Snapshot() Snapshot {
	total := m.parsesTotal.Load()
	ok := m.parsesSucceeded.Load()

	min := m.parseTimeMin.Load()
	if min == ^uint64(0) {
		min = 0
	}

	return Snapshot{
		ParsesTotal:      total,
		ParsesSucceeded:  ok,
		ParsesFailed:     total - ok,
		ParseTimeTotalNs: m.parseTimeTotal.Load(),
		ParseTimeMinNs:   min,
		ParseTimeMaxNs:   m.parseTimeMax.Load(),
		CacheHits:        m.cacheHits.Load(),
		CacheMisses:      m.cacheMisses.Load(),
	}
}
