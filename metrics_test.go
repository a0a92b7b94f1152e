package vcl

import (
	"testing"
	"time"
)

func TestMetricsRecordParse(t *testing.T) {
	m := NewMetrics()

	m.RecordParse(100*time.Microsecond, true)
	m.RecordParse(50*time.Microsecond, true)
	m.RecordParse(200*time.Microsecond, false)

	snap := m.Snapshot()
	if snap.ParsesTotal != 3 {
		t.Errorf("ParsesTotal = %d; want 3", snap.ParsesTotal)
	}
	if snap.ParsesSucceeded != 2 {
		t.Errorf("ParsesSucceeded = %d; want 2", snap.ParsesSucceeded)
	}
	if snap.ParsesFailed != 1 {
		t.Errorf("ParsesFailed = %d; want 1", snap.ParsesFailed)
	}
	if snap.ParseTimeMinNs != 50_000 {
		t.Errorf("ParseTimeMinNs = %d; want 50000", snap.ParseTimeMinNs)
	}
	if snap.ParseTimeMaxNs != 200_000 {
		t.Errorf("ParseTimeMaxNs = %d; want 200000", snap.ParseTimeMaxNs)
	}
	if snap.ParseTimeTotalNs != 350_000 {
		t.Errorf("ParseTimeTotalNs = %d; want 350000", snap.ParseTimeTotalNs)
	}
}

func TestMetricsEmptySnapshot(t *testing.T) {
	m := NewMetrics()
	snap := m.Snapshot()
	if snap.ParseTimeMinNs != 0 {
		t.Errorf("ParseTimeMinNs with no samples = %d; want 0", snap.ParseTimeMinNs)
	}
	if snap.AvgNs() != 0 {
		t.Errorf("AvgNs with no samples = %d; want 0", snap.AvgNs())
	}
}

func TestMetricsAvg(t *testing.T) {
	m := NewMetrics()
	m.RecordParse(10*time.Microsecond, true)
	m.RecordParse(30*time.Microsecond, true)

	snap := m.Snapshot()
	if got := snap.AvgNs(); got != 20_000 {
		t.Errorf("AvgNs = %d; want 20000", got)
	}
}

func TestMetricsCacheCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordCacheHit()
	m.RecordCacheHit()
	m.RecordCacheMiss()

	snap := m.Snapshot()
	if snap.CacheHits != 2 || snap.CacheMisses != 1 {
		t.Errorf("cache hits/misses = %d/%d; want 2/1", snap.CacheHits, snap.CacheMisses)
	}
}
