package service

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestIngestionMetricsString(t *testing.T) {
	m := NewIngestionMetrics()
	m.RecordFetched(10)
	m.RecordValidated(8, 2)
	m.RecordAggregated(4)
	m.RecordTrainingRows(8)
	m.RecordPersisted(8)
	m.RecordDuration(250 * time.Millisecond)

	s := m.String()
	for _, want := range []string{"Total=10", "Valid=8 (80.0%)", "Rejected=2", "Teams=4", "Persisted=8"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestIngestionMetricsConcurrentAccess(t *testing.T) {
	m := NewIngestionMetrics()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			m.RecordFetched(i)
			m.RecordValidated(i, 1)
			m.RecordAggregated(i)
			m.RecordTrainingRows(i)
			m.RecordPersisted(i)
			m.RecordDuration(time.Millisecond)
			m.RecordError()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = m.String()
		}
	}()
	wg.Wait()

	if m.Errors != 200 {
		t.Errorf("errors = %d, want 200", m.Errors)
	}
}
