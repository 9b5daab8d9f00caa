package service

import (
	"fmt"
	"sync"
	"time"
)

// IngestionMetrics tracks statistics about one ingestion run.
type IngestionMetrics struct {
	mu               sync.RWMutex
	StartTime        time.Time
	Duration         time.Duration
	TotalMatches     int
	ValidMatches     int
	RejectedMatches  int
	Teams            int
	TrainingRows     int
	PersistedMatches int
	Errors           int
}

// NewIngestionMetrics creates a metrics tracker.
func NewIngestionMetrics() *IngestionMetrics {
	return &IngestionMetrics{StartTime: time.Now()}
}

// Reset clears all counters and restarts the clock.
func (m *IngestionMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.StartTime = time.Now()
	m.Duration = 0
	m.TotalMatches = 0
	m.ValidMatches = 0
	m.RejectedMatches = 0
	m.Teams = 0
	m.TrainingRows = 0
	m.PersistedMatches = 0
	m.Errors = 0
}

// RecordError increments the error count.
func (m *IngestionMetrics) RecordError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors++
}

// RecordFetched records the raw match count returned by the source chain.
func (m *IngestionMetrics) RecordFetched(total int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TotalMatches = total
}

// RecordValidated records the validation split of the fetched matches.
func (m *IngestionMetrics) RecordValidated(valid, rejected int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidMatches = valid
	m.RejectedMatches = rejected
}

// RecordAggregated records the number of teams with computed statistics.
func (m *IngestionMetrics) RecordAggregated(teams int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Teams = teams
}

// RecordTrainingRows records the size of the built training table.
func (m *IngestionMetrics) RecordTrainingRows(rows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TrainingRows = rows
}

// RecordPersisted records the number of matches written to the database.
func (m *IngestionMetrics) RecordPersisted(matches int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistedMatches = matches
}

// RecordDuration records the elapsed time of the run.
func (m *IngestionMetrics) RecordDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Duration = d
}

// String returns a formatted representation of the run.
func (m *IngestionMetrics) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	validRate := float64(0)
	if m.TotalMatches > 0 {
		validRate = float64(m.ValidMatches) / float64(m.TotalMatches) * 100
	}

	return fmt.Sprintf(
		"IngestionMetrics{Total=%d, Valid=%d (%.1f%%), Rejected=%d, Teams=%d, TrainingRows=%d, Persisted=%d, Errors=%d, Duration=%v}",
		m.TotalMatches,
		m.ValidMatches,
		validRate,
		m.RejectedMatches,
		m.Teams,
		m.TrainingRows,
		m.PersistedMatches,
		m.Errors,
		m.Duration,
	)
}
