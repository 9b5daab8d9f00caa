// Package scheduler periodically refreshes the team statistics snapshot.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/predict"
	"github.com/yourusername/matchcast/internal/service"
	"github.com/yourusername/matchcast/internal/store"
)

// Scheduler re-runs ingestion on a cron schedule and swaps the serving
// snapshot atomically. In-flight predictions keep reading the snapshot they
// started with.
type Scheduler struct {
	cron        *cron.Cron
	ingestion   *service.IngestionService
	store       *store.Store
	caches      []*predict.ResultCache
	logger      *logrus.Logger
	mu          sync.RWMutex
	isRunning   bool
	jobIDs      []cron.EntryID
	refreshWait time.Duration
}

// NewScheduler creates a scheduler. caches are cleared after every
// successful snapshot swap so stale results are never served.
func NewScheduler(ingestion *service.IngestionService, st *store.Store, caches []*predict.ResultCache, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(time.UTC)),
		ingestion:   ingestion,
		store:       st,
		caches:      caches,
		logger:      logger,
		jobIDs:      make([]cron.EntryID, 0),
		refreshWait: 10 * time.Minute,
	}
}

// ScheduleRefresh registers a stats refresh job under the given cron
// expression. Jobs cannot be added while the scheduler is running.
func (s *Scheduler) ScheduleRefresh(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	entryID, err := s.cron.AddFunc(cronExpression, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.refreshWait)
		defer cancel()
		s.Refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to add refresh job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("cron", cronExpression).Info("Scheduled stats refresh")

	return nil
}

// Refresh runs one ingestion pass and swaps the serving snapshot on
// success. A failed run leaves the previous snapshot in place.
func (s *Scheduler) Refresh(ctx context.Context) error {
	s.logger.Info("Starting scheduled stats refresh")

	result, err := s.ingestion.Run(ctx)
	if err != nil {
		metrics.RecordSnapshotRefresh("failure", 0)
		s.logger.WithError(err).Error("Scheduled stats refresh failed")
		return err
	}

	s.store.Swap(result.Snapshot)
	for _, c := range s.caches {
		c.Clear()
	}
	metrics.RecordSnapshotRefresh("success", result.Snapshot.Len())

	s.logger.WithFields(logrus.Fields{
		"teams":   result.Snapshot.Len(),
		"matches": len(result.Matches),
	}).Info("Stats refresh completed")

	return nil
}

// Start starts the scheduler.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}
	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("Scheduler stopped")

	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns the time of the next scheduled refresh.
func (s *Scheduler) NextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return time.Time{}
	}

	next := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() && (next.IsZero() || entry.Next.Before(next)) {
			next = entry.Next
		}
	}

	return next
}
