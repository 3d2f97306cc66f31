package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/facturio/facturio-api/internal/metrics"
)

// BillingScheduler fires the two daily billing jobs: the overdue sweep and
// the recurring generation. Each job runs once per day at its configured
// local time; a manual trigger shares the same entry points and the same
// per-job run lock, so a job never runs concurrently with itself.
type BillingScheduler struct {
	maintenance *MaintenanceService
	recurring   *RecurringInvoiceService
	clock       Clock
	logger      *zap.Logger

	maintenanceAt string
	generationAt  string

	maintenanceRunning atomic.Bool
	generationRunning  atomic.Bool

	stopCh   chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewBillingScheduler(
	maintenance *MaintenanceService,
	recurring *RecurringInvoiceService,
	clock Clock,
	maintenanceAt string,
	generationAt string,
	logger *zap.Logger,
) *BillingScheduler {
	return &BillingScheduler{
		maintenance:   maintenance,
		recurring:     recurring,
		clock:         clock,
		logger:        logger,
		maintenanceAt: maintenanceAt,
		generationAt:  generationAt,
		stopCh:        make(chan struct{}),
	}
}

// Start launches the daily schedules. Firing times are "HH:MM" strings
// validated at construction time by config loading.
func (s *BillingScheduler) Start() {
	s.logger.Info("Starting billing scheduler",
		zap.String("maintenance_at", s.maintenanceAt),
		zap.String("generation_at", s.generationAt),
	)

	s.wg.Add(1)
	go s.runDailySchedule("maintenance", s.maintenanceAt, s.RunMaintenance)

	s.wg.Add(1)
	go s.runDailySchedule("generation", s.generationAt, s.RunGeneration)
}

// Stop shuts the scheduler down and waits for the schedule goroutines to
// exit. A job already in flight finishes; no new firings start.
func (s *BillingScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping billing scheduler")
		close(s.stopCh)
		s.wg.Wait()
	})
}

// runDailySchedule waits until the next occurrence of fireAt, then fires run
// every 24 hours.
func (s *BillingScheduler) runDailySchedule(job string, fireAt string, run func(ctx context.Context) error) {
	defer s.wg.Done()

	select {
	case <-time.After(s.untilNextFiring(fireAt)):
	case <-s.stopCh:
		return
	}

	if err := run(context.Background()); err != nil {
		s.logger.Error("Scheduled job failed", zap.String("job", job), zap.Error(err))
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := run(context.Background()); err != nil {
				s.logger.Error("Scheduled job failed", zap.String("job", job), zap.Error(err))
			}
		case <-s.stopCh:
			return
		}
	}
}

// untilNextFiring returns the delay until the next occurrence of the "HH:MM"
// local time, today if still ahead, otherwise tomorrow.
func (s *BillingScheduler) untilNextFiring(fireAt string) time.Duration {
	t, err := time.Parse("15:04", fireAt)
	if err != nil {
		// Config validation should have caught this; fall back to midnight.
		s.logger.Error("Invalid firing time, defaulting to midnight", zap.String("fire_at", fireAt), zap.Error(err))
		t = time.Time{}
	}

	now := s.clock.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// RunMaintenance executes one overdue sweep. It is safe to call from the
// schedule and from the admin trigger; a second call while one is in flight
// is skipped.
func (s *BillingScheduler) RunMaintenance(ctx context.Context) error {
	if !s.maintenanceRunning.CompareAndSwap(false, true) {
		s.logger.Warn("Maintenance job already running, skipping")
		metrics.JobRuns.WithLabelValues("maintenance", "skipped").Inc()
		return fmt.Errorf("maintenance job already running")
	}
	defer s.maintenanceRunning.Store(false)

	result, err := s.maintenance.SweepOverdue(ctx, s.clock.Now())
	if err != nil {
		metrics.JobRuns.WithLabelValues("maintenance", "error").Inc()
		return err
	}
	if result.Failed > 0 {
		metrics.JobRuns.WithLabelValues("maintenance", "partial").Inc()
	} else {
		metrics.JobRuns.WithLabelValues("maintenance", "success").Inc()
	}
	return nil
}

// RunGeneration executes one recurring generation pass with the same
// run-lock semantics as RunMaintenance.
func (s *BillingScheduler) RunGeneration(ctx context.Context) error {
	if !s.generationRunning.CompareAndSwap(false, true) {
		s.logger.Warn("Generation job already running, skipping")
		metrics.JobRuns.WithLabelValues("generation", "skipped").Inc()
		return fmt.Errorf("generation job already running")
	}
	defer s.generationRunning.Store(false)

	result, err := s.recurring.GenerateDue(ctx, s.clock.Now())
	if err != nil {
		metrics.JobRuns.WithLabelValues("generation", "error").Inc()
		return err
	}
	if result.Failed > 0 {
		metrics.JobRuns.WithLabelValues("generation", "partial").Inc()
	} else {
		metrics.JobRuns.WithLabelValues("generation", "success").Inc()
	}
	return nil
}
