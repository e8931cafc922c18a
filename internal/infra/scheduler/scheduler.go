package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CycleRunner is the poll operation the scheduler drives on each tick.
type CycleRunner interface {
	RunCycle(ctx context.Context)
}

// PollScheduler triggers one poll cycle per fixed interval. A cycle that
// overruns its interval causes the next tick to be skipped rather than run
// concurrently.
type PollScheduler struct {
	cronEngine *cron.Cron
	poller     CycleRunner
	logger     *logrus.Entry
	interval   time.Duration
}

func NewPollScheduler(poller CycleRunner, logger *logrus.Logger, interval time.Duration) *PollScheduler {
	return &PollScheduler{
		cronEngine: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		poller:     poller,
		logger:     logger.WithField("component", "scheduler"),
		interval:   interval,
	}
}

// Start runs the first cycle immediately, then hands the schedule to cron.
// The cron @every spec fires its first tick one interval after Start.
func (s *PollScheduler) Start() error {
	s.logger.Info("Starting poll scheduler...")

	s.runOnce()

	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cronEngine.AddFunc(spec, s.runOnce); err != nil {
		return fmt.Errorf("could not add poll cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.WithField("interval", s.interval.String()).Info("Poll scheduler started")
	return nil
}

func (s *PollScheduler) runOnce() {
	// A cycle never gets longer than the interval it runs in.
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()
	s.poller.RunCycle(ctx)
}

// Stop halts scheduling and waits for a running cycle to finish.
func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("Poll scheduler gracefully stopped")
}
