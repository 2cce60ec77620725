package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/internal/aggregate"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=scheduler_mocks_test.go -package=pipeline_test

type weeklyRunner interface {
	Run(ctx context.Context, closed aggregate.Window) (*RunSummary, error)
}

// Scheduler triggers the weekly pipeline on a cron schedule. Overlapping
// triggers are skipped while a run is still in progress.
type Scheduler struct {
	cron    *cron.Cron
	runner  weeklyRunner
	ctx     context.Context
	timeout time.Duration
	now     func() time.Time
}

func NewScheduler(ctx context.Context, spec string, runner weeklyRunner, timeout time.Duration) (*Scheduler, error) {
	s := &Scheduler{
		runner:  runner,
		ctx:     ctx,
		timeout: timeout,
		now:     time.Now,
	}
	s.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(log.StandardLogger()))),
	)
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return nil, fmt.Errorf("schedule weekly pipeline %q: %w", spec, err)
	}
	return s, nil
}

// RunOnce processes the last closed week.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	closed := ClosedWeek(s.now())
	log.Infof("weekly pipeline triggered for closed week %s", closed.Start.Format(time.DateOnly))
	if _, err := s.runner.Run(ctx, closed); err != nil {
		log.Errorf("weekly pipeline for week %s: %s", closed.Start.Format(time.DateOnly), err)
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		log.Infof("weekly pipeline scheduled, next run at %s", e.Next.Format(time.RFC3339))
	}
}

// Stop stops scheduling and waits for a running pipeline to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
