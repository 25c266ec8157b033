package task

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs a job once per day at a fixed UTC hour. It sleeps until
// the next occurrence, runs the job, and repeats until stopped.
type Scheduler struct {
	job        Job
	hourUTC    int
	logger     *slog.Logger
	timeFunc   func() time.Time
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewScheduler creates a scheduler that runs job daily at hourUTC (0-23).
func NewScheduler(job Job, hourUTC int, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		job:        job,
		hourUTC:    hourUTC,
		logger:     logger.With(slog.String("component", "scheduler"), slog.String("job", job.Name())),
		timeFunc:   func() time.Time { return time.Now().UTC() },
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the scheduling loop in a goroutine.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.loop()
}

// Stop cancels the loop and waits for any in-flight run to finish.
func (s *Scheduler) Stop() {
	s.cancelFunc()
	s.wg.Wait()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	for {
		wait := s.untilNextRun()
		s.logger.Info("next run scheduled", slog.Duration("in", wait))

		timer := time.NewTimer(wait)
		select {
		case <-s.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		start := s.timeFunc()
		if err := s.job.Run(s.ctx); err != nil {
			s.logger.Error("job run failed",
				slog.String("error", err.Error()),
				slog.Duration("duration", s.timeFunc().Sub(start)))
		} else {
			s.logger.Info("job run completed",
				slog.Duration("duration", s.timeFunc().Sub(start)))
		}
	}
}

// untilNextRun computes the wait until the next occurrence of hourUTC.
// A run time in the past today means the next run is tomorrow.
func (s *Scheduler) untilNextRun() time.Duration {
	now := s.timeFunc()
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
