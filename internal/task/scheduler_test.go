package task

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type noopJob struct{}

func (noopJob) Name() string                { return "noop" }
func (noopJob) Run(_ context.Context) error { return nil }

func TestSchedulerUntilNextRun(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		now     time.Time
		hourUTC int
		want    time.Duration
	}{
		{
			name:    "later today",
			now:     time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC),
			hourUTC: 9,
			want:    3 * time.Hour,
		},
		{
			name:    "already passed, tomorrow",
			now:     time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC),
			hourUTC: 9,
			want:    20*time.Hour + 30*time.Minute,
		},
		{
			name:    "exactly at the hour, tomorrow",
			now:     time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			hourUTC: 9,
			want:    24 * time.Hour,
		},
		{
			name:    "midnight hour",
			now:     time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC),
			hourUTC: 0,
			want:    time.Hour,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := NewScheduler(noopJob{}, tc.hourUTC, logger)
			s.timeFunc = func() time.Time { return tc.now }
			assert.Equal(t, tc.want, s.untilNextRun())
		})
	}
}

func TestSchedulerStopsCleanly(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewScheduler(noopJob{}, 3, logger)

	s.Start()
	s.Stop()
}
