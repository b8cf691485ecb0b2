// Package jobs holds background maintenance scheduled with cron.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/neocodez/portfolio/logger"
	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

// ExpiredCodeStore drops reset codes whose expiry has passed.
type ExpiredCodeStore interface {
	ClearExpiredResetCodes(ctx context.Context, now time.Time) (int64, error)
}

// CodeSweeper periodically clears expired reset codes. Verification checks
// expiry on its own; the sweep only keeps stale codes out of the database.
type CodeSweeper struct {
	store ExpiredCodeStore
	log   *logger.Logger
	now   func() time.Time
	cron  *cron.Cron
}

func NewCodeSweeper(store ExpiredCodeStore, log *logger.Logger) *CodeSweeper {
	return &CodeSweeper{
		store: store,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		cron:  cron.New(cron.WithLocation(time.UTC)),
	}
}

// Start schedules the sweep. schedule is a standard cron expression or a
// descriptor such as "@every 5m".
func (s *CodeSweeper) Start(schedule string) error {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	if _, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		_, _ = s.Sweep(ctx)
	}); err != nil {
		return fmt.Errorf("schedule code sweep: %w", err)
	}

	s.cron.Start()
	s.log.Info().Str("schedule", schedule).Msg("expired code sweeper started")
	return nil
}

// Sweep runs one pass and returns the number of codes cleared.
func (s *CodeSweeper) Sweep(ctx context.Context) (int64, error) {
	n, err := s.store.ClearExpiredResetCodes(ctx, s.now())
	if err != nil {
		s.log.Error().Err(err).Msg("expired code sweep failed")
		return 0, err
	}
	if n > 0 {
		s.log.Info().Int64("cleared", n).Msg("expired reset codes cleared")
	}
	return n, nil
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *CodeSweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
