package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type ReservationSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Scheduler runs the periodic expiry sweep of reservations.
type Scheduler struct {
	cron    *cron.Cron
	sweeper ReservationSweeper
	spec    string
}

func NewScheduler(sweeper ReservationSweeper, spec, timezone string) *Scheduler {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		zap.L().Warn("failed to load scheduler timezone, using UTC", zap.String("timezone", timezone), zap.Error(err))
		loc = time.UTC
	}

	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		sweeper: sweeper,
		spec:    spec,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("s.cron.AddFunc(%q) -> %w", s.spec, err)
	}

	s.cron.Start()
	zap.L().Info("reservation sweeper started", zap.String("spec", s.spec))

	return nil
}

func (s *Scheduler) sweep(ctx context.Context) {
	freed, err := s.sweeper.SweepExpired(ctx)
	if err != nil {
		zap.L().Error("reservation sweep failed", zap.Int("freed", freed), zap.Error(err))
		return
	}

	if freed > 0 {
		zap.L().Info("expired reservations reclaimed", zap.Int("freed", freed))
	}
}

// Stop waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.L().Info("reservation sweeper stopped")
}
