package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/store"
)

// Sweeper drops expired entries from an in-process structure.
type Sweeper interface {
	Sweep(ctx context.Context) int
}

// HousekeepingService periodically clears expired password resets and
// sweeps the in-memory revocation list.
type HousekeepingService struct {
	Store    store.Store
	Sweeper  Sweeper // nil when revocations live in Redis
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to one hour.
func NewHousekeepingService(st store.Store, sweeper Sweeper, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Sweeper:  sweeper,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs cleanup now and then on every tick until Stop.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup runs each task independently; one failing does not stop the rest.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	cleared, err := s.Store.Users().ClearExpiredResetTokens(ctx, time.Now())
	if err != nil {
		s.Logger.Error("failed to clear expired reset tokens", "error", err)
	}

	swept := 0
	if s.Sweeper != nil {
		swept = s.Sweeper.Sweep(ctx)
	}

	s.Logger.Info("housekeeping cleanup completed",
		"reset_tokens_cleared", cleared,
		"revocations_swept", swept,
	)
}
