package scheduler

import (
	"context"
	"time"

	"github.com/Aakash17x08/linkhive/internal/lockout"
	"github.com/Aakash17x08/linkhive/internal/logger"
)

// LockoutSweeper periodically expires a finished lockout so the privacy
// gate returns to the password prompt without waiting for the next
// submission.
type LockoutSweeper struct {
	machine  *lockout.Machine
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewLockoutSweeper creates a new lockout sweeper
func NewLockoutSweeper(m *lockout.Machine, log logger.Logger, interval time.Duration) *LockoutSweeper {
	return &LockoutSweeper{
		machine:  m,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the sweep loop.
func (s *LockoutSweeper) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if s.machine.Sweep(ctx) {
					s.logger.Info("lockout expired, privacy gate reset")
				}
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the sweeper
func (s *LockoutSweeper) Stop() {
	close(s.stopCh)
}
