package lockout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Aakash17x08/linkhive/internal/logger"
)

// State of the privacy gate.
type State int

const (
	// StateInput awaits a password, with 0..maxAttempts-1 prior wrong tries.
	StateInput State = iota
	// StateUnlocked grants access to the private section.
	StateUnlocked
	// StateLockedOut rejects every submission until the expiry passes.
	StateLockedOut
)

func (s State) String() string {
	switch s {
	case StateUnlocked:
		return "unlocked"
	case StateLockedOut:
		return "locked_out"
	default:
		return "locked"
	}
}

// Recorder is the slice of the store the machine persists through:
// the wrong-attempt counter and the absolute lockout expiry.
type Recorder interface {
	SaveAttempts(ctx context.Context, attempts int) error
	LoadAttempts(ctx context.Context) (int, error)
	ClearAttempts(ctx context.Context) error
	SaveLockout(ctx context.Context, until time.Time) error
	LoadLockout(ctx context.Context) (time.Time, bool, error)
	ClearLockout(ctx context.Context) error
}

// Result describes the outcome of a password submission.
type Result struct {
	State             State
	AttemptsRemaining int           // meaningful in StateInput after a wrong try
	RetryAfter        time.Duration // meaningful in StateLockedOut
}

// Machine is the lockout state machine for the private section.
//
// This is a soft-hide UX control, not an access-control boundary: the
// password is a fixed, non-secret string baked into the deployment.
type Machine struct {
	mu     sync.Mutex
	store  Recorder
	logger logger.Logger

	password    string
	maxAttempts int
	duration    time.Duration
	timeNow     func() time.Time

	unlocked    bool
	attempts    int
	lockedUntil time.Time // zero = no lockout armed
}

// New creates a machine in the locked-input state. Call Restore to pick
// up a lockout or attempt counter persisted by a previous run.
func New(store Recorder, log logger.Logger, password string, maxAttempts int, duration time.Duration) *Machine {
	return &Machine{
		store:       store,
		logger:      log,
		password:    password,
		maxAttempts: maxAttempts,
		duration:    duration,
		timeNow:     time.Now,
	}
}

// Restore rebuilds state from the persisted records. An expiry already
// in the past is treated as expired: both records are cleared.
func (m *Machine) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	until, found, err := m.store.LoadLockout(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore lockout record: %w", err)
	}
	if found {
		if m.timeNow().Before(until) {
			m.lockedUntil = until
			m.logger.Info("resuming active lockout",
				logger.Time("until", until))
		} else {
			m.clearLockoutLocked(ctx)
			return nil
		}
	}

	attempts, err := m.store.LoadAttempts(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore attempt counter: %w", err)
	}
	m.attempts = attempts
	return nil
}

// Submit runs one password attempt. While a lockout is active the
// submission is rejected without being evaluated, correct or not.
func (m *Machine) Submit(ctx context.Context, password string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.timeNow()
	m.expireLocked(ctx, now)

	if !m.lockedUntil.IsZero() {
		return Result{State: StateLockedOut, RetryAfter: m.lockedUntil.Sub(now)}
	}

	if password == m.password {
		m.unlocked = true
		m.attempts = 0
		if err := m.store.ClearAttempts(ctx); err != nil {
			m.logger.Warn("failed to clear attempt counter",
				logger.Error(err))
		}
		return Result{State: StateUnlocked}
	}

	m.attempts++
	if err := m.store.SaveAttempts(ctx, m.attempts); err != nil {
		m.logger.Warn("failed to persist attempt counter",
			logger.Error(err))
	}

	if m.attempts >= m.maxAttempts {
		m.lockedUntil = now.Add(m.duration)
		if err := m.store.SaveLockout(ctx, m.lockedUntil); err != nil {
			m.logger.Warn("failed to persist lockout record",
				logger.Error(err))
		}
		m.logger.Info("lockout armed",
			logger.Int("attempts", m.attempts),
			logger.Time("until", m.lockedUntil))
		return Result{State: StateLockedOut, RetryAfter: m.duration}
	}

	return Result{State: StateInput, AttemptsRemaining: m.maxAttempts - m.attempts}
}

// Lock re-arms the gate manually. The attempt counter is NOT reset: only
// a successful unlock or an expired lockout resets it.
func (m *Machine) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unlocked = false
}

// Status reports the current state and, while locked out, the remaining
// duration recomputed from the stored absolute expiry. Recomputing each
// call avoids timer skew: there is no drifting countdown to correct.
func (m *Machine) Status(ctx context.Context) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.timeNow()
	m.expireLocked(ctx, now)

	switch {
	case !m.lockedUntil.IsZero():
		return Result{State: StateLockedOut, RetryAfter: m.lockedUntil.Sub(now)}
	case m.unlocked:
		return Result{State: StateUnlocked}
	default:
		return Result{State: StateInput, AttemptsRemaining: m.maxAttempts - m.attempts}
	}
}

// Unlocked reports whether the gate is currently open.
func (m *Machine) Unlocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unlocked && m.lockedUntil.IsZero()
}

// Sweep clears an expired lockout and reports whether it did. The
// scheduler calls it once per second while a lockout may be active; it
// is a no-op otherwise.
func (m *Machine) Sweep(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expireLocked(ctx, m.timeNow())
}

// Remaining computes the time left on a lockout expiring at until. Pure:
// the countdown display calls it with an externally driven clock tick.
func Remaining(now, until time.Time) time.Duration {
	if until.IsZero() || !now.Before(until) {
		return 0
	}
	return until.Sub(now)
}

// FormatRemaining renders a countdown as "3m 42s".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}

// expireLocked transitions LOCKED_OUT -> LOCKED_INPUT once the expiry
// passes, clearing the counter and both persisted records. Caller holds
// the lock.
func (m *Machine) expireLocked(ctx context.Context, now time.Time) bool {
	if m.lockedUntil.IsZero() || now.Before(m.lockedUntil) {
		return false
	}
	m.logger.Info("lockout expired")
	m.clearLockoutLocked(ctx)
	return true
}

func (m *Machine) clearLockoutLocked(ctx context.Context) {
	m.lockedUntil = time.Time{}
	m.attempts = 0
	if err := m.store.ClearLockout(ctx); err != nil {
		m.logger.Warn("failed to clear lockout record",
			logger.Error(err))
	}
	if err := m.store.ClearAttempts(ctx); err != nil {
		m.logger.Warn("failed to clear attempt counter",
			logger.Error(err))
	}
}
