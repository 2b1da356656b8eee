package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// lockoutRecord is the wire shape of the lockout key: {"until": epoch-ms}.
type lockoutRecord struct {
	Until int64 `json:"until"`
}

// SaveLockout persists the absolute expiry of an armed lockout.
func (s *Store) SaveLockout(ctx context.Context, until time.Time) error {
	data, err := json.Marshal(lockoutRecord{Until: until.UnixMilli()})
	if err != nil {
		return fmt.Errorf("failed to marshal lockout record: %w", err)
	}
	if err := s.client.Set(ctx, LockoutKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save lockout record: %w", err)
	}
	return nil
}

// LoadLockout retrieves the lockout expiry. The second return value is
// false when no lockout is recorded; a malformed record counts as absent.
func (s *Store) LoadLockout(ctx context.Context) (time.Time, bool, error) {
	data, err := s.client.Get(ctx, LockoutKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to get lockout record: %w", err)
	}

	var rec lockoutRecord
	if err := json.Unmarshal(data, &rec); err != nil || rec.Until == 0 {
		return time.Time{}, false, nil
	}
	return time.UnixMilli(rec.Until), true, nil
}

// ClearLockout removes the lockout record.
func (s *Store) ClearLockout(ctx context.Context) error {
	if err := s.client.Del(ctx, LockoutKey()).Err(); err != nil {
		return fmt.Errorf("failed to clear lockout record: %w", err)
	}
	return nil
}

// SaveAttempts persists the wrong-attempt counter as a plain integer string.
func (s *Store) SaveAttempts(ctx context.Context, attempts int) error {
	if err := s.client.Set(ctx, AttemptsKey(), strconv.Itoa(attempts), 0).Err(); err != nil {
		return fmt.Errorf("failed to save attempt counter: %w", err)
	}
	return nil
}

// LoadAttempts retrieves the wrong-attempt counter. Absent or malformed
// values read as zero.
func (s *Store) LoadAttempts(ctx context.Context) (int, error) {
	raw, err := s.client.Get(ctx, AttemptsKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get attempt counter: %w", err)
	}

	attempts, err := strconv.Atoi(raw)
	if err != nil || attempts < 0 {
		return 0, nil
	}
	return attempts, nil
}

// ClearAttempts removes the attempt counter.
func (s *Store) ClearAttempts(ctx context.Context) error {
	if err := s.client.Del(ctx, AttemptsKey()).Err(); err != nil {
		return fmt.Errorf("failed to clear attempt counter: %w", err)
	}
	return nil
}
