package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Aakash17x08/linkhive/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ErrCorruptDocument marks a persisted payload that no longer parses.
// Callers recover by falling back to the default document.
var ErrCorruptDocument = errors.New("corrupt persisted document")

// Store handles Redis operations for the root document and the privacy
// lockout records. The whole document is written on every change; there
// is no delta persistence.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveDocument serializes and stores the whole root document. No TTL:
// this is the user's data, it never expires.
func (s *Store) SaveDocument(ctx context.Context, doc domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := s.client.Set(ctx, DocumentKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

// LoadDocument retrieves the root document. The second return value is
// false when no document has ever been saved. A payload that fails to
// parse yields ErrCorruptDocument so the caller can fall back to defaults.
func (s *Store) LoadDocument(ctx context.Context) (domain.Document, bool, error) {
	data, err := s.client.Get(ctx, DocumentKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Document{}, false, nil
		}
		return domain.Document{}, false, fmt.Errorf("failed to get document: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Document{}, false, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	return doc, true, nil
}

// DeleteDocument removes the persisted document.
func (s *Store) DeleteDocument(ctx context.Context) error {
	if err := s.client.Del(ctx, DocumentKey()).Err(); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
