// File: services/booking/draftstore.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trimmr/models"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "draft:"

// DraftStore persists booking drafts in Redis, one snapshot per user, so an
// interrupted booking can resume after an app restart. Every save is a
// full-state replace of the previous snapshot.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration // 0 keeps drafts indefinitely
}

// NewDraftStore returns a DraftStore backed by the given Redis client.
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

// Get returns the user's draft, or nil when none is stored.
func (s *DraftStore) Get(ctx context.Context, userID string) (*models.BookingDraft, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

// Save replaces the user's stored draft with the given snapshot.
func (s *DraftStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+draft.UserID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

// Delete removes the user's stored draft.
func (s *DraftStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}
