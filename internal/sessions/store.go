// Package sessions holds per-learner attempt history. The history used to be
// an ambient, unbounded array in browser storage; here it is an explicit store
// with defined read and update operations so the profile derivation has a
// single authoritative input.
package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"mentora-backend/internal/models"
)

// Store is the session-history contract. Append is unbounded; List returns
// entries in insertion order.
type Store interface {
	Append(ctx context.Context, entry models.SessionEntry) error
	List(ctx context.Context, learnerID string) ([]models.SessionEntry, error)
	Clear(ctx context.Context, learnerID string) error
}

// ─── Redis-backed store ───

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(learnerID string) string {
	return fmt.Sprintf("sessions:%s", learnerID)
}

func (s *RedisStore) Append(ctx context.Context, entry models.SessionEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode session entry: %w", err)
	}
	if err := s.client.RPush(ctx, sessionKey(entry.LearnerID), string(data)).Err(); err != nil {
		return fmt.Errorf("failed to append session entry: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, learnerID string) ([]models.SessionEntry, error) {
	raw, err := s.client.LRange(ctx, sessionKey(learnerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list session entries: %w", err)
	}

	entries := make([]models.SessionEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.SessionEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			// Skip entries written by older clients rather than failing the read.
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *RedisStore) Clear(ctx context.Context, learnerID string) error {
	if err := s.client.Del(ctx, sessionKey(learnerID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session entries: %w", err)
	}
	return nil
}

// ─── In-memory store (used when REDIS_URL is unset) ───

type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]models.SessionEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]models.SessionEntry)}
}

func (s *MemoryStore) Append(_ context.Context, entry models.SessionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.LearnerID] = append(s.entries[entry.LearnerID], entry)
	return nil
}

func (s *MemoryStore) List(_ context.Context, learnerID string) ([]models.SessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]models.SessionEntry, len(s.entries[learnerID]))
	copy(entries, s.entries[learnerID])
	return entries, nil
}

func (s *MemoryStore) Clear(_ context.Context, learnerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, learnerID)
	return nil
}
