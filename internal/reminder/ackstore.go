package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// AckStore records which reminder occurrences an owner has already been
// shown. Acknowledging twice is a no-op, never an error.
type AckStore interface {
	Acknowledge(ctx context.Context, userID uint, occurrenceKey string) error
	IsAcknowledged(ctx context.Context, userID uint, occurrenceKey string) (bool, error)
}

// Markers expire well after any activity they could belong to has passed;
// the occurrence key already re-arms edited reminders, the TTL only keeps
// the keyspace from growing forever.
const ackTTL = 30 * 24 * time.Hour

func ackKey(userID uint, occurrenceKey string) string {
	return fmt.Sprintf("ack:%d:%s", userID, occurrenceKey)
}

type RedisAckStore struct {
	client *redis.Client
}

func NewRedisAckStore(client *redis.Client) *RedisAckStore {
	return &RedisAckStore{client: client}
}

func (s *RedisAckStore) Acknowledge(ctx context.Context, userID uint, occurrenceKey string) error {
	return s.client.Set(ctx, ackKey(userID, occurrenceKey), 1, ackTTL).Err()
}

func (s *RedisAckStore) IsAcknowledged(ctx context.Context, userID uint, occurrenceKey string) (bool, error) {
	_, err := s.client.Get(ctx, ackKey(userID, occurrenceKey)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MemoryAckStore backs deployments without Redis and the test suite.
// Markers live for the lifetime of the process.
type MemoryAckStore struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

func NewMemoryAckStore() *MemoryAckStore {
	return &MemoryAckStore{keys: make(map[string]struct{})}
}

func (s *MemoryAckStore) Acknowledge(ctx context.Context, userID uint, occurrenceKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[ackKey(userID, occurrenceKey)] = struct{}{}
	return nil
}

func (s *MemoryAckStore) IsAcknowledged(ctx context.Context, userID uint, occurrenceKey string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keys[ackKey(userID, occurrenceKey)]
	return ok, nil
}
