package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nanoconsult/internal/dialogue"
)

// RedisSnapshots persists session snapshots as JSON under a per-chat key
// with a TTL, so an abandoned dialogue eventually expires on its own.
type RedisSnapshots struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshots returns a redis-backed snapshot store.
func NewRedisSnapshots(client *redis.Client, ttl time.Duration) *RedisSnapshots {
	return &RedisSnapshots{client: client, ttl: ttl}
}

func (r *RedisSnapshots) key(chatID int64) string {
	return fmt.Sprintf("consult:session:%d", chatID)
}

// Save stores the session snapshot.
func (r *RedisSnapshots) Save(ctx context.Context, s dialogue.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(s.ChatID), data, r.ttl).Err()
}

// Load returns the stored snapshot, or nil when none exists.
func (r *RedisSnapshots) Load(ctx context.Context, chatID int64) (*dialogue.Session, error) {
	result, err := r.client.Get(ctx, r.key(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s dialogue.Session
	if err := json.Unmarshal([]byte(result), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the snapshot.
func (r *RedisSnapshots) Delete(ctx context.Context, chatID int64) error {
	return r.client.Del(ctx, r.key(chatID)).Err()
}
