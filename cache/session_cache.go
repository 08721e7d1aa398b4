package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"distrohub/core/player"

	"github.com/go-redis/redis/v8"
)

// The playback session is process-wide; its snapshot lives under a single
// key so the persistent player survives a service restart.
const sessionStateKey = "player:session"

// Snapshots are refreshed on every state change, so a generous TTL only has
// to outlive idle periods.
const sessionStateTTL = 7 * 24 * time.Hour

// SaveSessionState persists a playback session snapshot.
func SaveSessionState(ctx context.Context, state player.State) error {
	if RedisClient == nil {
		return fmt.Errorf("Redis client not initialized")
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	if err := RedisClient.Set(ctx, sessionStateKey, payload, sessionStateTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return nil
}

// LoadSessionState restores the last persisted snapshot. The second return
// value is false when no snapshot exists.
func LoadSessionState(ctx context.Context) (player.State, bool, error) {
	var state player.State

	if RedisClient == nil {
		return state, false, fmt.Errorf("Redis client not initialized")
	}

	payload, err := RedisClient.Get(ctx, sessionStateKey).Result()
	if err == redis.Nil {
		return state, false, nil
	}
	if err != nil {
		return state, false, fmt.Errorf("failed to load session state: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return state, false, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	return state, true, nil
}

// ClearSessionState drops the persisted snapshot.
func ClearSessionState(ctx context.Context) error {
	if RedisClient == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	if err := RedisClient.Del(ctx, sessionStateKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session state: %w", err)
	}
	return nil
}
