package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPresenceTTL = 90 * time.Second

// PresenceTracker records which workers are currently online per line.
// Presence is a TTL key per (line, worker); join/leave transitions are
// published on a per-line pub/sub channel so the realtime layer can fan
// them out to subscribed clients.
type PresenceTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// PresenceEvent is the payload published on presence channels.
type PresenceEvent struct {
	Event     string    `json:"event"` // "join" or "leave"
	LineID    string    `json:"line_id"`
	WorkerID  string    `json:"worker_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPresenceTracker creates a PresenceTracker wrapping the given client.
// If ttl <= 0, a default of 90 seconds is used.
func NewPresenceTracker(client *redis.Client, ttl time.Duration) *PresenceTracker {
	if ttl <= 0 {
		ttl = defaultPresenceTTL
	}
	return &PresenceTracker{client: client, ttl: ttl}
}

// Channel returns the pub/sub channel name clients subscribe to for a line.
func Channel(lineID string) string {
	return "presence:line:" + lineID
}

// Heartbeat marks the worker online on the line and refreshes the TTL.
// The first heartbeat after absence publishes a "join" event; subsequent
// heartbeats only extend the TTL.
func (t *PresenceTracker) Heartbeat(ctx context.Context, lineID, workerID string) (joined bool, err error) {
	key := t.key(lineID, workerID)

	existed, err := t.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("presence heartbeat: %w", err)
	}
	if err := t.client.Set(ctx, key, "1", t.ttl).Err(); err != nil {
		return false, fmt.Errorf("presence heartbeat: %w", err)
	}
	if existed > 0 {
		return false, nil
	}

	if err := t.publish(ctx, PresenceEvent{
		Event:     "join",
		LineID:    lineID,
		WorkerID:  workerID,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		return true, err
	}
	return true, nil
}

// Leave removes the worker's presence key and, when one was present,
// publishes a "leave" event.
func (t *PresenceTracker) Leave(ctx context.Context, lineID, workerID string) (left bool, err error) {
	removed, err := t.client.Del(ctx, t.key(lineID, workerID)).Result()
	if err != nil {
		return false, fmt.Errorf("presence leave: %w", err)
	}
	if removed == 0 {
		return false, nil
	}

	if err := t.publish(ctx, PresenceEvent{
		Event:     "leave",
		LineID:    lineID,
		WorkerID:  workerID,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		return true, err
	}
	return true, nil
}

// Online returns the ids of workers currently present on the line.
func (t *PresenceTracker) Online(ctx context.Context, lineID string) ([]string, error) {
	prefix := t.key(lineID, "")
	var (
		workers []string
		cursor  uint64
	)
	for {
		keys, next, err := t.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("presence scan: %w", err)
		}
		for _, key := range keys {
			workers = append(workers, strings.TrimPrefix(key, prefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if workers == nil {
		workers = []string{}
	}
	return workers, nil
}

func (t *PresenceTracker) publish(ctx context.Context, event PresenceEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := t.client.Publish(ctx, Channel(event.LineID), payload).Err(); err != nil {
		return fmt.Errorf("presence publish: %w", err)
	}
	return nil
}

func (t *PresenceTracker) key(lineID, workerID string) string {
	return fmt.Sprintf("presence:%s:%s", lineID, workerID)
}
