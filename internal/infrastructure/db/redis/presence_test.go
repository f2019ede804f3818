package redis

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestTracker(t *testing.T) (*PresenceTracker, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPresenceTracker(client, 30*time.Second), mr, client
}

func TestHeartbeatJoinOnce(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	ctx := context.Background()

	joined, err := tracker.Heartbeat(ctx, "line-1", "worker-1")
	if err != nil {
		t.Fatalf("Heartbeat() err = %v", err)
	}
	if !joined {
		t.Error("first heartbeat should report a join")
	}

	// a second heartbeat only refreshes, no new join
	joined, err = tracker.Heartbeat(ctx, "line-1", "worker-1")
	if err != nil {
		t.Fatalf("Heartbeat() err = %v", err)
	}
	if joined {
		t.Error("repeat heartbeat should not report a join")
	}
}

func TestHeartbeatPublishesJoinEvent(t *testing.T) {
	tracker, _, client := newTestTracker(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, Channel("line-1"))
	t.Cleanup(func() { _ = sub.Close() })
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if _, err := tracker.Heartbeat(ctx, "line-1", "worker-1"); err != nil {
		t.Fatalf("Heartbeat() err = %v", err)
	}

	msg, err := sub.ReceiveTimeout(ctx, 2*time.Second)
	if err != nil {
		t.Fatalf("no presence event received: %v", err)
	}
	payload, ok := msg.(*redis.Message)
	if !ok {
		t.Fatalf("unexpected message type %T", msg)
	}

	var event PresenceEvent
	if err := json.Unmarshal([]byte(payload.Payload), &event); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if event.Event != "join" || event.LineID != "line-1" || event.WorkerID != "worker-1" {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestPresenceExpires(t *testing.T) {
	tracker, mr, _ := newTestTracker(t)
	ctx := context.Background()

	if _, err := tracker.Heartbeat(ctx, "line-1", "worker-1"); err != nil {
		t.Fatalf("Heartbeat() err = %v", err)
	}

	mr.FastForward(31 * time.Second)

	online, err := tracker.Online(ctx, "line-1")
	if err != nil {
		t.Fatalf("Online() err = %v", err)
	}
	if len(online) != 0 {
		t.Errorf("worker still online after TTL expiry: %v", online)
	}

	// the next heartbeat counts as a fresh join again
	joined, err := tracker.Heartbeat(ctx, "line-1", "worker-1")
	if err != nil {
		t.Fatalf("Heartbeat() err = %v", err)
	}
	if !joined {
		t.Error("heartbeat after expiry should report a join")
	}
}

func TestLeave(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	ctx := context.Background()

	left, err := tracker.Leave(ctx, "line-1", "worker-1")
	if err != nil {
		t.Fatalf("Leave() err = %v", err)
	}
	if left {
		t.Error("leaving without presence should be a no-op")
	}

	if _, err := tracker.Heartbeat(ctx, "line-1", "worker-1"); err != nil {
		t.Fatalf("Heartbeat() err = %v", err)
	}
	left, err = tracker.Leave(ctx, "line-1", "worker-1")
	if err != nil {
		t.Fatalf("Leave() err = %v", err)
	}
	if !left {
		t.Error("leave after heartbeat should remove presence")
	}

	online, err := tracker.Online(ctx, "line-1")
	if err != nil {
		t.Fatalf("Online() err = %v", err)
	}
	if len(online) != 0 {
		t.Errorf("worker still online after leave: %v", online)
	}
}

func TestOnlinePerLine(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	ctx := context.Background()

	for _, w := range []string{"worker-1", "worker-2"} {
		if _, err := tracker.Heartbeat(ctx, "line-1", w); err != nil {
			t.Fatalf("Heartbeat() err = %v", err)
		}
	}
	if _, err := tracker.Heartbeat(ctx, "line-2", "worker-3"); err != nil {
		t.Fatalf("Heartbeat() err = %v", err)
	}

	online, err := tracker.Online(ctx, "line-1")
	if err != nil {
		t.Fatalf("Online() err = %v", err)
	}
	sort.Strings(online)
	if len(online) != 2 || online[0] != "worker-1" || online[1] != "worker-2" {
		t.Errorf("line-1 online = %v, want [worker-1 worker-2]", online)
	}

	// empty line yields an empty, non-nil list
	online, err = tracker.Online(ctx, "line-3")
	if err != nil {
		t.Fatalf("Online() err = %v", err)
	}
	if online == nil || len(online) != 0 {
		t.Errorf("line-3 online = %v, want empty list", online)
	}
}
