package redis

import (
	"context"
	"testing"
	"time"
)

func TestReportCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewReportCache(client)
	ctx := context.Background()

	payload := []byte(`{"id":"01TEST"}`)
	if err := cache.Set(ctx, "cashflow:ACCOUNTS:2025-01-01:2025-03-31:0", payload, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	raw, err := cache.Get(ctx, "cashflow:ACCOUNTS:2025-01-01:2025-03-31:0")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(raw) != string(payload) {
		t.Fatalf("expected %s, got %s", payload, raw)
	}
}

func TestReportCacheMissIsNotAnError(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewReportCache(client)

	raw, err := cache.Get(context.Background(), "no-such-report")
	if err != nil {
		t.Fatalf("expected nil error on miss, got %v", err)
	}
	if raw != nil {
		t.Fatalf("expected nil payload on miss, got %s", raw)
	}
}

func TestReportCacheTTLExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewReportCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Second)

	raw, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if raw != nil {
		t.Fatalf("expected expired key to miss, got %s", raw)
	}
}

func TestReportCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewReportCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	raw, err := cache.Get(ctx, "key")
	if err != nil || raw != nil {
		t.Fatalf("expected miss after delete, got raw=%s err=%v", raw, err)
	}
}
