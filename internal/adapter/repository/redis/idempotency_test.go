package redis

import (
	"context"
	"testing"
	"time"
)

func TestIdempotencyStore_CheckAndSetExisting(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if err := client.Set(ctx, store.prefix+"key", `{"balance":"4000.00"}`, time.Minute).Err(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	exists, resp, err := store.CheckAndSet(ctx, "key", nil, time.Minute)
	if err != nil {
		t.Fatalf("CheckAndSet failed: %v", err)
	}

	if !exists || string(resp) != `{"balance":"4000.00"}` {
		t.Fatalf("expected existing cached response, got exists=%v resp=%s", exists, resp)
	}
}

func TestIdempotencyStore_CheckAndSetLocksNewKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, resp, err := store.CheckAndSet(ctx, "pending", nil, time.Minute)
	if err != nil || exists || resp != nil {
		t.Fatalf("unexpected result: exists=%v resp=%v err=%v", exists, resp, err)
	}

	val, err := client.Get(ctx, store.prefix+"pending").Result()
	if err != nil || val != PendingMarker {
		t.Fatalf("expected placeholder lock, got val=%s err=%v", val, err)
	}

	if ttl := mr.TTL(store.prefix + "pending"); ttl != time.Minute {
		t.Fatalf("expected ttl of one minute, got %s", ttl)
	}
}

func TestIdempotencyStore_SecondClaimSeesPending(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "dup", nil, time.Minute); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}

	exists, resp, err := store.CheckAndSet(ctx, "dup", nil, time.Minute)
	if err != nil {
		t.Fatalf("second claim failed: %v", err)
	}
	if !exists || string(resp) != PendingMarker {
		t.Fatalf("expected pending marker, got exists=%v resp=%s", exists, resp)
	}
}

func TestIdempotencyStore_CheckAndSetWithResponse(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, _, err := store.CheckAndSet(ctx, "direct", []byte("done"), time.Minute)
	if err != nil || exists {
		t.Fatalf("unexpected result: exists=%v err=%v", exists, err)
	}

	val, err := client.Get(ctx, store.prefix+"direct").Result()
	if err != nil || val != "done" {
		t.Fatalf("expected stored response, got val=%s err=%v", val, err)
	}
}

func TestIdempotencyStore_Update(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if err := store.Update(ctx, "complete", []byte("done"), time.Minute); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	val, err := client.Get(ctx, store.prefix+"complete").Result()
	if err != nil || val != "done" {
		t.Fatalf("expected stored response, got val=%s err=%v", val, err)
	}
}

func TestIdempotencyStore_Release(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "retry", nil, time.Minute); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	if err := store.Release(ctx, "retry"); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	if mr.Exists(store.prefix + "retry") {
		t.Fatalf("expected key to be deleted")
	}

	exists, _, err := store.CheckAndSet(ctx, "retry", nil, time.Minute)
	if err != nil || exists {
		t.Fatalf("expected key to be claimable again, exists=%v err=%v", exists, err)
	}
}

func TestIdempotencyStore_ClientClosed(t *testing.T) {
	client, mr := newTestRedisClient(t)
	mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)

	if _, _, err := store.CheckAndSet(context.Background(), "down", nil, time.Minute); err == nil {
		t.Fatalf("expected error when redis is unavailable")
	}
}
