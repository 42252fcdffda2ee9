package memory

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	if _, err := cache.Get(context.Background(), "missing"); err == nil {
		t.Error("Expected an error for a missing key")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Expected an error after deletion")
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Expected an error after expiration")
	}
}

func TestMemoryCache_CopiesOnGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	first, _ := cache.Get(ctx, "key")
	first[0] = 'X'

	second, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(second) != "value" {
		t.Errorf("Cached entry was mutated through a returned slice: %q", second)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err == nil {
		t.Error("Expected an error from Set with a cancelled context")
	}
	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Expected an error from Get with a cancelled context")
	}
	if err := cache.Delete(ctx, "key"); err == nil {
		t.Error("Expected an error from Delete with a cancelled context")
	}
}
