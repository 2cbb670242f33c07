package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowsBurst(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, 5, time.Minute)

	for i := 0; i < 5; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("request beyond burst should be denied")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, 1, time.Minute)

	if !rl.Allow("1.1.1.1") {
		t.Fatal("first key should be allowed")
	}
	if !rl.Allow("2.2.2.2") {
		t.Error("second key should not share the first key's budget")
	}
	if rl.Allow("1.1.1.1") {
		t.Error("first key should be exhausted")
	}
}

func TestRateLimiter_ExpiresIdleEntries(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, 1, time.Millisecond)

	rl.Allow("9.9.9.9")
	if len(rl.visitors) != 1 {
		t.Fatalf("visitors = %d, want 1", len(rl.visitors))
	}

	// Force the clock past the ttl so the next call garbage-collects.
	rl.now = func() time.Time { return time.Now().Add(time.Second) }
	rl.Allow("8.8.8.8")

	rl.mu.Lock()
	_, stale := rl.visitors["9.9.9.9"]
	rl.mu.Unlock()
	if stale {
		t.Error("idle entry should have been garbage-collected")
	}
}

func TestRateLimiter_EmptyKeyFallsBack(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, 1, time.Minute)

	if !rl.Allow("") {
		t.Fatal("empty key should be allowed once")
	}
	if rl.Allow("") {
		t.Error("empty keys share the fallback bucket")
	}
}
