package ratelimiter

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter() (*RateLimiter, *time.Time) {
	rl := NewRateLimiter()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_Allow_BasicLimiting(t *testing.T) {
	rl, _ := newTestLimiter()
	defer rl.Stop()

	rl.SetPolicy(NamespaceChat, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow(NamespaceChat, "1.2.3.4"), "attempt %d", i+1)
	}
	assert.False(t, rl.Allow(NamespaceChat, "1.2.3.4"))
	assert.True(t, rl.Allow(NamespaceChat, "5.6.7.8"), "keys are independent")
}

func TestRateLimiter_Allow_MissingPolicy(t *testing.T) {
	rl, _ := newTestLimiter()
	defer rl.Stop()

	assert.False(t, rl.Allow("unknown", "key"))
}

func TestRateLimiter_DisabledPolicy(t *testing.T) {
	rl, _ := newTestLimiter()
	defer rl.Stop()

	rl.SetPolicy(NamespaceContact, 0, time.Minute)
	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow(NamespaceContact, "k"))
	}
}

func TestRateLimiter_SlidingWindow(t *testing.T) {
	rl, now := newTestLimiter()
	defer rl.Stop()

	rl.SetPolicy(NamespaceSignIn, 2, time.Minute)

	assert.True(t, rl.Allow(NamespaceSignIn, "a"))
	*now = now.Add(30 * time.Second)
	assert.True(t, rl.Allow(NamespaceSignIn, "a"))

	d := rl.Check(NamespaceSignIn, "a")
	assert.False(t, d.Allowed)
	assert.Equal(t, 31, d.RetryAfter)

	*now = now.Add(31 * time.Second)
	assert.True(t, rl.Allow(NamespaceSignIn, "a"), "first attempt left the window")
	assert.False(t, rl.Allow(NamespaceSignIn, "a"))
}

func TestRateLimiter_Reset(t *testing.T) {
	rl, _ := newTestLimiter()
	defer rl.Stop()

	rl.SetPolicy(NamespaceSignIn, 1, time.Minute)
	assert.True(t, rl.Allow(NamespaceSignIn, "a"))
	assert.False(t, rl.Allow(NamespaceSignIn, "a"))

	rl.Reset(NamespaceSignIn, "a")
	assert.True(t, rl.Allow(NamespaceSignIn, "a"))
}

func TestRateLimiter_Purge(t *testing.T) {
	rl, now := newTestLimiter()
	defer rl.Stop()

	rl.SetPolicy(NamespaceChat, 5, time.Minute)
	rl.SetPolicy(NamespaceContact, 5, time.Hour)
	rl.Allow(NamespaceChat, "a")
	rl.Allow(NamespaceContact, "a")

	*now = now.Add(2 * time.Minute)
	rl.purge()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.attempts, NamespaceChat+":a")
	assert.Contains(t, rl.attempts, NamespaceContact+":a")
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	rl := NewRateLimiter()
	defer rl.Stop()

	rl.SetPolicy(NamespaceLiveChat, 50, time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow(NamespaceLiveChat, "shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestRateLimiter_Stop(t *testing.T) {
	rl := NewRateLimiter()
	rl.Stop()
	rl.Stop()
}

func TestRateLimiter_ManyKeys(t *testing.T) {
	rl, _ := newTestLimiter()
	defer rl.Stop()

	rl.SetPolicy(NamespaceContact, 1, time.Minute)
	for i := 0; i < 500; i++ {
		key := fmt.Sprintf("10.0.0.%d", i)
		assert.True(t, rl.Allow(NamespaceContact, key))
		assert.False(t, rl.Allow(NamespaceContact, key))
	}
}
