package ratelimiter

import (
	"strings"
	"sync"
	"time"
)

// Namespaces used by the public endpoints
const (
	NamespaceChat     = "chat"
	NamespaceLiveChat = "livechat"
	NamespaceContact  = "contact"
	NamespaceSignIn   = "signin"
)

// RatePolicy is a sliding window: at most MaxAttempts inside Window
type RatePolicy struct {
	MaxAttempts int
	Window      time.Duration
}

// Decision is the outcome of one Check
type Decision struct {
	Allowed bool
	// RetryAfter is the number of seconds until the oldest attempt leaves the window
	RetryAfter int
}

// RateLimiter keeps per "namespace:key" attempt timestamps in memory.
// Namespaces without a policy are denied.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	policies map[string]RatePolicy
	stop     chan struct{}
	stopped  bool
	now      func() time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		attempts: make(map[string][]time.Time),
		policies: make(map[string]RatePolicy),
		stop:     make(chan struct{}),
		now:      time.Now,
	}
	go rl.cleanupLoop(time.Minute)
	return rl
}

// SetPolicy configures a namespace. A non-positive maxAttempts disables limiting for it.
func (rl *RateLimiter) SetPolicy(namespace string, maxAttempts int, window time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.policies[namespace] = RatePolicy{MaxAttempts: maxAttempts, Window: window}
}

// Allow records an attempt and reports whether it fits the policy
func (rl *RateLimiter) Allow(namespace, key string) bool {
	return rl.Check(namespace, key).Allowed
}

// Check records an attempt when allowed and returns the retry delay when not
func (rl *RateLimiter) Check(namespace, key string) Decision {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, ok := rl.policies[namespace]
	if !ok {
		return Decision{Allowed: false}
	}
	if policy.MaxAttempts <= 0 {
		return Decision{Allowed: true}
	}

	now := rl.now()
	composite := namespace + ":" + key
	valid := liveAttempts(rl.attempts[composite], now.Add(-policy.Window))

	if len(valid) >= policy.MaxAttempts {
		rl.attempts[composite] = valid
		return Decision{Allowed: false, RetryAfter: retryAfter(valid[0], policy.Window, now)}
	}

	rl.attempts[composite] = append(valid, now)
	return Decision{Allowed: true}
}

// Reset forgets all attempts for namespace/key, e.g. after a successful sign-in
func (rl *RateLimiter) Reset(namespace, key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.attempts, namespace+":"+key)
}

// Stop ends the cleanup goroutine; safe to call more than once
func (rl *RateLimiter) Stop() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if !rl.stopped {
		close(rl.stop)
		rl.stopped = true
	}
}

// attempts are appended in time order so the slice stays sorted
func liveAttempts(list []time.Time, cutoff time.Time) []time.Time {
	for i, t := range list {
		if t.After(cutoff) {
			return list[i:]
		}
	}
	return list[:0]
}

func retryAfter(oldest time.Time, window time.Duration, now time.Time) int {
	remaining := oldest.Add(window).Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.purge()
		case <-rl.stop:
			return
		}
	}
}

// purge drops keys with no attempt inside their namespace window
func (rl *RateLimiter) purge() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for composite, list := range rl.attempts {
		namespace, _, _ := strings.Cut(composite, ":")
		policy, ok := rl.policies[namespace]
		if !ok || len(liveAttempts(list, now.Add(-policy.Window))) == 0 {
			delete(rl.attempts, composite)
		}
	}
}
