package service

import (
	"time"

	"github.com/rllL1/portfolio/pkg/cache"
)

// PresenceTracker marks an admin online for ttl after each authenticated request
type PresenceTracker struct {
	seen cache.Cache[time.Time]
	ttl  time.Duration
}

func NewPresenceTracker(seen cache.Cache[time.Time], ttl time.Duration) *PresenceTracker {
	return &PresenceTracker{seen: seen, ttl: ttl}
}

func (p *PresenceTracker) Touch(userID string) {
	if userID == "" {
		return
	}
	p.seen.Set(userID, time.Now().UTC(), p.ttl)
}

func (p *PresenceTracker) Clear(userID string) {
	p.seen.Delete(userID)
}

func (p *PresenceTracker) AnyOnline() bool {
	return p.seen.Len() > 0
}
