package limit

import (
	"sync"
	"time"
)

// Throttle rate limits repeated events by key, allowing at most one event
// per key inside the configured interval.
type Throttle struct {
	lock     sync.Mutex
	interval time.Duration
	last     map[string]time.Time
	now      func() time.Time
}

func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{
		interval: interval,
		last:     make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow reports whether the event for key may fire now, recording the time
// when it does.
func (t *Throttle) Allow(key string) bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	now := t.now()
	last, found := t.last[key]
	if found && now.Sub(last) < t.interval {
		return false
	}
	t.last[key] = now
	return true
}
