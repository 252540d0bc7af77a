package session

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Registry keeps live sessions by ID. Sessions idle for longer than the TTL are dropped by Sweep.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	logger   *log.Logger
}

func NewRegistry(ttl time.Duration, logger *log.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// SetClock replaces the time source; tests use it to age sessions.
func (r *Registry) SetClock(now func() time.Time) {
	r.mu.Lock()
	r.now = now
	r.mu.Unlock()
}

func (r *Registry) Create() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := New(r.now())
	r.sessions[s.ID] = s
	if r.logger != nil {
		r.logger.Printf("session %s started (%d live)", s.ID, len(r.sessions))
	}
	return s
}

// Get returns the session and marks it as seen.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	now := r.now()
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	s.Touch(now)
	return s, true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep removes idle sessions and returns how many were dropped. A non-positive TTL disables expiry.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			removed++
			if r.logger != nil {
				r.logger.Printf("session %s expired after %v", id, r.now().Sub(s.CreatedAt).Round(time.Second))
			}
		}
	}
	if removed > 0 && r.logger != nil {
		r.logger.Printf("swept %d idle sessions (%d live)", removed, len(r.sessions))
	}
	return removed
}

// StartSweeper schedules Sweep on a cron spec such as "@every 10m". Stop the returned cron on shutdown.
func (r *Registry) StartSweeper(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { r.Sweep() }); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
