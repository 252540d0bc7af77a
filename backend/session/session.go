package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the per-user context handed to every handler. It replaces any process-wide state.
type Session struct {
	ID        string
	CreatedAt time.Time
	Store     *Store

	mu         sync.Mutex
	lastSeen   time.Time
	giftOpened bool
}

// New starts an empty session seen at now.
func New(now time.Time) *Session {
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		Store:     NewStore(),
		lastSeen:  now,
	}
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) OpenGift() {
	s.mu.Lock()
	s.giftOpened = true
	s.mu.Unlock()
}

func (s *Session) GiftOpened() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.giftOpened
}
