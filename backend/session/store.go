package session

import (
	"sync"

	"giftbox/backend/models"
)

// Store holds one session's records. Collections are append-only; there is no update or delete.
// Validation belongs to the entry forms, not to the store.
type Store struct {
	mu      sync.RWMutex
	habits  []models.HabitEntry
	journal []models.JournalEntry
	goals   []models.GoalEntry
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AppendHabit(entry models.HabitEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits = append(s.habits, entry)
}

func (s *Store) AppendJournal(entry models.JournalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journal = append(s.journal, entry)
}

func (s *Store) AppendGoal(entry models.GoalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, entry)
}

// Habits returns a copy of the habit collection in insertion order.
func (s *Store) Habits() []models.HabitEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.HabitEntry(nil), s.habits...)
}

func (s *Store) Journal() []models.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.JournalEntry(nil), s.journal...)
}

func (s *Store) Goals() []models.GoalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.GoalEntry(nil), s.goals...)
}

// Snapshot copies all three collections under a single lock so they are mutually consistent.
func (s *Store) Snapshot() models.Records {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Records{
		Habits:  append([]models.HabitEntry(nil), s.habits...),
		Journal: append([]models.JournalEntry(nil), s.journal...),
		Goals:   append([]models.GoalEntry(nil), s.goals...),
	}
}

// Load appends every record of r, keeping its order. Used by the offline renderer.
func (s *Store) Load(r models.Records) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits = append(s.habits, r.Habits...)
	s.journal = append(s.journal, r.Journal...)
	s.goals = append(s.goals, r.Goals...)
}
