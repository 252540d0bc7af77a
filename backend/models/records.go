package models

type HabitEntry struct {
	Date  Date   `json:"date" yaml:"date"`
	Label string `json:"label" yaml:"label"`
	Done  bool   `json:"done" yaml:"done"`
}

type JournalEntry struct {
	Date Date   `json:"date" yaml:"date"`
	Note string `json:"note" yaml:"note"`
}

type GoalEntry struct {
	Label      string   `json:"label" yaml:"label"`
	Category   Category `json:"category" yaml:"category"`
	TargetDate Date     `json:"target_date" yaml:"target_date"`
	Progress   int      `json:"progress" yaml:"progress"` // percent, 0-100
}

// Records is a full copy of one session's collections, in insertion order.
type Records struct {
	Habits  []HabitEntry   `json:"habits" yaml:"habits"`
	Journal []JournalEntry `json:"journal" yaml:"journal"`
	Goals   []GoalEntry    `json:"goals" yaml:"goals"`
}
