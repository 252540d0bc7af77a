package models

// SummarySnapshot is derived on every view and never stored.
type SummarySnapshot struct {
	TotalHabits     int      `json:"total_habits"`
	CompletedHabits int      `json:"completed_habits"`
	CompletionRatio float64  `json:"completion_ratio"`
	AverageProgress float64  `json:"average_progress"`
	TopCategory     Category `json:"top_category"`
	RecentNotes     []string `json:"recent_notes"`
}

// SummaryDocument is the formatted text of a snapshot, split the way the image renderer needs it.
type SummaryDocument struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Footer   string `json:"footer"`
	Markdown string `json:"markdown"`
}
