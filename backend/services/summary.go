package services

import (
	"giftbox/backend/models"
)

// RecentNotesLimit is how many journal notes the summary shows.
const RecentNotesLimit = 10

// ComputeSummary derives the summary statistics from a session's records. It is total: empty
// collections yield zero ratios and models.NoCategory, never an error.
func ComputeSummary(r models.Records) models.SummarySnapshot {
	snapshot := models.SummarySnapshot{
		TotalHabits: len(r.Habits),
		TopCategory: models.NoCategory,
		RecentNotes: recentNotes(r.Journal, RecentNotesLimit),
	}

	for _, h := range r.Habits {
		if h.Done {
			snapshot.CompletedHabits++
		}
	}
	if snapshot.TotalHabits > 0 {
		snapshot.CompletionRatio = float64(snapshot.CompletedHabits) / float64(snapshot.TotalHabits) * 100
	}

	if len(r.Goals) > 0 {
		total := 0
		for _, g := range r.Goals {
			total += g.Progress
		}
		snapshot.AverageProgress = float64(total) / float64(len(r.Goals))
		snapshot.TopCategory = topCategory(r.Goals)
	}

	return snapshot
}

// topCategory returns the most frequent category. On a tie the category seen first wins.
func topCategory(goals []models.GoalEntry) models.Category {
	counts := make(map[models.Category]int)
	var order []models.Category
	for _, g := range goals {
		if counts[g.Category] == 0 {
			order = append(order, g.Category)
		}
		counts[g.Category]++
	}

	best := models.NoCategory
	bestCount := 0
	for _, c := range order {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}

func recentNotes(journal []models.JournalEntry, limit int) []string {
	start := 0
	if len(journal) > limit {
		start = len(journal) - limit
	}
	notes := make([]string, 0, len(journal)-start)
	for _, e := range journal[start:] {
		notes = append(notes, e.Note)
	}
	return notes
}
