package services

import (
	"fmt"
	"strings"
	"time"

	"giftbox/backend/models"
)

const (
	footerTemplate = "Generado por Analytics Team – ¡Feliz Navidad y un gran %d!"
	emptyNotesLine = "- Sin registros"
	GiftMessage    = "✨ ¡Feliz Navidad 2025! Que sea un año de salud, proyectos con propósito y metas cumplidas. ✨"
)

// BuildDocument formats a snapshot for display and export. goals is only read by the goals variant.
func BuildDocument(variant models.Variant, snapshot models.SummarySnapshot, goals []models.GoalEntry, now time.Time) models.SummaryDocument {
	year := now.Year()

	var body strings.Builder
	fmt.Fprintf(&body, "**Año:** %d\n", year)

	switch variant {
	case models.VariantGoals:
		writeGoalsSection(&body, snapshot)
		body.WriteString("\n## Detalle de metas\n")
		if len(goals) == 0 {
			body.WriteString(emptyNotesLine + "\n")
		}
		for _, g := range goals {
			fmt.Fprintf(&body, "- %s (%s, %s): %d%%\n", g.Label, g.Category.Label(), g.TargetDate, g.Progress)
		}
	default:
		body.WriteString("\n## Hábitos\n")
		fmt.Fprintf(&body, "- Total: %d\n", snapshot.TotalHabits)
		fmt.Fprintf(&body, "- Completados: %d (%.1f%%)\n", snapshot.CompletedHabits, snapshot.CompletionRatio)
		writeGoalsSection(&body, snapshot)
		fmt.Fprintf(&body, "\n## Gratitud / Diario (últimas %d entradas)\n", RecentNotesLimit)
		if len(snapshot.RecentNotes) == 0 {
			body.WriteString(emptyNotesLine + "\n")
		}
		for _, note := range snapshot.RecentNotes {
			fmt.Fprintf(&body, "- %s\n", note)
		}
	}

	doc := models.SummaryDocument{
		Title:  variant.Title(),
		Body:   strings.TrimRight(body.String(), "\n"),
		Footer: fmt.Sprintf(footerTemplate, year+1),
	}
	doc.Markdown = fmt.Sprintf("# 🎉 %s\n%s\n\n---\n> %s 🎄\n", doc.Title, doc.Body, doc.Footer)
	return doc
}

func writeGoalsSection(b *strings.Builder, snapshot models.SummarySnapshot) {
	b.WriteString("\n## Metas\n")
	fmt.Fprintf(b, "- Avance promedio: %.1f%%\n", snapshot.AverageProgress)
	fmt.Fprintf(b, "- Categoría más trabajada: %s\n", snapshot.TopCategory.Label())
}
