package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftbox/backend/models"
)

const recordsYAML = `habits:
  - date: 2025-12-01
    label: caminar 20 min
    done: true
  - date: 2025-12-02
    label: caminar 20 min
    done: false
journal:
  - date: 2025-12-01
    note: Agradezco a mi familia
goals:
  - label: leer 12 libros
    category: Habilidades
    target_date: 2026-03-01
    progress: 25
  - label: correr 10k
    category: Health
    target_date: 2026-06-01
    progress: 60
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRecords(t *testing.T) {
	records, err := loadRecords(writeFile(t, "records.yaml", recordsYAML))
	require.NoError(t, err)

	require.Len(t, records.Habits, 2)
	assert.Equal(t, models.NewDate(2025, time.December, 1), records.Habits[0].Date)
	assert.True(t, records.Habits[0].Done)
	require.Len(t, records.Goals, 2)
	assert.Equal(t, models.Skills, records.Goals[0].Category)
	assert.Equal(t, models.Health, records.Goals[1].Category)
	assert.Equal(t, "Agradezco a mi familia", records.Journal[0].Note)
}

func TestLoadRecordsRejectsBadInput(t *testing.T) {
	_, err := loadRecords(writeFile(t, "bad.yaml", "goals:\n  - label: x\n    category: Viajes\n"))
	assert.Error(t, err)

	_, err = loadRecords(writeFile(t, "range.yaml", "goals:\n  - label: x\n    category: Work\n    progress: 140\n"))
	assert.Error(t, err)

	_, err = loadRecords(writeFile(t, "unknown.yaml", "tasks: []\n"))
	assert.Error(t, err)
}

func TestLoadRecordsEmptyFile(t *testing.T) {
	records, err := loadRecords(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, records.Goals)
}

func TestRenderCommandWritesPNG(t *testing.T) {
	input := writeFile(t, "records.yaml", recordsYAML)
	output := filepath.Join(t.TempDir(), "resumen_metas.png")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "--input", input, "--output", output, "--variant", "goals", "--font", ""})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestRenderCommandRejectsPersonalVariant(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "--input", writeFile(t, "r.yaml", recordsYAML), "--variant", "personal"})
	assert.Error(t, cmd.Execute())
}
