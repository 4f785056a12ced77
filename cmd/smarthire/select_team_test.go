package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/smarthire/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSelectTeamCommand_UniqueTriple(t *testing.T) {
	out, errOut, err := execute(t, "select-team", "--dataset", fixturePath, "--strategy", "unique-triple")
	require.NoError(t, err)

	assert.Contains(t, out, "SELECTED TEAM (5/5)")
	assert.Contains(t, out, "1. Maya Chen (id 1)")
	assert.Contains(t, out, "5. Daniel Weiss (id 4)")
	assert.Contains(t, out, "Diversity:     100%")
	assert.Contains(t, errOut, "[success] 🎯 Auto-selected a 5-member team with 100% diversity!")
}

func TestSelectTeamCommand_SeededWeightedIsRepeatable(t *testing.T) {
	args := []string{"select-team", "--dataset", fixturePath, "--seed", "42", "--attempts", "20"}

	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)

	assert.Contains(t, first, "SELECTED TEAM (5/5)")
	assert.Equal(t, first, second)
}

func TestSelectTeamCommand_ExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.json")

	out, errOut, err := execute(t, "select-team", "--dataset", fixturePath, "--strategy", "unique-triple", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Team written to "+path)
	assert.Contains(t, errOut, "Team data exported successfully")
	assert.NotContains(t, errOut, "Warning")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	payload, err := export.ParseJSON(f)
	require.NoError(t, err)
	assert.Equal(t, 5, payload.TeamSize)
	assert.Equal(t, 100, payload.DiversityScore)
	require.Len(t, payload.Members, 5)
	assert.Equal(t, 1, payload.Members[0].ID)
}

func TestSelectTeamCommand_ExportCSVAndXLSX(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "team.csv")
	_, _, err := execute(t, "select-team", "--dataset", fixturePath, "--strategy", "unique-triple", "--out", csvPath, "--format", "csv")
	require.NoError(t, err)
	content, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Maya Chen")

	xlsxPath := filepath.Join(dir, "team.xlsx")
	_, _, err = execute(t, "select-team", "--dataset", fixturePath, "--strategy", "unique-triple", "--out", xlsxPath, "--format", "xlsx")
	require.NoError(t, err)

	book, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer book.Close()
	assert.NotEmpty(t, book.GetSheetList())
}

func TestSelectTeamCommand_ConfigFile(t *testing.T) {
	dataset, err := filepath.Abs(fixturePath)
	require.NoError(t, err)

	cfg, err := json.Marshal(map[string]any{"dataset": dataset, "strategy": "unique-triple"})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, cfg, 0o644))

	out, _, err := execute(t, "select-team", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "5. Daniel Weiss (id 4)")
}

func TestSelectTeamCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown strategy", args: []string{"select-team", "--dataset", fixturePath, "--strategy", "random"}, want: "unknown selection strategy"},
		{name: "unknown format", args: []string{"select-team", "--dataset", fixturePath, "--format", "pdf"}, want: "unsupported export format"},
		{name: "invalid filter", args: []string{"select-team", "--dataset", fixturePath, "--level", "Principal"}, want: "invalid filters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
