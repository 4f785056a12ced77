package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/smarthire/internal/schemas"
	"github.com/jonathan/smarthire/internal/session"
	"github.com/jonathan/smarthire/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleExport(t *testing.T) *types.TeamExport {
	t.Helper()
	pool := []types.Candidate{
		{ID: 1, Name: "Ada", Email: "ada@example.com", Category: types.CategoryEngineering, ExperienceLevel: types.LevelSenior, Location: "London", Skills: []string{"Go", "SQL"}, SalaryExpectation: 120000},
		{ID: 2, Name: "Grace, Jr.", Category: types.CategoryProduct, ExperienceLevel: types.LevelMid, Location: "Arlington", Skills: []string{"COBOL"}, SalaryExpectation: 99000},
		{ID: 3, Name: "Linus", Category: types.CategoryDesign, ExperienceLevel: types.LevelEntry, Location: "Helsinki"},
	}
	s := session.New(pool, nil)
	s.SetFilter(types.FilterCategory, "Engineering")
	s.ToggleSelect(2)
	s.ToggleSelect(1)

	e, err := s.ExportTeam(time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatJSON},
		{in: "json", want: FormatJSON},
		{in: " CSV ", want: FormatCSV},
		{in: "xlsx", want: FormatXLSX},
		{in: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Metadata(t *testing.T) {
	e := sampleExport(t)
	assert.Equal(t, "team-export-20260301-123000.csv", FormatCSV.FileName(e))
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
	assert.Contains(t, FormatXLSX.ContentType(), "spreadsheetml")
}

func TestJSON_RoundTrip(t *testing.T) {
	e := sampleExport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, e))
	require.NoError(t, schemas.ValidateTeamExport(buf.Bytes()))

	parsed, err := ParseJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, e.MemberIDs(), parsed.MemberIDs())
	assert.Equal(t, e.DiversityScore, parsed.DiversityScore)
	assert.Equal(t, e.ExportID, parsed.ExportID)
	assert.True(t, e.ExportedAt.Equal(parsed.ExportedAt))
	assert.Equal(t, e.Filters, parsed.Filters)
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON(bytes.NewBufferString("{"))
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	e := sampleExport(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, e))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, memberHeader, records[0])
	assert.Equal(t, []string{"2", "Grace, Jr.", "", "Product", "Mid-Level", "Arlington", "COBOL", "0", "99000"}, records[1])
	assert.Equal(t, "Go; SQL", records[2][6])
	assert.Equal(t, "63", records[2][7])
}

func TestWriteCSV_Unscored(t *testing.T) {
	e := &types.TeamExport{
		ExportID: uuid.New(),
		Members:  []types.TeamMember{{ID: 4, Name: "Unscored", Category: types.CategoryOther, ExperienceLevel: types.LevelEntry}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, e))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "", records[1][7])
}

func TestWriteXLSX(t *testing.T) {
	e := sampleExport(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, e))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{teamSheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(teamSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, memberHeader, rows[0])
	assert.Equal(t, "Grace, Jr.", rows[1][1])
	assert.Equal(t, "Ada", rows[2][1])
	assert.Equal(t, "63", rows[2][7])

	id, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, e.ExportID.String(), id)

	diversity, err := f.GetCellValue(summarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "100", diversity)
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, Format("pdf"), sampleExport(t)))
}
