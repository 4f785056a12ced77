package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/smarthire/internal/types"
	"github.com/xuri/excelize/v2"
)

const (
	teamSheet    = "Team"
	summarySheet = "Summary"
)

// WriteXLSX writes a workbook with the members on one sheet and the export
// metadata on another.
func WriteXLSX(w io.Writer, e *types.TeamExport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", teamSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := writeTeamSheet(f, e); err != nil {
		return fmt.Errorf("failed to create team sheet: %w", err)
	}
	if err := writeSummarySheet(f, e); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeTeamSheet(f *excelize.File, e *types.TeamExport) error {
	widths := map[string]float64{"A": 6, "B": 24, "C": 28, "D": 14, "E": 16, "F": 18, "G": 40, "H": 8, "I": 18}
	for col, width := range widths {
		if err := f.SetColWidth(teamSheet, col, col, width); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	for i, header := range memberHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(teamSheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(teamSheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for r, m := range e.Members {
		row := r + 2
		values := []interface{}{m.ID, m.Name, m.Email, string(m.Category), string(m.ExperienceLevel), m.Location, strings.Join(m.Skills, skillSeparator), nil, m.SalaryExpectation}
		if m.Score != nil {
			values[7] = *m.Score
		}
		for c, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(teamSheet, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeSummarySheet(f *excelize.File, e *types.TeamExport) error {
	if err := f.SetColWidth(summarySheet, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 40); err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	rows := [][2]interface{}{
		{"Export ID", e.ExportID.String()},
		{"Exported At", e.ExportedAt.Format(time.RFC3339)},
		{"Team Size", e.TeamSize},
		{"Diversity Score", e.DiversityScore},
		{"Category Filter", e.Filters.Category},
		{"Experience Filter", e.Filters.ExperienceLevel},
		{"Location Filter", e.Filters.Location},
		{"Skills Filter", e.Filters.Skills},
		{"Minimum Score", e.Filters.MinScore},
	}
	for i, r := range rows {
		label := fmt.Sprintf("A%d", i+1)
		if err := f.SetCellValue(summarySheet, label, r[0]); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, label, label, labelStyle); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), r[1]); err != nil {
			return err
		}
	}

	return nil
}
