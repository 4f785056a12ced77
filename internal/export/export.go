// Package export encodes team export payloads for download.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/smarthire/internal/types"
)

// Format is a team export file format.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat resolves a format name, defaulting to JSON when empty.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", name)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// FileName names the download of an export.
func (f Format) FileName(e *types.TeamExport) string {
	return fmt.Sprintf("team-export-%s.%s", e.ExportedAt.Format("20060102-150405"), f)
}

// Write encodes the export in the given format.
func Write(w io.Writer, format Format, e *types.TeamExport) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, e)
	case FormatCSV:
		return WriteCSV(w, e)
	case FormatXLSX:
		return WriteXLSX(w, e)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteJSON encodes the export as indented JSON.
func WriteJSON(w io.Writer, e *types.TeamExport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("failed to encode team export: %w", err)
	}
	return nil
}

// ParseJSON decodes an export written by WriteJSON.
func ParseJSON(r io.Reader) (*types.TeamExport, error) {
	var e types.TeamExport
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return nil, fmt.Errorf("failed to decode team export: %w", err)
	}
	return &e, nil
}

const skillSeparator = "; "

// memberHeader is the column layout shared by the CSV and XLSX encoders.
var memberHeader = []string{
	"ID", "Name", "Email", "Category", "Experience Level", "Location", "Skills", "Score", "Salary Expectation",
}

func memberRow(m types.TeamMember) []string {
	score := ""
	if m.Score != nil {
		score = strconv.Itoa(*m.Score)
	}
	return []string{
		strconv.Itoa(m.ID),
		m.Name,
		m.Email,
		string(m.Category),
		string(m.ExperienceLevel),
		m.Location,
		strings.Join(m.Skills, skillSeparator),
		score,
		strconv.Itoa(m.SalaryExpectation),
	}
}

// WriteCSV writes one row per member under a header row.
func WriteCSV(w io.Writer, e *types.TeamExport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(memberHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, m := range e.Members {
		if err := cw.Write(memberRow(m)); err != nil {
			return fmt.Errorf("failed to write CSV row for member %d: %w", m.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
