package types

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is one exported member of the selected team.
type TeamMember struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email,omitempty"`
	Category          Category        `json:"category"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	Location          string          `json:"location"`
	Skills            []string        `json:"skills"`
	Score             *int            `json:"score"`
	SalaryExpectation int             `json:"salary_expectation"`
}

// TeamExport is the structured payload of a team export. Encoding it to a
// file format is left to the export package.
type TeamExport struct {
	ExportID       uuid.UUID    `json:"export_id"`
	ExportedAt     time.Time    `json:"exported_at"`
	Filters        FilterState  `json:"filters"`
	DiversityScore int          `json:"diversity_score"`
	TeamSize       int          `json:"team_size"`
	Members        []TeamMember `json:"members"`
}

// MemberIDs returns the member ids in export order.
func (e *TeamExport) MemberIDs() []int {
	ids := make([]int, len(e.Members))
	for i, m := range e.Members {
		ids[i] = m.ID
	}
	return ids
}

// NewTeamMember builds an export row from a scored candidate.
func NewTeamMember(c ScoredCandidate) TeamMember {
	skills := make([]string, len(c.Skills))
	copy(skills, c.Skills)
	return TeamMember{
		ID:                c.ID,
		Name:              c.Name,
		Email:             c.Email,
		Category:          c.Category,
		ExperienceLevel:   c.ExperienceLevel,
		Location:          c.Location,
		Skills:            skills,
		Score:             c.Score,
		SalaryExpectation: c.SalaryExpectation,
	}
}
