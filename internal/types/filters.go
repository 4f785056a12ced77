package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FilterState holds the dashboard filter values.
type FilterState struct {
	Category        string `json:"category" validate:"omitempty,oneof=Engineering Design Product Legal Marketing Sales Other"`
	ExperienceLevel string `json:"experienceLevel" validate:"omitempty,oneof=Entry Junior Mid-Level Senior"`
	Location        string `json:"location"`
	Skills          string `json:"skills"`
	MinScore        int    `json:"minScore" validate:"min=0,max=100"`
}

// IsActive reports whether at least one filter field is set.
func (f FilterState) IsActive() bool {
	return f.Category != "" || f.ExperienceLevel != "" || f.Location != "" || f.Skills != "" || f.MinScore > 0
}

// SkillTokens splits the skills filter on commas and returns the trimmed,
// lowercased, non-empty tokens.
func (f FilterState) SkillTokens() []string {
	if f.Skills == "" {
		return nil
	}
	parts := strings.Split(strings.ToLower(f.Skills), ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Validate validates the FilterState using the validator.
func (f *FilterState) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// FilterField names one field of FilterState.
type FilterField string

// Filter fields accepted by the session store.
const (
	FilterCategory        FilterField = "category"
	FilterExperienceLevel FilterField = "experienceLevel"
	FilterLocation        FilterField = "location"
	FilterSkills          FilterField = "skills"
	FilterMinScore        FilterField = "minScore"
)

// SetFilterRequest is the body of a single filter update.
type SetFilterRequest struct {
	Field string `json:"field" validate:"required,oneof=category experienceLevel location skills minScore"`
	Value string `json:"value"`
}

// Validate validates the SetFilterRequest using the validator.
func (r *SetFilterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ViewMode selects which candidates the dashboard lists.
type ViewMode string

// View modes.
const (
	ViewAll         ViewMode = "all"
	ViewShortlisted ViewMode = "shortlisted"
	ViewSelected    ViewMode = "selected"
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	switch m {
	case ViewAll, ViewShortlisted, ViewSelected:
		return true
	}
	return false
}
