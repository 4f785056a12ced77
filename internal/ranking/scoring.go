package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/smarthire/internal/types"
)

// Maximum points per scoring criterion
const (
	categoryPoints   = 25
	experiencePoints = 20
	locationPoints   = 15
	skillsPoints     = 25
	qualityPoints    = 15

	// qualityBonus is awarded per satisfied quality indicator
	qualityBonus = 5
	// experiencedEntries is the work history length that earns the experience bonus
	experiencedEntries = 3
)

// Breakdown itemizes a candidate's score for a given filter state.
// Max fields are zero for criteria whose filter field is not set.
type Breakdown struct {
	Category       int      `json:"category"`
	CategoryMax    int      `json:"category_max"`
	Experience     int      `json:"experience"`
	ExperienceMax  int      `json:"experience_max"`
	Location       int      `json:"location"`
	LocationMax    int      `json:"location_max"`
	Skills         int      `json:"skills"`
	SkillsMax      int      `json:"skills_max"`
	MatchedSkills  []string `json:"matched_skills,omitempty"`
	Quality        int      `json:"quality"`
	QualityMax     int      `json:"quality_max"`
	Points         int      `json:"points"`
	MaxPoints      int      `json:"max_points"`
	Score          *int     `json:"score"`
	FiltersApplied bool     `json:"filters_applied"`
}

// Score computes the 0-100 relevance score of a candidate for the given filters.
// It returns nil when no filter is active.
func Score(candidate *types.Candidate, filters types.FilterState) *int {
	return Explain(candidate, filters).Score
}

// Explain computes the score together with its per-criterion breakdown.
func Explain(candidate *types.Candidate, filters types.FilterState) Breakdown {
	var b Breakdown
	if !filters.IsActive() {
		return b
	}
	b.FiltersApplied = true

	if filters.Category != "" {
		b.CategoryMax = categoryPoints
		if string(candidate.Category) == filters.Category {
			b.Category = categoryPoints
		}
	}

	if filters.ExperienceLevel != "" {
		b.ExperienceMax = experiencePoints
		if string(candidate.ExperienceLevel) == filters.ExperienceLevel {
			b.Experience = experiencePoints
		}
	}

	if filters.Location != "" {
		b.LocationMax = locationPoints
		if candidate.Location == filters.Location {
			b.Location = locationPoints
		}
	}

	// Any non-blank skills value counts towards the maximum, even one made only of separators.
	if strings.TrimSpace(filters.Skills) != "" {
		b.SkillsMax = skillsPoints
		if tokens := filters.SkillTokens(); len(tokens) > 0 {
			b.MatchedSkills = MatchedSkills(tokens, candidate.Skills)
			b.Skills = roundHalfUp(skillsPoints * float64(len(b.MatchedSkills)) / float64(len(tokens)))
		}
	}

	b.QualityMax = qualityPoints
	b.Quality = qualityScore(candidate)

	b.Points = b.Category + b.Experience + b.Location + b.Skills + b.Quality
	b.MaxPoints = b.CategoryMax + b.ExperienceMax + b.LocationMax + b.SkillsMax + b.QualityMax

	score := roundHalfUp(100 * float64(b.Points) / float64(b.MaxPoints))
	b.Score = types.IntPtr(clamp(score, 0, 100))
	return b
}

// qualityScore sums the general quality indicators, independent of the filters.
func qualityScore(candidate *types.Candidate) int {
	score := 0

	level := candidate.Education.HighestLevel
	if strings.Contains(level, "Master's") || strings.Contains(level, "J.D") {
		score += qualityBonus
	}

	for _, d := range candidate.Education.Degrees {
		if d.IsTop50 {
			score += qualityBonus
			break
		}
	}

	if len(candidate.WorkExperiences) >= experiencedEntries {
		score += qualityBonus
	}

	return score
}

// roundHalfUp rounds to the nearest integer with halves rounded towards +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
