package analytics

import (
	"fmt"
	"math"

	"github.com/jonathan/smarthire/internal/selection"
	"github.com/jonathan/smarthire/internal/session"
	"github.com/jonathan/smarthire/internal/types"
)

// excellentDiversity is the diversity score from which a team is called excellent
const excellentDiversity = 80

// Team insight reasons.
const (
	ReasonDiversity   = "Excellent diversity across roles, locations, and experience levels"
	ReasonEngineering = "Strong technical foundation with engineering expertise"
	ReasonProduct     = "Product strategy and management capabilities"
	ReasonDesign      = "User experience and design thinking"
	ReasonGeography   = "Geographic diversity for market insights"
	ReasonSeniority   = "Senior leadership and mentorship"
)

// Insights describes a selected team.
type Insights struct {
	TeamSize        int      `json:"team_size"`
	AverageScore    *int     `json:"average_score"`
	SalaryMin       int      `json:"salary_min"`
	SalaryMax       int      `json:"salary_max"`
	CategoriesCount int      `json:"categories_count"`
	DiversityScore  int      `json:"diversity_score"`
	Reasons         []string `json:"reasons"`
}

// Explain computes the insights of a team. The average score is nil when no
// member is scored; unscored members count as zero otherwise.
func Explain(team []types.ScoredCandidate) Insights {
	in := Insights{TeamSize: len(team), Reasons: []string{}}
	if len(team) == 0 {
		return in
	}

	members := selection.Members(team)
	in.DiversityScore = selection.Diversity(members)

	sum, scored := 0, false
	in.SalaryMin, in.SalaryMax = team[0].SalaryExpectation, team[0].SalaryExpectation
	categories := make(map[types.Category]bool)
	locations := make(map[string]bool)
	senior := false
	for _, c := range team {
		if c.Score != nil {
			scored = true
		}
		sum += c.ScoreOrZero()
		in.SalaryMin = min(in.SalaryMin, c.SalaryExpectation)
		in.SalaryMax = max(in.SalaryMax, c.SalaryExpectation)
		categories[c.Category] = true
		locations[c.Location] = true
		senior = senior || c.ExperienceLevel == types.LevelSenior
	}
	if scored {
		avg := int(math.Floor(float64(sum)/float64(len(team)) + 0.5))
		in.AverageScore = &avg
	}
	in.CategoriesCount = len(categories)

	if in.DiversityScore >= excellentDiversity {
		in.Reasons = append(in.Reasons, ReasonDiversity)
	}
	if categories[types.CategoryEngineering] {
		in.Reasons = append(in.Reasons, ReasonEngineering)
	}
	if categories[types.CategoryProduct] {
		in.Reasons = append(in.Reasons, ReasonProduct)
	}
	if categories[types.CategoryDesign] {
		in.Reasons = append(in.Reasons, ReasonDesign)
	}
	if len(locations) > 2 {
		in.Reasons = append(in.Reasons, ReasonGeography)
	}
	if senior {
		in.Reasons = append(in.Reasons, ReasonSeniority)
	}

	return in
}

// Stats are the headline numbers of a session.
type Stats struct {
	TotalApplicants int `json:"total_applicants"`
	Shortlisted     int `json:"shortlisted"`
	TeamSize        int `json:"team_size"`
	TeamCapacity    int `json:"team_capacity"`
	DiversityScore  int `json:"diversity_score"`
}

// TeamLabel renders the team size as "n/5".
func (s Stats) TeamLabel() string {
	return fmt.Sprintf("%d/%d", s.TeamSize, s.TeamCapacity)
}

// Report bundles everything the analytics view shows for a session.
type Report struct {
	Stats        Stats        `json:"stats"`
	Distribution Distribution `json:"distribution"`
	Insights     Insights     `json:"insights"`
}

// ForSession computes stats for the current state of a session.
func ForSession(s *session.Store) Stats {
	return Stats{
		TotalApplicants: len(s.Candidates()),
		Shortlisted:     len(s.Shortlist()),
		TeamSize:        len(s.TeamIDs()),
		TeamCapacity:    selection.MaxTeamSize,
		DiversityScore:  s.DiversityScore(),
	}
}

// Build computes the full analytics report of a session.
func Build(s *session.Store) Report {
	return Report{
		Stats:        ForSession(s),
		Distribution: Distribute(s.Candidates(), selection.Members(s.Filtered()), s.Team(), s.HasActiveFilters()),
		Insights:     Explain(s.TeamScored()),
	}
}
