package selection

import (
	"math"

	"github.com/jonathan/smarthire/internal/types"
)

const (
	// MaxTeamSize is the number of members a full team has
	MaxTeamSize = 5

	categoryWeight   = 40.0
	locationWeight   = 35.0
	experienceWeight = 25.0

	// levelSlots is the number of distinct experience levels that exist
	levelSlots = 4
)

// Diversity scores a team from 0 to 100 by how many distinct categories,
// locations and experience levels it covers. An empty team scores 0.
func Diversity(team []types.Candidate) int {
	if len(team) == 0 {
		return 0
	}

	categories := make(map[types.Category]struct{})
	locations := make(map[string]struct{})
	levels := make(map[types.ExperienceLevel]struct{})
	for _, c := range team {
		categories[c.Category] = struct{}{}
		locations[c.Location] = struct{}{}
		levels[c.ExperienceLevel] = struct{}{}
	}

	return weigh(len(team), len(categories), len(locations), len(levels))
}

// TheoreticalMax returns the best diversity a team drawn from pool could reach,
// given the distinct categories, locations and levels the pool actually has.
func TheoreticalMax(pool []types.Candidate) int {
	size := min(len(pool), MaxTeamSize)
	if size == 0 {
		return 0
	}

	categories := make(map[types.Category]struct{})
	locations := make(map[string]struct{})
	levels := make(map[types.ExperienceLevel]struct{})
	for _, c := range pool {
		categories[c.Category] = struct{}{}
		locations[c.Location] = struct{}{}
		levels[c.ExperienceLevel] = struct{}{}
	}

	return weigh(size,
		min(len(categories), size),
		min(len(locations), size),
		min(len(levels), size, levelSlots),
	)
}

func weigh(size, categories, locations, levels int) int {
	n := float64(size)
	total := float64(categories)/min(n, MaxTeamSize)*categoryWeight +
		float64(locations)/min(n, MaxTeamSize)*locationWeight +
		float64(levels)/min(n, levelSlots)*experienceWeight
	return int(math.Floor(total + 0.5))
}

// Members strips scores from a scored team.
func Members(team []types.ScoredCandidate) []types.Candidate {
	out := make([]types.Candidate, len(team))
	for i := range team {
		out[i] = team[i].Candidate
	}
	return out
}
