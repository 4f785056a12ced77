package selection

import "github.com/jonathan/smarthire/internal/types"

// UniqueTriple is a single deterministic pass over the pool in score order.
// It first takes every candidate whose category, location and experience
// level are all new to the team, then fills the remaining places by score.
type UniqueTriple struct{}

// Name implements Strategy.
func (UniqueTriple) Name() string {
	return StrategyUniqueTriple
}

// Select implements Strategy.
func (UniqueTriple) Select(pool []types.ScoredCandidate) []types.ScoredCandidate {
	sorted := byScore(pool)
	team := make([]types.ScoredCandidate, 0, min(len(pool), MaxTeamSize))
	seen := newCoverage()

	for i := range sorted {
		if len(team) == MaxTeamSize {
			return team
		}
		c := &sorted[i]
		if seen.newCategory(c) && seen.newLocation(c) && seen.newLevel(c) {
			team = append(team, *c)
			seen.add(c)
		}
	}

	for i := range sorted {
		if len(team) == MaxTeamSize {
			break
		}
		c := &sorted[i]
		if !seen.ids[c.ID] {
			team = append(team, *c)
			seen.add(c)
		}
	}

	return team
}
