package ranking

import (
	"sort"

	"github.com/jonathan/smarthire/internal/types"
)

// ScoreAll scores every candidate against the filters and sorts them by score, highest first.
// Unscored candidates sort after all scored ones; ties keep the pool order.
func ScoreAll(pool []types.Candidate, filters types.FilterState) []types.ScoredCandidate {
	scored := make([]types.ScoredCandidate, len(pool))
	for i := range pool {
		scored[i] = types.ScoredCandidate{
			Candidate: pool[i],
			Score:     Score(&pool[i], filters),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scoreLess(scored[j].Score, scored[i].Score)
	})

	return scored
}

// scoreLess orders scores ascending with nil below every value.
func scoreLess(a, b *int) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return true
	case b == nil:
		return false
	default:
		return *a < *b
	}
}

// Filter narrows already scored candidates to those passing every set filter.
// The input order is preserved.
func Filter(scored []types.ScoredCandidate, filters types.FilterState) []types.ScoredCandidate {
	tokens := filters.SkillTokens()

	filtered := make([]types.ScoredCandidate, 0, len(scored))
	for _, c := range scored {
		if filters.Category != "" && string(c.Category) != filters.Category {
			continue
		}
		if filters.ExperienceLevel != "" && string(c.ExperienceLevel) != filters.ExperienceLevel {
			continue
		}
		if filters.Location != "" && c.Location != filters.Location {
			continue
		}
		if len(tokens) > 0 && countSkillMatches(tokens, c.Skills) == 0 {
			continue
		}
		if filters.MinScore > 0 && (c.Score == nil || *c.Score < filters.MinScore) {
			continue
		}
		filtered = append(filtered, c)
	}

	return filtered
}

// Apply scores, sorts and filters the pool in one pass.
func Apply(pool []types.Candidate, filters types.FilterState) []types.ScoredCandidate {
	return Filter(ScoreAll(pool, filters), filters)
}
