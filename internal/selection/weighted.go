package selection

import (
	"math/rand/v2"
	"sort"

	"github.com/jonathan/smarthire/internal/types"
)

// DefaultAttempts bounds the number of randomized passes of a WeightedSearch.
const DefaultAttempts = 100

// Value bonuses used while building a team.
const (
	seedLocationBonus = 100
	seedLevelBonus    = 80

	fillCategoryBonus = 200
	fillLocationBonus = 150
	fillLevelBonus    = 100

	// seedChoices is how many of the best valued candidates a category pick samples from
	seedChoices = 2
)

// WeightedSearch is a randomized local search for the most diverse team.
//
// Each attempt seeds the team with one candidate per category, visiting the
// categories in a shuffled order, then fills the remaining places with the
// candidates adding the most new attributes. The best team over all attempts
// wins; the search stops as soon as a team reaches TheoreticalMax.
//
// Results depend on the random source. Two searches built with the same
// seed return the same team for the same pool.
type WeightedSearch struct {
	rng      *rand.Rand
	attempts int
}

// NewWeightedSearch creates a WeightedSearch. attempts <= 0 uses DefaultAttempts.
func NewWeightedSearch(rng *rand.Rand, attempts int) *WeightedSearch {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	return &WeightedSearch{rng: rng, attempts: attempts}
}

// Name implements Strategy.
func (w *WeightedSearch) Name() string {
	return StrategyWeighted
}

// Select implements Strategy.
func (w *WeightedSearch) Select(pool []types.ScoredCandidate) []types.ScoredCandidate {
	if len(pool) <= MaxTeamSize {
		team := make([]types.ScoredCandidate, len(pool))
		copy(team, pool)
		return team
	}

	sorted := byScore(pool)
	target := TheoreticalMax(Members(pool))

	var best []types.ScoredCandidate
	bestScore := -1
	for i := 0; i < w.attempts; i++ {
		team := w.attempt(sorted)
		// Ties keep the earlier team.
		if score := Diversity(Members(team)); score > bestScore {
			best, bestScore = team, score
		}
		if bestScore >= target {
			break
		}
	}

	return best
}

func (w *WeightedSearch) attempt(sorted []types.ScoredCandidate) []types.ScoredCandidate {
	team := make([]types.ScoredCandidate, 0, MaxTeamSize)
	seen := newCoverage()

	for _, category := range w.shuffledCategories(sorted) {
		if len(team) == MaxTeamSize {
			break
		}
		if pick := w.seedPick(sorted, category, seen); pick != nil {
			team = append(team, *pick)
			seen.add(pick)
		}
	}

	for len(team) < MaxTeamSize {
		pick := w.fillPick(sorted, seen)
		if pick == nil {
			break
		}
		team = append(team, *pick)
		seen.add(pick)
	}

	return team
}

// shuffledCategories returns the distinct categories of the pool in random order.
func (w *WeightedSearch) shuffledCategories(sorted []types.ScoredCandidate) []types.Category {
	seen := make(map[types.Category]bool)
	var categories []types.Category
	for _, c := range sorted {
		if !seen[c.Category] {
			seen[c.Category] = true
			categories = append(categories, c.Category)
		}
	}
	w.rng.Shuffle(len(categories), func(i, j int) {
		categories[i], categories[j] = categories[j], categories[i]
	})
	return categories
}

// seedPick samples one of the best valued unused candidates of a category.
func (w *WeightedSearch) seedPick(sorted []types.ScoredCandidate, category types.Category, seen *coverage) *types.ScoredCandidate {
	type valued struct {
		candidate *types.ScoredCandidate
		value     int
	}

	var options []valued
	for i := range sorted {
		c := &sorted[i]
		if c.Category != category || seen.ids[c.ID] {
			continue
		}
		options = append(options, valued{
			candidate: c,
			value: c.ScoreOrZero() +
				bonus(seen.newLocation(c), seedLocationBonus) +
				bonus(seen.newLevel(c), seedLevelBonus),
		})
	}
	if len(options) == 0 {
		return nil
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].value > options[j].value
	})
	return options[w.rng.IntN(min(seedChoices, len(options)))].candidate
}

// fillPick picks the unused candidate adding the most value, sampling among ties.
func (w *WeightedSearch) fillPick(sorted []types.ScoredCandidate, seen *coverage) *types.ScoredCandidate {
	var top []*types.ScoredCandidate
	bestValue := 0
	for i := range sorted {
		c := &sorted[i]
		if seen.ids[c.ID] {
			continue
		}
		value := c.ScoreOrZero() +
			bonus(seen.newCategory(c), fillCategoryBonus) +
			bonus(seen.newLocation(c), fillLocationBonus) +
			bonus(seen.newLevel(c), fillLevelBonus)
		switch {
		case len(top) == 0 || value > bestValue:
			top, bestValue = []*types.ScoredCandidate{c}, value
		case value == bestValue:
			top = append(top, c)
		}
	}
	if len(top) == 0 {
		return nil
	}
	return top[w.rng.IntN(len(top))]
}
