package selection

import (
	"math/rand/v2"
	"sort"

	"github.com/jonathan/smarthire/internal/types"
)

// Strategy names accepted by StrategyByName.
const (
	StrategyWeighted     = "weighted"
	StrategyUniqueTriple = "unique-triple"
)

// Strategy picks a team of min(MaxTeamSize, len(pool)) candidates from pool.
type Strategy interface {
	Name() string
	Select(pool []types.ScoredCandidate) []types.ScoredCandidate
}

// StrategyByName builds the named strategy. rng and attempts only apply to
// the weighted search; a nil rng is replaced by a randomly seeded one.
func StrategyByName(name string, rng *rand.Rand, attempts int) (Strategy, error) {
	switch name {
	case "", StrategyWeighted:
		return NewWeightedSearch(rng, attempts), nil
	case StrategyUniqueTriple:
		return UniqueTriple{}, nil
	default:
		return nil, &Error{Strategy: name, Message: "unknown selection strategy"}
	}
}

// NewSeededRand returns a random source that replays the same sequence for the same seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// byScore copies pool sorted by score, highest first, with unscored treated as 0.
func byScore(pool []types.ScoredCandidate) []types.ScoredCandidate {
	sorted := make([]types.ScoredCandidate, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScoreOrZero() > sorted[j].ScoreOrZero()
	})
	return sorted
}

// coverage tracks which attributes a team under construction already has.
type coverage struct {
	ids        map[int]bool
	categories map[types.Category]bool
	locations  map[string]bool
	levels     map[types.ExperienceLevel]bool
}

func newCoverage() *coverage {
	return &coverage{
		ids:        make(map[int]bool),
		categories: make(map[types.Category]bool),
		locations:  make(map[string]bool),
		levels:     make(map[types.ExperienceLevel]bool),
	}
}

func (c *coverage) add(candidate *types.ScoredCandidate) {
	c.ids[candidate.ID] = true
	c.categories[candidate.Category] = true
	c.locations[candidate.Location] = true
	c.levels[candidate.ExperienceLevel] = true
}

func (c *coverage) newCategory(candidate *types.ScoredCandidate) bool {
	return !c.categories[candidate.Category]
}

func (c *coverage) newLocation(candidate *types.ScoredCandidate) bool {
	return !c.locations[candidate.Location]
}

func (c *coverage) newLevel(candidate *types.ScoredCandidate) bool {
	return !c.levels[candidate.ExperienceLevel]
}

func bonus(ok bool, points int) int {
	if ok {
		return points
	}
	return 0
}
