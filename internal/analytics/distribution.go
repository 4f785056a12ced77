// Package analytics summarizes a candidate set for the dashboard charts and
// explains what a selected team brings.
package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/smarthire/internal/types"
)

const (
	// topN bounds the location and skill charts
	topN = 10
	// OtherBucket collects the locations beyond the top ten
	OtherBucket = "Other"
)

// Source names the candidate set a Distribution was computed from.
type Source string

// Distribution sources.
const (
	SourceAll      Source = "all"
	SourceFiltered Source = "filtered"
	SourceSelected Source = "selected"
)

// Count is one named bar or slice of a chart.
type Count struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Distribution is the breakdown of one candidate set by category, location,
// experience level and skill.
type Distribution struct {
	Categories       []Count `json:"categories"`
	Locations        []Count `json:"locations"`
	Experience       []Count `json:"experience"`
	Skills           []Count `json:"skills"`
	TotalCandidates  int     `json:"total_candidates"`
	SourceType       Source  `json:"source_type"`
	HasActiveFilters bool    `json:"has_active_filters"`
}

// Distribute picks the selected team when there is one, otherwise the filtered
// candidates when any pass, otherwise the whole pool, and counts it.
func Distribute(all, filtered, team []types.Candidate, filtersActive bool) Distribution {
	source, kind := all, SourceAll
	switch {
	case len(team) > 0:
		source, kind = team, SourceSelected
	case len(filtered) > 0:
		source, kind = filtered, SourceFiltered
	}

	categories := newCounter()
	locations := newCounter()
	levels := newCounter()
	skills := newCounter()
	for _, c := range source {
		categories.add(string(c.Category))
		locations.add(c.Location)
		levels.add(string(c.ExperienceLevel))
		for _, skill := range c.Skills {
			skills.add(strings.TrimSpace(skill))
		}
	}

	return Distribution{
		Categories:       categories.counts(),
		Locations:        withOther(locations.ranked(), topN),
		Experience:       levels.counts(),
		Skills:           top(skills.ranked(), topN),
		TotalCandidates:  len(source),
		SourceType:       kind,
		HasActiveFilters: filtersActive,
	}
}

// Title decorates a chart title with the data source.
func (d Distribution) Title(base string) string {
	switch {
	case d.SourceType == SourceSelected:
		return base + " (Selected Team)"
	case d.HasActiveFilters:
		return base + " (Filtered Results)"
	default:
		return base + " (All Candidates)"
	}
}

// Description states which candidates the charts show.
func (d Distribution) Description() string {
	switch {
	case d.SourceType == SourceSelected:
		return fmt.Sprintf("Showing %d selected team members", d.TotalCandidates)
	case d.HasActiveFilters:
		return fmt.Sprintf("Showing %d filtered candidates", d.TotalCandidates)
	default:
		return fmt.Sprintf("Showing all %d candidates", d.TotalCandidates)
	}
}

// counter counts names, remembering the order each was first seen.
type counter struct {
	order  []string
	values map[string]int
}

func newCounter() *counter {
	return &counter{values: make(map[string]int)}
}

func (c *counter) add(name string) {
	if name == "" {
		return
	}
	if _, ok := c.values[name]; !ok {
		c.order = append(c.order, name)
	}
	c.values[name]++
}

// counts lists the counts in first-seen order.
func (c *counter) counts() []Count {
	out := make([]Count, len(c.order))
	for i, name := range c.order {
		out[i] = Count{Name: name, Value: c.values[name]}
	}
	return out
}

// ranked lists the counts largest first; ties keep first-seen order.
func (c *counter) ranked() []Count {
	out := c.counts()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

func top(counts []Count, n int) []Count {
	if len(counts) > n {
		return counts[:n]
	}
	return counts
}

// withOther keeps the first n counts and folds the rest into OtherBucket.
func withOther(counts []Count, n int) []Count {
	if len(counts) <= n {
		return counts
	}
	rest := 0
	for _, c := range counts[n:] {
		rest += c.Value
	}
	return append(counts[:n:n], Count{Name: OtherBucket, Value: rest})
}
