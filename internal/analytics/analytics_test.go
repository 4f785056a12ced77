package analytics

import (
	"fmt"
	"testing"

	"github.com/jonathan/smarthire/internal/session"
	"github.com/jonathan/smarthire/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func person(id int, category types.Category, level types.ExperienceLevel, location string, salary int, skills ...string) types.Candidate {
	return types.Candidate{
		ID:                id,
		Name:              fmt.Sprintf("person-%d", id),
		Category:          category,
		ExperienceLevel:   level,
		Location:          location,
		SalaryExpectation: salary,
		Skills:            skills,
	}
}

func TestDistribute_SourceSelection(t *testing.T) {
	all := []types.Candidate{
		person(1, types.CategoryEngineering, types.LevelSenior, "Berlin", 0),
		person(2, types.CategoryDesign, types.LevelEntry, "Paris", 0),
		person(3, types.CategoryDesign, types.LevelEntry, "Paris", 0),
	}

	d := Distribute(all, all[1:], all[:1], true)
	assert.Equal(t, SourceSelected, d.SourceType)
	assert.Equal(t, 1, d.TotalCandidates)
	assert.Equal(t, "Roles (Selected Team)", d.Title("Roles"))
	assert.Equal(t, "Showing 1 selected team members", d.Description())

	d = Distribute(all, all[1:], nil, true)
	assert.Equal(t, SourceFiltered, d.SourceType)
	assert.Equal(t, []Count{{Name: "Design", Value: 2}}, d.Categories)
	assert.Equal(t, "Roles (Filtered Results)", d.Title("Roles"))
	assert.Equal(t, "Showing 2 filtered candidates", d.Description())

	// filters that match nothing fall back to the whole pool
	d = Distribute(all, nil, nil, true)
	assert.Equal(t, SourceAll, d.SourceType)
	assert.Equal(t, 3, d.TotalCandidates)

	d = Distribute(all, all, nil, false)
	assert.Equal(t, SourceFiltered, d.SourceType)
	assert.Equal(t, "Roles (All Candidates)", d.Title("Roles"))
	assert.Equal(t, "Showing all 3 candidates", d.Description())
}

func TestDistribute_Counts(t *testing.T) {
	pool := []types.Candidate{
		person(1, types.CategorySales, types.LevelMid, "Lima", 0, "CRM", " Excel "),
		person(2, types.CategoryEngineering, types.LevelSenior, "Berlin", 0, "Go", "Excel", "  "),
		person(3, types.CategoryEngineering, types.LevelMid, "Berlin", 0, "Go"),
		person(4, types.CategoryEngineering, types.LevelEntry, "", 0, "Go"),
	}

	d := Distribute(pool, nil, nil, false)
	assert.Equal(t, []Count{{"Sales", 1}, {"Engineering", 3}}, d.Categories)
	assert.Equal(t, []Count{{"Mid-Level", 2}, {"Senior", 1}, {"Entry", 1}}, d.Experience)
	assert.Equal(t, []Count{{"Berlin", 2}, {"Lima", 1}}, d.Locations)
	assert.Equal(t, []Count{{"Go", 3}, {"Excel", 2}, {"CRM", 1}}, d.Skills)
}

func TestDistribute_TopLocationsAndOther(t *testing.T) {
	var pool []types.Candidate
	id := 1
	for i := 0; i < 13; i++ {
		// location-0 appears 13 times, location-12 once
		for n := 0; n < 13-i; n++ {
			pool = append(pool, person(id, types.CategoryOther, types.LevelEntry, fmt.Sprintf("location-%d", i), 0, fmt.Sprintf("skill-%d", i)))
			id++
		}
	}

	d := Distribute(pool, nil, nil, false)
	require.Len(t, d.Locations, 11)
	assert.Equal(t, Count{Name: "location-0", Value: 13}, d.Locations[0])
	assert.Equal(t, Count{Name: "location-9", Value: 4}, d.Locations[9])
	assert.Equal(t, Count{Name: OtherBucket, Value: 3 + 2 + 1}, d.Locations[10])

	require.Len(t, d.Skills, 10)
	assert.Equal(t, "skill-0", d.Skills[0].Name)
}

func TestExplain(t *testing.T) {
	team := []types.ScoredCandidate{
		{Candidate: person(1, types.CategoryEngineering, types.LevelSenior, "Berlin", 120000), Score: types.IntPtr(80)},
		{Candidate: person(2, types.CategoryDesign, types.LevelJunior, "Paris", 70000), Score: types.IntPtr(45)},
		{Candidate: person(3, types.CategoryProduct, types.LevelMid, "Austin", 95000), Score: types.IntPtr(60)},
	}

	in := Explain(team)
	assert.Equal(t, 3, in.TeamSize)
	require.NotNil(t, in.AverageScore)
	assert.Equal(t, 62, *in.AverageScore) // 61.67
	assert.Equal(t, 70000, in.SalaryMin)
	assert.Equal(t, 120000, in.SalaryMax)
	assert.Equal(t, 3, in.CategoriesCount)
	assert.Equal(t, 100, in.DiversityScore)
	assert.Equal(t, []string{
		ReasonDiversity, ReasonEngineering, ReasonProduct, ReasonDesign, ReasonGeography, ReasonSeniority,
	}, in.Reasons)
}

func TestExplain_UnscoredAndUniform(t *testing.T) {
	team := []types.ScoredCandidate{
		{Candidate: person(1, types.CategorySales, types.LevelEntry, "Lima", 40000)},
		{Candidate: person(2, types.CategorySales, types.LevelEntry, "Lima", 40000)},
	}
	in := Explain(team)
	assert.Nil(t, in.AverageScore)
	assert.Equal(t, 50, in.DiversityScore)
	assert.Empty(t, in.Reasons)

	empty := Explain(nil)
	assert.Zero(t, empty.TeamSize)
	assert.NotNil(t, empty.Reasons)
}

func TestBuild(t *testing.T) {
	pool := []types.Candidate{
		person(1, types.CategoryEngineering, types.LevelSenior, "Berlin", 100000, "Go"),
		person(2, types.CategoryDesign, types.LevelEntry, "Paris", 60000, "Figma"),
		person(3, types.CategoryLegal, types.LevelMid, "Lagos", 80000, "Contracts"),
	}
	s := session.New(pool, nil)
	s.ToggleShortlist(3)
	s.ToggleSelect(1)
	s.ToggleSelect(2)

	r := Build(s)
	assert.Equal(t, Stats{TotalApplicants: 3, Shortlisted: 1, TeamSize: 2, TeamCapacity: 5, DiversityScore: 100}, r.Stats)
	assert.Equal(t, "2/5", r.Stats.TeamLabel())
	assert.Equal(t, SourceSelected, r.Distribution.SourceType)
	assert.Equal(t, 2, r.Insights.TeamSize)
	assert.Nil(t, r.Insights.AverageScore)
}
