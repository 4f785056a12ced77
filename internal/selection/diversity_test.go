package selection

import (
	"testing"

	"github.com/jonathan/smarthire/internal/types"
	"github.com/stretchr/testify/assert"
)

func member(id int, category types.Category, location string, level types.ExperienceLevel) types.Candidate {
	return types.Candidate{ID: id, Name: "Member", Category: category, Location: location, ExperienceLevel: level}
}

func TestDiversity(t *testing.T) {
	tests := []struct {
		name string
		team []types.Candidate
		want int
	}{
		{name: "empty team", team: nil, want: 0},
		{
			name: "single member covers everything it can",
			team: []types.Candidate{member(1, types.CategoryDesign, "Paris", types.LevelJunior)},
			want: 100,
		},
		{
			name: "two identical profiles",
			team: []types.Candidate{
				member(1, types.CategoryDesign, "Paris", types.LevelJunior),
				member(2, types.CategoryDesign, "Paris", types.LevelJunior),
			},
			want: 50,
		},
		{
			name: "fully diverse team of five",
			team: []types.Candidate{
				member(1, types.CategoryEngineering, "Berlin", types.LevelEntry),
				member(2, types.CategoryDesign, "Paris", types.LevelJunior),
				member(3, types.CategoryProduct, "Austin", types.LevelMid),
				member(4, types.CategoryLegal, "Lagos", types.LevelSenior),
				member(5, types.CategorySales, "Tokyo", types.LevelEntry),
			},
			want: 100,
		},
		{
			name: "five members sharing one location",
			team: []types.Candidate{
				member(1, types.CategoryEngineering, "Berlin", types.LevelEntry),
				member(2, types.CategoryDesign, "Berlin", types.LevelJunior),
				member(3, types.CategoryProduct, "Berlin", types.LevelMid),
				member(4, types.CategoryLegal, "Berlin", types.LevelSenior),
				member(5, types.CategorySales, "Berlin", types.LevelEntry),
			},
			want: 72, // 40 + 7 + 25
		},
		{
			name: "three members two categories",
			team: []types.Candidate{
				member(1, types.CategoryEngineering, "Berlin", types.LevelEntry),
				member(2, types.CategoryEngineering, "Paris", types.LevelEntry),
				member(3, types.CategoryDesign, "Austin", types.LevelSenior),
			},
			want: 78, // 26.67 + 35 + 16.67
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diversity(tt.team))
		})
	}
}

func TestDiversity_NewAttributesNeverLowerTheScore(t *testing.T) {
	team := []types.Candidate{
		member(1, types.CategoryEngineering, "Berlin", types.LevelEntry),
		member(2, types.CategoryEngineering, "Berlin", types.LevelEntry),
		member(3, types.CategoryEngineering, "Berlin", types.LevelEntry),
		member(4, types.CategoryDesign, "Paris", types.LevelEntry),
	}
	before := Diversity(team)

	replacements := []types.Candidate{
		member(9, types.CategoryLegal, "Berlin", types.LevelEntry),
		member(9, types.CategoryEngineering, "Lagos", types.LevelEntry),
		member(9, types.CategoryEngineering, "Berlin", types.LevelSenior),
		member(9, types.CategorySales, "Tokyo", types.LevelMid),
	}
	for _, r := range replacements {
		changed := append([]types.Candidate{}, team...)
		changed[2] = r
		assert.GreaterOrEqual(t, Diversity(changed), before)
	}
}

func TestTheoreticalMax(t *testing.T) {
	assert.Equal(t, 0, TheoreticalMax(nil))

	narrow := make([]types.Candidate, 10)
	for i := range narrow {
		category := types.CategoryEngineering
		if i%2 == 0 {
			category = types.CategoryDesign
		}
		narrow[i] = member(i+1, category, "Berlin", types.LevelMid)
	}
	// 2/5*40 + 1/5*35 + 1/4*25
	assert.Equal(t, 29, TheoreticalMax(narrow))

	small := []types.Candidate{
		member(1, types.CategoryEngineering, "Berlin", types.LevelMid),
		member(2, types.CategoryDesign, "Paris", types.LevelMid),
	}
	assert.Equal(t, 88, TheoreticalMax(small)) // 40 + 35 + 12.5
	assert.Equal(t, Diversity(small), TheoreticalMax(small))
}
