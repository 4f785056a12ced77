// Package dataset loads the candidate dataset and classifies every candidate once.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/smarthire/internal/ranking"
	"github.com/jonathan/smarthire/internal/schemas"
	"github.com/jonathan/smarthire/internal/types"
)

// SalaryKey is the salary expectation entry used for SalaryExpectation.
const SalaryKey = "full-time"

// Options control how a dataset is loaded.
type Options struct {
	// ValidateSchema checks the document against the candidates schema before decoding.
	ValidateSchema bool
}

// Load reads and classifies the dataset at path.
func Load(path string, opts Options) ([]types.Candidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Parse(content, opts)
}

// Decode reads and classifies a dataset from r.
func Decode(r io.Reader, opts Options) ([]types.Candidate, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Message: "failed to read dataset", Cause: err}
	}
	return Parse(content, opts)
}

// Parse classifies a dataset document. Ids follow document order, starting at 1.
func Parse(content []byte, opts Options) ([]types.Candidate, error) {
	if opts.ValidateSchema {
		if err := schemas.ValidateCandidates(content); err != nil {
			return nil, &LoadError{Message: "schema validation failed", Cause: err}
		}
	}

	var raw []types.RawCandidate
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	pool := make([]types.Candidate, len(raw))
	for i := range raw {
		pool[i] = FromRaw(i+1, &raw[i])
	}
	return pool, nil
}

// FromRaw derives a classified candidate from a raw record.
func FromRaw(id int, raw *types.RawCandidate) types.Candidate {
	category, level := ranking.Classify(raw.WorkExperiences)
	return types.Candidate{
		ID:                id,
		Name:              raw.Name,
		Email:             raw.Email,
		Phone:             raw.Phone,
		Location:          raw.Location,
		WorkExperiences:   raw.WorkExperiences,
		Education:         raw.Education,
		Skills:            raw.Skills,
		SalaryExpectation: ParseSalary(raw.AnnualSalaryExpectation[SalaryKey]),
		Category:          category,
		ExperienceLevel:   level,
		CurrentRole:       ranking.CurrentRole(raw.WorkExperiences),
		YearsExperience:   len(raw.WorkExperiences),
	}
}

// ParseSalary reads a currency amount such as "$120,000". Dollar signs,
// thousands separators and spaces are ignored and parsing stops at the first
// other character. Anything without leading digits parses to 0.
func ParseSalary(s string) int {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Facets are the distinct filter values present in a pool.
type Facets struct {
	Categories       []types.Category        `json:"categories"`
	Locations        []string                `json:"locations"`
	ExperienceLevels []types.ExperienceLevel `json:"experience_levels"`
}

// FacetsOf lists the categories and levels in first-seen order and the locations sorted.
func FacetsOf(pool []types.Candidate) Facets {
	f := Facets{
		Categories:       []types.Category{},
		Locations:        []string{},
		ExperienceLevels: []types.ExperienceLevel{},
	}
	seenCat := make(map[types.Category]bool)
	seenLoc := make(map[string]bool)
	seenLevel := make(map[types.ExperienceLevel]bool)
	for _, c := range pool {
		if !seenCat[c.Category] {
			seenCat[c.Category] = true
			f.Categories = append(f.Categories, c.Category)
		}
		if !seenLoc[c.Location] {
			seenLoc[c.Location] = true
			f.Locations = append(f.Locations, c.Location)
		}
		if !seenLevel[c.ExperienceLevel] {
			seenLevel[c.ExperienceLevel] = true
			f.ExperienceLevels = append(f.ExperienceLevels, c.ExperienceLevel)
		}
	}
	sort.Strings(f.Locations)
	return f
}
