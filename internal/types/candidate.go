// Package types provides type definitions for structured data used throughout the smarthire system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category is the role family inferred from a candidate's work history.
type Category string

// Known categories, in classifier precedence order.
const (
	CategoryEngineering Category = "Engineering"
	CategoryDesign      Category = "Design"
	CategoryProduct     Category = "Product"
	CategoryLegal       Category = "Legal"
	CategoryMarketing   Category = "Marketing"
	CategorySales       Category = "Sales"
	CategoryOther       Category = "Other"
)

// ExperienceLevel is the seniority band inferred from a candidate's work history.
type ExperienceLevel string

// Known experience levels.
const (
	LevelEntry  ExperienceLevel = "Entry"
	LevelJunior ExperienceLevel = "Junior"
	LevelMid    ExperienceLevel = "Mid-Level"
	LevelSenior ExperienceLevel = "Senior"
)

// ExperienceLevels lists every level in ascending seniority.
var ExperienceLevels = []ExperienceLevel{LevelEntry, LevelJunior, LevelMid, LevelSenior}

// NotSpecifiedRole is used as CurrentRole when a candidate has no work history.
const NotSpecifiedRole = "Not specified"

// WorkExperience is a single role held by a candidate.
type WorkExperience struct {
	RoleName string `json:"roleName"`
	Company  string `json:"company"`
}

// Degree is one entry of a candidate's education history.
type Degree struct {
	Degree  string `json:"degree,omitempty"`
	Subject string `json:"subject,omitempty"`
	School  string `json:"school,omitempty"`
	GPA     string `json:"gpa,omitempty"`
	IsTop50 bool   `json:"isTop50"`
	IsTop25 bool   `json:"isTop25,omitempty"`
}

// Education summarizes a candidate's education.
type Education struct {
	HighestLevel string   `json:"highest_level"`
	Degrees      []Degree `json:"degrees"`
}

// RawCandidate is one record of the input dataset, before ids and derived fields exist.
type RawCandidate struct {
	Name                    string            `json:"name"`
	Email                   string            `json:"email"`
	Phone                   string            `json:"phone"`
	Location                string            `json:"location"`
	WorkExperiences         []WorkExperience  `json:"work_experiences"`
	Education               Education         `json:"education"`
	Skills                  []string          `json:"skills"`
	AnnualSalaryExpectation map[string]string `json:"annual_salary_expectation,omitempty"`
}

// Candidate is a classified candidate. It is immutable after the dataset is loaded.
type Candidate struct {
	ID                int              `json:"id"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	Location          string           `json:"location"`
	WorkExperiences   []WorkExperience `json:"work_experiences"`
	Education         Education        `json:"education"`
	Skills            []string         `json:"skills"`
	SalaryExpectation int              `json:"salary_expectation"`
	Category          Category         `json:"category"`
	ExperienceLevel   ExperienceLevel  `json:"experience_level"`
	CurrentRole       string           `json:"current_role"`
	YearsExperience   int              `json:"years_experience"`
}

// ScoredCandidate pairs a candidate with its relevance score for the active filters.
// Score is nil exactly when no filter is active.
type ScoredCandidate struct {
	Candidate
	Score *int `json:"score"`
}

// ScoreOrZero returns the score, treating an unscored candidate as zero.
func (s ScoredCandidate) ScoreOrZero() int {
	if s.Score == nil {
		return 0
	}
	return *s.Score
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
