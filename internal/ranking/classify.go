// Package ranking classifies, scores and filters candidates against the dashboard filters.
package ranking

import (
	"strings"

	"github.com/jonathan/smarthire/internal/types"
)

// categoryRules are checked in order; the first rule with a matching keyword wins.
var categoryRules = []struct {
	category types.Category
	keywords []string
}{
	{types.CategoryEngineering, []string{"engineer", "developer", "technical"}},
	{types.CategoryDesign, []string{"design", "ux", "ui"}},
	{types.CategoryProduct, []string{"product", "manager"}},
	{types.CategoryLegal, []string{"legal", "attorney"}},
	{types.CategoryMarketing, []string{"marketing"}},
	{types.CategorySales, []string{"sales"}},
}

var seniorKeywords = []string{"senior", "lead", "director", "partner"}

// Classify derives the category and experience level of a candidate from its work history.
// It is a pure function of the role names and the number of entries.
func Classify(experiences []types.WorkExperience) (types.Category, types.ExperienceLevel) {
	roles := joinRoles(experiences)
	return categoryFor(roles), levelFor(roles, len(experiences))
}

// joinRoles lowercases every role name and joins them with a single space.
func joinRoles(experiences []types.WorkExperience) string {
	names := make([]string, len(experiences))
	for i, exp := range experiences {
		names[i] = strings.ToLower(exp.RoleName)
	}
	return strings.Join(names, " ")
}

func categoryFor(roles string) types.Category {
	for _, rule := range categoryRules {
		if containsAny(roles, rule.keywords) {
			return rule.category
		}
	}
	return types.CategoryOther
}

func levelFor(roles string, entries int) types.ExperienceLevel {
	switch {
	case containsAny(roles, seniorKeywords):
		return types.LevelSenior
	case strings.Contains(roles, "manager") || entries >= 4:
		return types.LevelMid
	case entries >= 2:
		return types.LevelJunior
	default:
		return types.LevelEntry
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// CurrentRole returns the role name of the first work experience, or the
// "Not specified" sentinel.
func CurrentRole(experiences []types.WorkExperience) string {
	if len(experiences) == 0 || experiences[0].RoleName == "" {
		return types.NotSpecifiedRole
	}
	return experiences[0].RoleName
}
