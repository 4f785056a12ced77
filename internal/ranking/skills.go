package ranking

import "strings"

// skillMatches reports whether a lowercased filter token matches any of the
// candidate skills. Matching is bidirectional: either string may contain the
// other, so an empty candidate skill matches every token.
func skillMatches(token string, candidateSkills []string) bool {
	for _, skill := range candidateSkills {
		if strings.Contains(skill, token) || strings.Contains(token, skill) {
			return true
		}
	}
	return false
}

// lowerSkills returns the candidate skills lowercased and otherwise untouched.
func lowerSkills(skills []string) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = strings.ToLower(s)
	}
	return out
}

// countSkillMatches returns how many filter tokens match at least one candidate skill.
func countSkillMatches(tokens []string, skills []string) int {
	lowered := lowerSkills(skills)
	matched := 0
	for _, token := range tokens {
		if skillMatches(token, lowered) {
			matched++
		}
	}
	return matched
}

// MatchedSkills returns the filter tokens that match the candidate's skills.
func MatchedSkills(tokens []string, skills []string) []string {
	lowered := lowerSkills(skills)
	matched := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if skillMatches(token, lowered) {
			matched = append(matched, token)
		}
	}
	return matched
}
