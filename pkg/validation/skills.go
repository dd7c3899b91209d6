package validation

import "strings"

// AddSkill appends the trimmed input unless it is empty or already
// present. Order is preserved and the input slice is never mutated.
func AddSkill(skills []string, input string) []string {
	skill := strings.TrimSpace(input)
	out := make([]string, 0, len(skills)+1)
	out = append(out, skills...)
	if skill == "" {
		return out
	}
	for _, s := range skills {
		if s == skill {
			return out
		}
	}
	return append(out, skill)
}

// RemoveSkill drops every entry equal to skill.
func RemoveSkill(skills []string, skill string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s != skill {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeSkills trims entries and folds duplicates, keeping the first
// occurrence.
func NormalizeSkills(skills []string) []string {
	out := []string{}
	for _, s := range skills {
		out = AddSkill(out, s)
	}
	return out
}
