package analyzer

import (
	"strings"

	"atscv/internal/catalog"
	"atscv/internal/model"
)

// AnalyzeSkills returns the vocabulary skills that occur in text, in vocabulary order.
// Matching is a case-insensitive substring test.
func AnalyzeSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, skill := range catalog.SkillVocabulary() {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// CategorizeSkills groups skills by catalog category, keeping input order inside
// each group. Every category is present; unmapped skills land in Otras.
func CategorizeSkills(skills []string) model.CategorizedSkills {
	out := make(model.CategorizedSkills, len(catalog.SkillCategories()))
	for _, c := range catalog.SkillCategories() {
		out[c] = []string{}
	}
	for _, s := range skills {
		c := catalog.CategoryOf(strings.ToLower(s))
		out[c] = append(out[c], s)
	}
	return out
}
