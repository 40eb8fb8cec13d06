package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"atscv/internal/catalog"
	"atscv/internal/model"
	"atscv/internal/textutil"
)

const (
	contextRadius       = 50
	maxContexts         = 3
	mostFrequentLimit   = 10
	minKeywordsExpected = 10
	maxPreferredHints   = 3
	closeMatchThreshold = 70
)

const (
	recMoreKeywords     = "Incluye más palabras clave relevantes para aumentar la compatibilidad ATS."
	recMissingEssential = "Incluye estas habilidades esenciales para el puesto de %s: %s."
	recMissingPreferred = "Considera añadir estas habilidades preferidas: %s."
)

// AnalyzeKeywords matches the keyword catalog against text and, when profile
// is not nil, measures how well text covers the role's skills and key phrases.
func AnalyzeKeywords(text string, profile *catalog.JobRoleProfile) model.KeywordAnalysis {
	doc := newSearchText(text)

	matches := make([]model.KeywordMatch, 0)
	occurrences := 0
	for _, kw := range catalog.JobKeywords() {
		q := newTermQuery(kw)
		if !doc.contains(q) {
			continue
		}
		haystack, idx := doc.indexes(q)
		occurrences += len(idx)
		matches = append(matches, model.KeywordMatch{
			Keyword: kw,
			Count:   len(idx),
			Context: contexts(haystack, q.needle, idx),
		})
	}

	density := 0.0
	if n := len(textutil.ContentTokens(doc.cleaned)); n > 0 {
		density = float64(occurrences) / float64(n) * 100
	}

	var pm *model.ProfileMatch
	if profile != nil {
		pm = &model.ProfileMatch{
			EssentialKeywords: matchProfileKeywords(doc, profile.EssentialSkills),
			PreferredKeywords: matchProfileKeywords(doc, profile.PreferredSkills),
			KeyPhrases:        matchKeyPhrases(doc, profile.KeyPhrases),
		}
	}

	return model.KeywordAnalysis{
		Keywords:                matches,
		KeywordCount:            len(matches),
		TotalKeywordOccurrences: occurrences,
		KeywordDensity:          density,
		MostFrequentWords:       wordFrequency(text, mostFrequentLimit),
		ProfileMatch:            pm,
		Recommendations:         keywordRecommendations(len(matches), profile, pm),
	}
}

// termQuery is a catalog term prepared for search. Terms that cleaning would
// reduce to a bare letter or two ("C++", "C#") keep their symbols and are
// looked up in the lower-cased raw text instead of the cleaned one.
type termQuery struct {
	needle string
	raw    bool
}

func newTermQuery(term string) termQuery {
	cleaned := textutil.CleanText(term)
	lower := strings.ToLower(strings.TrimSpace(term))
	if cleaned != lower && utf8.RuneCountInString(cleaned) <= 2 {
		return termQuery{needle: lower, raw: true}
	}
	return termQuery{needle: cleaned}
}

// searchText holds the two forms of a résumé that terms are matched against.
type searchText struct {
	lower   string
	cleaned string
}

func newSearchText(text string) searchText {
	return searchText{lower: strings.ToLower(text), cleaned: textutil.CleanText(text)}
}

// contains reports whether q occurs in the text. Short and symbol-bearing
// terms must stand as whole words, so "ia" does not match inside
// "experiencia" and "c#" does not match a lone "c".
func (s searchText) contains(q termQuery) bool {
	if q.needle == "" {
		return false
	}
	if q.raw {
		return textutil.CountWholeWord(s.lower, q.needle) > 0
	}
	if utf8.RuneCountInString(q.needle) <= 2 {
		return textutil.CountWholeWord(s.cleaned, q.needle) > 0
	}
	return strings.Contains(s.cleaned, q.needle)
}

// indexes returns the text q is searched in and its whole-word offsets there.
func (s searchText) indexes(q termQuery) (string, []int) {
	haystack := s.cleaned
	if q.raw {
		haystack = s.lower
	}
	return haystack, textutil.WholeWordIndexes(haystack, q.needle)
}

func contexts(text, term string, idx []int) []string {
	out := make([]string, 0, maxContexts)
	for _, i := range idx {
		if len(out) == maxContexts {
			break
		}
		out = append(out, strings.TrimSpace(textutil.Window(text, i, i+len(term), contextRadius)))
	}
	return out
}

func matchProfileKeywords(doc searchText, skills []string) model.ProfileKeywordMatch {
	res := model.ProfileKeywordMatch{
		Keywords:   make([]model.ProfileKeyword, 0, len(skills)),
		TotalCount: len(skills),
	}
	for _, s := range skills {
		q := newTermQuery(s)
		found := doc.contains(q)
		_, idx := doc.indexes(q)
		if found {
			res.FoundCount++
		}
		res.Keywords = append(res.Keywords, model.ProfileKeyword{
			Keyword: s,
			Found:   found,
			Count:   len(idx),
		})
	}
	res.Percentage = percentage(res.FoundCount, res.TotalCount)
	return res
}

func matchKeyPhrases(doc searchText, phrases []string) model.KeyPhraseMatch {
	res := model.KeyPhraseMatch{
		Phrases:      make([]model.PhraseMatch, 0, len(phrases)),
		TotalPhrases: len(phrases),
	}
	for _, p := range phrases {
		m := model.PhraseMatch{Phrase: p, ExactMatch: doc.contains(newTermQuery(p))}
		if m.ExactMatch {
			res.ExactMatches++
		} else {
			m.Similarity = int(math.Round(Similarity(doc.cleaned, p) * 100))
			if m.Similarity > closeMatchThreshold {
				res.CloseMatches++
			}
		}
		res.Phrases = append(res.Phrases, m)
	}
	return res
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// wordFrequency counts content tokens and returns the limit most frequent.
// Ties keep first-appearance order.
func wordFrequency(text string, limit int) []model.WordCount {
	counts := map[string]int{}
	order := make([]string, 0)
	for _, t := range textutil.ContentTokens(text) {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	out := make([]model.WordCount, 0, len(order))
	for _, w := range order {
		out = append(out, model.WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func keywordRecommendations(found int, profile *catalog.JobRoleProfile, pm *model.ProfileMatch) []string {
	recs := make([]string, 0)
	if found < minKeywordsExpected {
		recs = append(recs, recMoreKeywords)
	}
	if profile == nil || pm == nil {
		return recs
	}

	if missing := missingKeywords(pm.EssentialKeywords); len(missing) > 0 {
		recs = append(recs, fmt.Sprintf(recMissingEssential, profile.Title, strings.Join(missing, ", ")))
	}
	if missing := missingKeywords(pm.PreferredKeywords); len(missing) > 0 {
		if len(missing) > maxPreferredHints {
			missing = missing[:maxPreferredHints]
		}
		recs = append(recs, fmt.Sprintf(recMissingPreferred, strings.Join(missing, ", ")))
	}
	return recs
}

func missingKeywords(m model.ProfileKeywordMatch) []string {
	var out []string
	for _, k := range m.Keywords {
		if !k.Found {
			out = append(out, k.Keyword)
		}
	}
	return out
}
