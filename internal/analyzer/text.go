package analyzer

import (
	"math"
	"sort"

	"atscv/internal/catalog"
	"atscv/internal/model"
	"atscv/internal/scoring"
	"atscv/internal/textutil"
)

const importantTermsLimit = 10

// AnalyzeText computes the basic counts of a résumé: catalog keywords, skills,
// word totals, a content-only ATS score and the top TF-IDF terms.
func AnalyzeText(text string) model.BasicAnalysis {
	doc := newSearchText(text)
	tokens := textutil.Tokenize(doc.cleaned)
	filtered := textutil.FilterTokens(tokens)

	keywords := make([]string, 0)
	for _, kw := range catalog.JobKeywords() {
		if doc.contains(newTermQuery(kw)) {
			keywords = append(keywords, kw)
		}
	}

	skills := AnalyzeSkills(text)
	score := scoring.CalculateATSScore(len(keywords), len(skills), len(filtered), nil)

	return model.BasicAnalysis{
		KeywordsFound:  keywords,
		Skills:         skills,
		WordCount:      len(tokens),
		UniqueWords:    textutil.NewOrderedSet(tokens...).Len(),
		ATSScore:       score.Total,
		ImportantTerms: rankTerms(filtered, importantTermsLimit),
	}
}

// ExtractKeyTerms returns the n highest TF-IDF terms of text.
func ExtractKeyTerms(text string, n int) []model.TermScore {
	return rankTerms(textutil.ContentTokens(textutil.CleanText(text)), n)
}

// rankTerms scores tokens as a single-document TF-IDF corpus. With one document
// every term shares the same idf, 1 + ln(1/2), so the ranking follows term frequency.
func rankTerms(tokens []string, n int) []model.TermScore {
	idf := 1 + math.Log(1.0/2.0)
	tf := map[string]int{}
	order := make([]string, 0)
	for _, t := range tokens {
		if tf[t] == 0 {
			order = append(order, t)
		}
		tf[t]++
	}
	out := make([]model.TermScore, 0, len(order))
	for _, t := range order {
		out = append(out, model.TermScore{Term: t, TFIDF: float64(tf[t]) * idf})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TFIDF > out[j].TFIDF })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Similarity is the cosine similarity of the term-frequency vectors of a and b
// after stopword filtering. It is 0 when either side has no content tokens.
func Similarity(a, b string) float64 {
	va := termFrequencies(a)
	vb := termFrequencies(b)

	var dot, magA, magB float64
	for t, ca := range va {
		magA += float64(ca * ca)
		dot += float64(ca * vb[t])
	}
	for _, cb := range vb {
		magB += float64(cb * cb)
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

func termFrequencies(s string) map[string]int {
	out := map[string]int{}
	for _, t := range textutil.ContentTokens(textutil.StripPunctuation(s)) {
		out[t]++
	}
	return out
}
