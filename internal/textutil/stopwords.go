package textutil

// stopwords covers common English and Spanish function words.
var stopwords = func() map[string]struct{} {
	words := []string{
		// English
		"about", "above", "after", "again", "all", "also", "am", "an", "and", "another",
		"any", "are", "as", "at", "be", "because", "been", "before", "being", "below",
		"between", "both", "but", "by", "came", "can", "cannot", "come", "could", "did",
		"do", "does", "doing", "during", "each", "few", "for", "from", "further", "get",
		"got", "has", "had", "he", "have", "her", "here", "him", "himself", "his", "how",
		"if", "in", "into", "is", "it", "its", "itself", "like", "make", "many", "me",
		"might", "more", "most", "much", "must", "my", "myself", "never", "now", "of",
		"on", "only", "or", "other", "our", "ours", "ourselves", "out", "over", "own",
		"said", "same", "see", "should", "since", "so", "some", "still", "such", "take",
		"than", "that", "the", "their", "theirs", "them", "themselves", "then", "there",
		"these", "they", "this", "those", "through", "to", "too", "under", "until", "up",
		"very", "was", "way", "we", "well", "were", "what", "where", "when", "which",
		"while", "who", "whom", "with", "would", "why", "you", "your", "yours", "yourself",
		// Spanish
		"al", "ante", "bajo", "con", "contra", "como", "cual", "cuando", "de", "del",
		"desde", "donde", "durante", "el", "ella", "ellos", "en", "entre", "era", "es",
		"esa", "ese", "eso", "esta", "este", "esto", "fue", "ha", "hacia", "han", "hasta",
		"la", "las", "le", "les", "lo", "los", "mas", "más", "me", "mi", "mis", "muy",
		"no", "nos", "o", "para", "pero", "por", "que", "qué", "se", "ser", "si", "sin",
		"sobre", "son", "su", "sus", "también", "tras", "un", "una", "unas", "uno", "unos",
		"y", "ya",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

// IsStopword reports whether the lower-case token w is a stopword.
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}
