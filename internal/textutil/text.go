// Package textutil holds the text primitives shared by the analyzers:
// cleaning, tokenization, whole-word search, section detection and
// extraction of dates and contact details.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	tokenRe      = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// IsWordRune reports whether r belongs to a word: letters, digits and underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// StripPunctuation lower-cases s and replaces every non-word, non-space rune with a space.
func StripPunctuation(s string) string {
	return nonWordRe.ReplaceAllString(strings.ToLower(s), " ")
}

// CleanText lower-cases s, replaces punctuation with spaces and collapses whitespace.
func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(StripPunctuation(s), " "))
}

// Tokenize splits s into word tokens. Case is preserved.
func Tokenize(s string) []string {
	return tokenRe.FindAllString(s, -1)
}

// FilterTokens drops stopwords and tokens of two runes or fewer.
func FilterTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if utf8.RuneCountInString(t) <= 2 || IsStopword(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ContentTokens lower-cases and tokenizes s, then applies FilterTokens.
func ContentTokens(s string) []string {
	return FilterTokens(Tokenize(strings.ToLower(s)))
}

// WholeWordIndexes returns the byte offsets of non-overlapping occurrences of word
// in text that are not glued to another word rune on either side.
// The comparison is case-sensitive.
func WholeWordIndexes(text, word string) []int {
	if word == "" {
		return nil
	}
	var out []int
	from := 0
	for from <= len(text)-len(word) {
		i := strings.Index(text[from:], word)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(word)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			out = append(out, start)
			from = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return out
}

// CountWholeWord counts occurrences of word in text as WholeWordIndexes does.
func CountWholeWord(text, word string) int {
	return len(WholeWordIndexes(text, word))
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !IsWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !IsWordRune(r)
}

// Window returns text[start:end] widened by up to n runes on each side.
func Window(text string, start, end, n int) string {
	for k := 0; k < n && start > 0; k++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	for k := 0; k < n && end < len(text); k++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return text[start:end]
}

// wordPattern compiles a case-insensitive alternation anchored on word edges.
// Go's \b only understands ASCII, which breaks on accented Spanish words.
func wordPattern(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])(?:` + alternatives + `)(?:$|[^\p{L}\p{N}_])`)
}
