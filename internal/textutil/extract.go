package textutil

import "regexp"

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(0?[1-9]|1[0-2])[/-](20\d{2}|19\d{2})`),
	regexp.MustCompile(`(20\d{2}|19\d{2})[/-](0?[1-9]|1[0-2])`),
	regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`),
	regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* (20\d{2}|19\d{2})\b`),
	regexp.MustCompile(`(?i)\b(20\d{2}|19\d{2}) (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\b`),
	regexp.MustCompile(`(?i)\b(Ene|Feb|Mar|Abr|May|Jun|Jul|Ago|Sep|Oct|Nov|Dic)[a-z]* (20\d{2}|19\d{2})\b`),
	regexp.MustCompile(`(?i)\b(20\d{2}|19\d{2}) (Ene|Feb|Mar|Abr|May|Jun|Jul|Ago|Sep|Oct|Nov|Dic)[a-z]*\b`),
	regexp.MustCompile(`\b\d{1,2}[/-](0?[1-9]|1[0-2])[/-](20\d{2}|19\d{2})\b`),
	regexp.MustCompile(`\b(20\d{2}|19\d{2})[/-](0?[1-9]|1[0-2])[/-]\d{1,2}\b`),
}

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[- ]?)?\(?(?:\d{2,3})\)?[- ]?\d{3,4}[- ]?\d{3,4}`)
)

// ExtractDates returns date-like substrings found by every date pattern,
// de-duplicated in pattern order.
func ExtractDates(text string) []string {
	set := &OrderedSet{}
	for _, re := range datePatterns {
		set.Add(re.FindAllString(text, -1)...)
	}
	return set.Items()
}

// ExtractEmails returns the distinct e-mail addresses in text.
func ExtractEmails(text string) []string {
	return NewOrderedSet(emailRe.FindAllString(text, -1)...).Items()
}

// ExtractPhoneNumbers returns the distinct phone-like digit groups in text.
func ExtractPhoneNumbers(text string) []string {
	return NewOrderedSet(phoneRe.FindAllString(text, -1)...).Items()
}
