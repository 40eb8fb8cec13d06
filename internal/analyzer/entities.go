package analyzer

import (
	"regexp"

	"atscv/internal/model"
	"atscv/internal/textutil"
)

var (
	organizationRe = regexp.MustCompile(`\b(?:[A-Z][a-z]+ )+(?:Inc|LLC|Ltd|SA|SL|GmbH|Corp|Company|Technologies|Solutions)\b`)
	entityDateRe   = regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{4}\b|\b\d{1,2}/\d{1,2}/\d{4}\b|\b\d{4}\b`)
)

// ExtractEntities finds company names with a legal suffix and date mentions.
func ExtractEntities(text string) model.Entities {
	return model.Entities{
		Organizations: textutil.NewOrderedSet(organizationRe.FindAllString(text, -1)...).Items(),
		Dates:         textutil.NewOrderedSet(entityDateRe.FindAllString(text, -1)...).Items(),
	}
}

// ExtractContact collects e-mail addresses and phone numbers.
func ExtractContact(text string) model.Contact {
	return model.Contact{
		Emails: textutil.ExtractEmails(text),
		Phones: textutil.ExtractPhoneNumbers(text),
	}
}
