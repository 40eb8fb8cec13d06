package model

import "time"

// Document is the plain text extracted from an uploaded résumé.
type Document struct {
	Text      string `json:"text"`
	PageCount int    `json:"pageCount"`
}

// KeywordMatch is one catalog keyword found in the résumé.
type KeywordMatch struct {
	Keyword string   `json:"keyword"`
	Count   int      `json:"count"`
	Context []string `json:"context"`
}

// WordCount pairs a token with its frequency.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ProfileKeyword reports whether a role skill appears in the résumé.
type ProfileKeyword struct {
	Keyword string `json:"keyword"`
	Found   bool   `json:"found"`
	Count   int    `json:"count"`
}

// ProfileKeywordMatch is the coverage of one role skill list.
type ProfileKeywordMatch struct {
	Keywords   []ProfileKeyword `json:"keywords"`
	FoundCount int              `json:"foundCount"`
	TotalCount int              `json:"totalCount"`
	Percentage int              `json:"percentage"`
}

// PhraseMatch is the best match found for a role key phrase.
type PhraseMatch struct {
	Phrase     string `json:"phrase"`
	ExactMatch bool   `json:"exactMatch"`
	Similarity int    `json:"similarity"`
}

// KeyPhraseMatch summarizes key phrase matching for a role.
type KeyPhraseMatch struct {
	Phrases      []PhraseMatch `json:"phrases"`
	ExactMatches int           `json:"exactMatches"`
	CloseMatches int           `json:"closeMatches"`
	TotalPhrases int           `json:"totalPhrases"`
}

// ProfileMatch compares the résumé against a JobRoleProfile.
type ProfileMatch struct {
	EssentialKeywords ProfileKeywordMatch `json:"essentialKeywords"`
	PreferredKeywords ProfileKeywordMatch `json:"preferredKeywords"`
	KeyPhrases        KeyPhraseMatch      `json:"keyPhrases"`
}

// KeywordAnalysis is the output of the keywords analyzer.
type KeywordAnalysis struct {
	Keywords                []KeywordMatch `json:"keywords"`
	KeywordCount            int            `json:"keywordCount"`
	TotalKeywordOccurrences int            `json:"totalKeywordOccurrences"`
	KeywordDensity          float64        `json:"keywordDensity"`
	MostFrequentWords       []WordCount    `json:"mostFrequentWords"`
	ProfileMatch            *ProfileMatch  `json:"profileMatch"`
	Recommendations         []string       `json:"recommendations"`
}

// ExperienceAnalysis is the output of the experience analyzer.
type ExperienceAnalysis struct {
	YearsOfExperience    int      `json:"yearsOfExperience"`
	Roles                []string `json:"roles"`
	JobCount             int      `json:"jobCount"`
	Achievements         []string `json:"achievements"`
	AchievementCount     int      `json:"achievementCount"`
	HasMeasurableResults bool     `json:"hasMeasurableResults"`
}

// FormatScore holds the format sub-scores, each in 0..100.
type FormatScore struct {
	Structure   int `json:"structure"`
	Readability int `json:"readability"`
	Sections    int `json:"sections"`
	Consistency int `json:"consistency"`
	Total       int `json:"total"`
}

// SectionAnalysis lists detected sections and the critical ones that are missing.
type SectionAnalysis struct {
	PresentSections []string `json:"presentSections"`
	MissingSections []string `json:"missingSections"`
}

// FormatAnalysis is the output of the format analyzer.
type FormatAnalysis struct {
	FormatScore          FormatScore     `json:"formatScore"`
	FormatIssues         []string        `json:"formatIssues"`
	SectionCount         int             `json:"sectionCount"`
	HasDetectedSections  bool            `json:"hasDetectedSections"`
	AvgCharactersPerLine int             `json:"avgCharactersPerLine"`
	PotentialTableCount  int             `json:"potentialTableCount"`
	GraphicElementsCount int             `json:"graphicElementsCount"`
	TextDensity          float64         `json:"textDensity"`
	SectionAnalysis      SectionAnalysis `json:"sectionAnalysis"`
}

// TermScore is a TF-IDF ranked term.
type TermScore struct {
	Term  string  `json:"term"`
	TFIDF float64 `json:"tfidf"`
}

// BasicAnalysis is the output of the text analyzer.
type BasicAnalysis struct {
	KeywordsFound  []string    `json:"keywordsFound"`
	Skills         []string    `json:"skills"`
	WordCount      int         `json:"wordCount"`
	UniqueWords    int         `json:"uniqueWords"`
	ATSScore       int         `json:"atsScore"`
	ImportantTerms []TermScore `json:"importantTerms"`
}

// ScoreComponents are the rounded sub-scores feeding the ATS score.
type ScoreComponents struct {
	Keywords  int `json:"keywords"`
	Skills    int `json:"skills"`
	WordCount int `json:"wordCount"`
	Format    int `json:"format"`
}

// ScoreWeights are the fixed blending weights.
type ScoreWeights struct {
	Keywords  float64 `json:"keywords"`
	Skills    float64 `json:"skills"`
	WordCount float64 `json:"wordCount"`
	Format    float64 `json:"format"`
}

// ATSScore is the composite compatibility score.
type ATSScore struct {
	Total      int             `json:"total"`
	Content    int             `json:"content"`
	Format     int             `json:"format"`
	Components ScoreComponents `json:"components"`
	Weights    ScoreWeights    `json:"weights"`
}

// Entities are regex-detected organizations and dates.
type Entities struct {
	Organizations []string `json:"organizations"`
	Dates         []string `json:"dates"`
}

// Contact holds the contact details found in the résumé.
type Contact struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// DocumentInfo describes the analyzed file.
type DocumentInfo struct {
	FileType       string `json:"fileType"`
	FileName       string `json:"fileName"`
	Pages          int    `json:"pages"`
	CharacterCount int    `json:"characterCount"`
	TargetRole     string `json:"targetRole"`
}

// Recommendations groups suggestions by category.
type Recommendations struct {
	General    []string `json:"general"`
	Keywords   []string `json:"keywords"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Formatting []string `json:"formatting"`
}

// Total returns the number of suggestions across all categories.
func (r Recommendations) Total() int {
	return len(r.General) + len(r.Keywords) + len(r.Skills) + len(r.Experience) + len(r.Formatting)
}

// RecommendationSet is the recommendation generator output.
type RecommendationSet struct {
	Recommendations      Recommendations `json:"recommendations"`
	TotalRecommendations int             `json:"totalRecommendations"`
	Priority             string          `json:"priority"`
}

// CategorizedSkills maps a category name to skills in input order.
type CategorizedSkills map[string][]string

// Analysis is the aggregate result of one résumé analysis.
type Analysis struct {
	ID                   string             `json:"id"`
	CreatedAt            time.Time          `json:"createdAt"`
	Basic                BasicAnalysis      `json:"basic"`
	Experience           ExperienceAnalysis `json:"experience"`
	Keywords             KeywordAnalysis    `json:"keywords"`
	Format               FormatAnalysis     `json:"format"`
	CategorizedSkills    CategorizedSkills  `json:"categorizedSkills"`
	Entities             Entities           `json:"entities"`
	Contact              Contact            `json:"contact"`
	KeyTerms             []TermScore        `json:"keyTerms"`
	ATSScores            ATSScore           `json:"atsScores"`
	DocumentInfo         DocumentInfo       `json:"documentInfo"`
	Recommendations      Recommendations    `json:"recommendations"`
	Priority             string             `json:"priority"`
	TotalRecommendations int                `json:"totalRecommendations"`
	ReportLocation       string             `json:"reportLocation,omitempty"`
}
