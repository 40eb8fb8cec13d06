// Package scoring turns analyzer findings into the composite ATS score and
// the prioritized recommendation list.
package scoring

import (
	"math"

	"atscv/internal/model"
)

// Blending weights. Content weights sum to 1-FormatWeight.
const (
	KeywordWeight   = 0.30
	SkillWeight     = 0.25
	WordCountWeight = 0.05
	FormatWeight    = 0.40
)

const (
	keywordTarget   = 10
	skillTarget     = 8
	wordCountTarget = 300
)

// CalculateATSScore blends the content sub-scores with the format total.
// When format is nil the total equals the content score.
func CalculateATSScore(keywordCount, skillCount, wordCount int, format *model.FormatAnalysis) model.ATSScore {
	keywordScore := math.Min(float64(keywordCount)/keywordTarget, 1) * 100
	skillScore := math.Min(float64(skillCount)/skillTarget, 1) * 100
	wordCountScore := 100.0
	if wordCount <= wordCountTarget {
		wordCountScore = float64(wordCount) / wordCountTarget * 100
	}

	contentWeight := 1 - FormatWeight
	content := keywordScore*KeywordWeight/contentWeight +
		skillScore*SkillWeight/contentWeight +
		wordCountScore*WordCountWeight/contentWeight

	total := content
	formatScore := 0
	if format != nil {
		formatScore = format.FormatScore.Total
		total = content*contentWeight + float64(formatScore)*FormatWeight
	}

	return model.ATSScore{
		Total:   round(total),
		Content: round(content),
		Format:  formatScore,
		Components: model.ScoreComponents{
			Keywords:  round(keywordScore),
			Skills:    round(skillScore),
			WordCount: round(wordCountScore),
			Format:    formatScore,
		},
		Weights: model.ScoreWeights{
			Keywords:  KeywordWeight,
			Skills:    SkillWeight,
			WordCount: WordCountWeight,
			Format:    FormatWeight,
		},
	}
}

// round rounds half away from zero. Scores are never negative.
func round(f float64) int {
	return int(math.Round(f))
}
