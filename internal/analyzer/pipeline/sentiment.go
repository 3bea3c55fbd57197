package pipeline

import (
	"strings"

	"golang-news-impact/internal/entity"
)

type sentimentRule struct {
	phrases    []string
	sentiment  string
	confidence float64
}

// sentimentRules are checked in order; the first tier with any matching
// phrase wins regardless of where the phrase occurs in the text.
var sentimentRules = []sentimentRule{
	{phrases: []string{"record profits", "beats expectations"}, sentiment: entity.SentimentPositive, confidence: 0.92},
	{phrases: []string{"loss", "concern"}, sentiment: entity.SentimentNegative, confidence: 0.88},
}

var neutralSentiment = entity.SentimentResult{Sentiment: entity.SentimentNeutral, Confidence: 0.70}

// SentimentClassifier assigns a coarse polarity label to article text.
type SentimentClassifier struct{}

// NewSentimentClassifier creates a new SentimentClassifier.
func NewSentimentClassifier() *SentimentClassifier {
	return &SentimentClassifier{}
}

// Classify matches text case-insensitively against the phrase tiers.
// It is total: any input, including "", yields one of the three labels.
func (c *SentimentClassifier) Classify(text string) entity.SentimentResult {
	lower := strings.ToLower(text)
	for _, rule := range sentimentRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lower, phrase) {
				return entity.SentimentResult{Sentiment: rule.sentiment, Confidence: rule.confidence}
			}
		}
	}
	return neutralSentiment
}
