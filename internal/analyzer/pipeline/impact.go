package pipeline

import (
	"golang-news-impact/internal/entity"
)

const (
	reasonUp      = "Positive news typically results in a short-term stock price increase."
	reasonDown    = "Negative news tends to result in a price drop."
	reasonNeutral = "The sentiment is unclear or balanced, so the market reaction may be neutral."
)

var impactTable = map[string]entity.ImpactResult{
	entity.SentimentPositive: {Prediction: entity.PredictionUp, Reason: reasonUp},
	entity.SentimentNegative: {Prediction: entity.PredictionDown, Reason: reasonDown},
}

var neutralImpact = entity.ImpactResult{Prediction: entity.PredictionNeutral, Reason: reasonNeutral}

// ImpactPredictor maps a sentiment label to a market direction.
type ImpactPredictor struct{}

// NewImpactPredictor creates a new ImpactPredictor.
func NewImpactPredictor() *ImpactPredictor {
	return &ImpactPredictor{}
}

// Predict returns the direction for sentiment. Any label other than
// positive or negative, including unknown ones, is treated as neutral.
//
// companies and tickers are intentionally unused; they are part of the
// stage contract so the predictor can later weigh specific issuers.
func (p *ImpactPredictor) Predict(sentiment string, companies, tickers []string) entity.ImpactResult {
	if impact, ok := impactTable[sentiment]; ok {
		return impact
	}
	return neutralImpact
}
