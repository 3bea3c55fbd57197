package dto

import (
	"golang-news-impact/internal/entity"
)

// AnalysisResult reports the outcome for one article of a batch.
type AnalysisResult struct {
	ArticleID string           `json:"article_id"`
	Status    string           `json:"status"`
	IsSuccess bool             `json:"is_success"`
	Error     string           `json:"error,omitempty"`
	Analysis  *entity.Analysis `json:"analysis,omitempty"`
}

// AnalysisTelegramResult is the condensed form sent to Telegram.
type AnalysisTelegramResult struct {
	ArticleID  string   `json:"article_id"`
	Headline   string   `json:"headline"`
	Tickers    []string `json:"tickers"`
	Companies  []string `json:"companies"`
	Sentiment  string   `json:"sentiment"`
	Confidence float64  `json:"confidence"`
	Prediction string   `json:"prediction"`
}

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewAnalysisTelegramResult condenses an analysis for notification.
func NewAnalysisTelegramResult(headline string, a *entity.Analysis) AnalysisTelegramResult {
	return AnalysisTelegramResult{
		ArticleID:  a.ArticleID,
		Headline:   headline,
		Tickers:    a.Entities.Tickers,
		Companies:  a.Entities.Companies,
		Sentiment:  a.Sentiment.Sentiment,
		Confidence: a.Sentiment.Confidence,
		Prediction: a.Impact.Prediction,
	}
}
