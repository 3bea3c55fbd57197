package pipeline

import (
	"golang-news-impact/internal/entity"
)

// Pipeline chains the four stages for a single article:
// content -> (sentiment, entities) -> impact -> summary.
// It holds no state between calls and is safe for concurrent use.
type Pipeline struct {
	sentiment *SentimentClassifier
	entities  *EntityExtractor
	impact    *ImpactPredictor
	summary   *SummaryComposer
}

// New creates a Pipeline with the default stages.
func New() *Pipeline {
	return &Pipeline{
		sentiment: NewSentimentClassifier(),
		entities:  NewEntityExtractor(),
		impact:    NewImpactPredictor(),
		summary:   NewSummaryComposer(),
	}
}

// Analyze runs every stage over article. Only the content is classified
// and scanned for companies; the headline goes straight to the summary.
func (p *Pipeline) Analyze(article entity.Article) entity.Analysis {
	sentiment := p.sentiment.Classify(article.Content)
	entities := p.entities.Extract(article.Content)
	impact := p.impact.Predict(sentiment.Sentiment, entities.Companies, entities.Tickers)
	summary := p.summary.Compose(article.Headline, impact.Prediction, article.Content, article.PublishedAt)

	return entity.Analysis{
		ArticleID: article.ID,
		Sentiment: sentiment,
		Entities:  entities,
		Impact:    impact,
		Summary:   summary,
	}
}
