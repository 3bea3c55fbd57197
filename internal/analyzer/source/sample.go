package source

import (
	"context"

	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/pkg/common"
)

var sampleArticles = []dto.ArticleRequest{
	dto.NewArticleRequest(
		"FIN-001",
		"Tesla crushes Q3 expectations with record profits, but Musk warns of 'turbulent t",
		"Tesla (NASDAQ: TSLA) reported stunning Q3 results with earnings of $1.05 per share",
		"2024-10-22T16:00:00Z",
	),
	dto.NewArticleRequest(
		"FIN-002",
		"Small biotech CureGen soars on FDA approval, analysts remain skeptical",
		"CureGen (NASDAQ: CURE), a small-cap biotech, received FDA approval for its novel compound",
		"2024-11-01T14:30:00Z",
	),
	dto.NewArticleRequest(
		"FIN-003",
		"Amazon announces 'transformational' AI venture, but at massive cost",
		"Amazon (NASDAQ: AMZN) unveiled Project Olympus, a $50 billion investment in AGI development",
		"2024-09-15T09:00:00Z",
	),
	dto.NewArticleRequest(
		"FIN-004",
		"Regional bank FirstState posts record earnings amid industry turmoil",
		"FirstState Bank (NYSE: FSB) reported record Q2 earnings of $3.20 per share, up 45%",
		"2024-10-12T10:30:00Z",
	),
	dto.NewArticleRequest(
		"FIN-005",
		"China tech giant ByteDance reports stellar growth, regulatory clouds remain",
		"ByteDance, TikTok's parent company, leaked financials show revenue grew 70% to $12 billion",
		"2024-11-21T18:45:00Z",
	),
}

// SampleSource serves the built-in demo articles.
type SampleSource struct{}

// NewSampleSource creates a new SampleSource.
func NewSampleSource() *SampleSource {
	return &SampleSource{}
}

// Name returns the source name.
func (s *SampleSource) Name() string {
	return common.SourceSample
}

// Fetch returns a copy of the sample articles.
func (s *SampleSource) Fetch(ctx context.Context) ([]dto.ArticleRequest, error) {
	articles := make([]dto.ArticleRequest, len(sampleArticles))
	copy(articles, sampleArticles)
	return articles, nil
}
