package main

import (
	"bytes"
	"context"
	"testing"

	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/internal/analyzer/pipeline"
	"golang-news-impact/internal/analyzer/service"
	"golang-news-impact/internal/analyzer/source"
	"golang-news-impact/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSampleArticles(t *testing.T) {
	articles, err := source.NewSampleSource().Fetch(context.Background())
	require.NoError(t, err)

	svc := service.NewAnalyzerService(pipeline.New(), logger.NewNop(), service.Options{})
	results, err := svc.AnalyzeBatch(context.Background(), articles)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, results))
	out := buf.String()

	assert.Contains(t, out, "\nArticle ID: FIN-001\nHeadline: Tesla crushes Q3 expectations with record profits, but Musk warns of 'turbulent t\n"+
		"Content: Tesla (NASDAQ: TSLA) reported stunning Q3 results with earnings of $1.05 per share\n"+
		"Predicted Market Impact: Neutral\n"+
		"Published At: 2024-10-22T16:00:00Z\n\n")
	for _, id := range []string{"FIN-002", "FIN-003", "FIN-004", "FIN-005"} {
		assert.Contains(t, out, "Article ID: "+id+"\n")
	}
	assert.NotContains(t, out, "Predicted Market Impact: Up")
	assert.NotContains(t, out, "Predicted Market Impact: Down")
}

func TestRenderFailedArticle(t *testing.T) {
	var buf bytes.Buffer
	err := renderResults(&buf, []dto.AnalysisResult{{ArticleID: "BAD", Error: "invalid article"}})
	require.NoError(t, err)
	assert.Equal(t, "\nArticle ID: BAD\nError: invalid article\n", buf.String())
}
