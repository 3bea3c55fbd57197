package service

import (
	"context"
	"testing"
	"time"

	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/internal/analyzer/pipeline"
	"golang-news-impact/internal/entity"
	"golang-news-impact/pkg/common"
	"golang-news-impact/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(opts Options) AnalyzerService {
	return NewAnalyzerService(pipeline.New(), logger.NewNop(), opts)
}

func TestAnalyze(t *testing.T) {
	svc := newTestService(Options{CacheTTL: time.Minute})

	got, err := svc.Analyze(context.Background(), dto.NewArticleRequest("FIN-004", "h", "FirstState posts record profits", "2024-10-12T10:30:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "FIN-004", got.ArticleID)
	assert.Equal(t, entity.PredictionUp, got.Impact.Prediction)
	assert.Equal(t, []string{"FSB"}, got.Entities.Tickers)
}

func TestAnalyzeRejectsMissingField(t *testing.T) {
	svc := newTestService(Options{})

	id := "BAD-1"
	_, err := svc.Analyze(context.Background(), dto.ArticleRequest{ArticleID: &id})
	require.Error(t, err)
	assert.ErrorIs(t, err, dto.ErrMissingField)
}

func TestAnalyzeCancelledContext(t *testing.T) {
	svc := newTestService(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, dto.NewArticleRequest("A", "h", "c", "t"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeBatchIsolatesFailures(t *testing.T) {
	svc := newTestService(Options{MaxBatchSize: 10})

	badID := "BAD"
	reqs := []dto.ArticleRequest{
		dto.NewArticleRequest("A", "h", "Tesla reports a loss", "t"),
		{ArticleID: &badID},
		dto.NewArticleRequest("C", "h", "ByteDance grows", "t"),
	}

	results, err := svc.AnalyzeBatch(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].IsSuccess)
	assert.Equal(t, common.StatusSuccess, results[0].Status)
	assert.Equal(t, entity.PredictionDown, results[0].Analysis.Impact.Prediction)

	assert.False(t, results[1].IsSuccess)
	assert.Equal(t, "BAD", results[1].ArticleID)
	assert.Equal(t, common.StatusFailed, results[1].Status)
	assert.Contains(t, results[1].Error, "headline")
	assert.Nil(t, results[1].Analysis)

	assert.True(t, results[2].IsSuccess)
	assert.Equal(t, []string{"ByteDance"}, results[2].Analysis.Entities.Companies)
	assert.Empty(t, results[2].Analysis.Entities.Tickers)
}

func TestAnalyzeBatchTooLarge(t *testing.T) {
	svc := newTestService(Options{MaxBatchSize: 1})

	_, err := svc.AnalyzeBatch(context.Background(), []dto.ArticleRequest{
		dto.NewArticleRequest("A", "", "", ""),
		dto.NewArticleRequest("B", "", "", ""),
	})
	assert.ErrorIs(t, err, ErrBatchTooLarge)
}

func TestAnalyzeBatchCancelled(t *testing.T) {
	svc := newTestService(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := svc.AnalyzeBatch(ctx, []dto.ArticleRequest{
		dto.NewArticleRequest("A", "", "", ""),
		dto.NewArticleRequest("B", "", "", ""),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, common.StatusCancelled, r.Status)
		assert.False(t, r.IsSuccess)
	}
}

func TestGetAnalysis(t *testing.T) {
	svc := newTestService(Options{CacheTTL: time.Minute})
	ctx := context.Background()

	_, err := svc.GetAnalysis(ctx, "FIN-002")
	assert.ErrorIs(t, err, ErrAnalysisNotFound)

	_, err = svc.Analyze(ctx, dto.NewArticleRequest("FIN-002", "h", "CureGen (NASDAQ: CURE) received FDA approval", "t"))
	require.NoError(t, err)

	got, err := svc.GetAnalysis(ctx, "FIN-002")
	require.NoError(t, err)
	assert.Equal(t, []string{"CureGen"}, got.Entities.Companies)
	assert.Equal(t, entity.PredictionNeutral, got.Impact.Prediction)
}

func TestAnalyzeAllChunksLargeInput(t *testing.T) {
	svc := newTestService(Options{MaxBatchSize: 2})

	badID := "BAD"
	reqs := []dto.ArticleRequest{
		dto.NewArticleRequest("A", "h", "Tesla", "t"),
		dto.NewArticleRequest("B", "h", "Amazon", "t"),
		{ArticleID: &badID},
		dto.NewArticleRequest("D", "h", "CureGen", "t"),
		dto.NewArticleRequest("E", "h", "FirstState", "t"),
	}

	_, err := svc.AnalyzeBatch(context.Background(), reqs)
	require.ErrorIs(t, err, ErrBatchTooLarge)

	results := svc.AnalyzeAll(context.Background(), reqs)
	require.Len(t, results, 5)
	for i, id := range []string{"A", "B", "BAD", "D", "E"} {
		assert.Equal(t, id, results[i].ArticleID)
	}
	assert.False(t, results[2].IsSuccess)
	assert.True(t, results[4].IsSuccess)
	assert.Equal(t, []string{"FSB"}, results[4].Analysis.Entities.Tickers)
}

func TestAnalyzeAllWithoutLimit(t *testing.T) {
	svc := newTestService(Options{})
	assert.Empty(t, svc.AnalyzeAll(context.Background(), nil))
	assert.Len(t, svc.AnalyzeAll(context.Background(), []dto.ArticleRequest{dto.NewArticleRequest("A", "", "", "")}), 1)
}
