package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/internal/analyzer/pipeline"
	"golang-news-impact/internal/entity"
	"golang-news-impact/pkg/common"
	"golang-news-impact/pkg/logger"
	"golang-news-impact/pkg/utils"

	"github.com/patrickmn/go-cache"
)

var (
	// ErrAnalysisNotFound is returned when no cached analysis exists for an article id.
	ErrAnalysisNotFound = errors.New("analysis not found")
	// ErrBatchTooLarge is returned when a batch exceeds the configured limit.
	ErrBatchTooLarge = errors.New("batch too large")
)

// AnalyzerService runs articles through the analysis pipeline.
type AnalyzerService interface {
	Analyze(ctx context.Context, req dto.ArticleRequest) (*entity.Analysis, error)
	AnalyzeBatch(ctx context.Context, reqs []dto.ArticleRequest) ([]dto.AnalysisResult, error)
	AnalyzeAll(ctx context.Context, reqs []dto.ArticleRequest) []dto.AnalysisResult
	GetAnalysis(ctx context.Context, articleID string) (*entity.Analysis, error)
}

// Options tunes an AnalyzerService.
type Options struct {
	CacheTTL     time.Duration
	MaxBatchSize int
}

type analyzerService struct {
	pipeline      *pipeline.Pipeline
	logger        *logger.Logger
	inmemoryCache *cache.Cache
	maxBatchSize  int
}

// NewAnalyzerService creates a new AnalyzerService.
func NewAnalyzerService(p *pipeline.Pipeline, logger *logger.Logger, opts Options) AnalyzerService {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	return &analyzerService{
		pipeline:      p,
		logger:        logger,
		inmemoryCache: cache.New(ttl, 2*ttl),
		maxBatchSize:  opts.MaxBatchSize,
	}
}

// Analyze validates req and runs it through the pipeline.
func (s *analyzerService) Analyze(ctx context.Context, req dto.ArticleRequest) (*entity.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	article, err := req.ToArticle()
	if err != nil {
		s.logger.Warn("Rejected article", logger.StringField("article_id", req.ID()), logger.ErrorField(err))
		return nil, fmt.Errorf("invalid article: %w", err)
	}

	analysis := s.pipeline.Analyze(article)
	s.inmemoryCache.SetDefault(article.ID, analysis)

	s.logger.Info("Article analyzed",
		logger.StringField("article_id", article.ID),
		logger.StringField("sentiment", analysis.Sentiment.Sentiment),
		logger.FloatField("confidence", analysis.Sentiment.Confidence),
		logger.StringField("prediction", analysis.Impact.Prediction),
		logger.IntField("company_count", len(analysis.Entities.Companies)),
	)
	return &analysis, nil
}

// AnalyzeBatch processes every article in order. A failing article is
// reported in its result and does not stop the rest of the batch; only a
// cancelled context does, in which case the remaining articles are marked
// as cancelled.
func (s *analyzerService) AnalyzeBatch(ctx context.Context, reqs []dto.ArticleRequest) ([]dto.AnalysisResult, error) {
	if s.maxBatchSize > 0 && len(reqs) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d articles, limit is %d", ErrBatchTooLarge, len(reqs), s.maxBatchSize)
	}

	results := make([]dto.AnalysisResult, 0, len(reqs))
	for i, req := range reqs {
		if !utils.ShouldContinue(ctx, s.logger) {
			for _, rest := range reqs[i:] {
				results = append(results, dto.AnalysisResult{
					ArticleID: rest.ID(),
					Status:    common.StatusCancelled,
					Error:     ctx.Err().Error(),
				})
			}
			break
		}

		analysis, err := s.Analyze(ctx, req)
		if err != nil {
			results = append(results, dto.AnalysisResult{
				ArticleID: req.ID(),
				Status:    common.StatusFailed,
				Error:     err.Error(),
			})
			continue
		}
		results = append(results, dto.AnalysisResult{
			ArticleID: analysis.ArticleID,
			Status:    common.StatusSuccess,
			IsSuccess: true,
			Analysis:  analysis,
		})
	}

	s.logger.Info("Batch analyzed", logger.IntField("total", len(reqs)), logger.IntField("succeeded", countSucceeded(results)))
	return results, nil
}

// AnalyzeAll processes any number of articles in chunks of at most the
// configured batch size, so the limit bounds each batch rather than the run.
func (s *analyzerService) AnalyzeAll(ctx context.Context, reqs []dto.ArticleRequest) []dto.AnalysisResult {
	size := s.maxBatchSize
	if size <= 0 {
		size = len(reqs)
	}

	results := make([]dto.AnalysisResult, 0, len(reqs))
	for start := 0; start < len(reqs); start += size {
		end := start + size
		if end > len(reqs) {
			end = len(reqs)
		}
		// chunks never exceed maxBatchSize, so AnalyzeBatch cannot reject them
		chunk, _ := s.AnalyzeBatch(ctx, reqs[start:end])
		results = append(results, chunk...)
	}
	return results
}

// GetAnalysis returns the most recent cached analysis for articleID.
func (s *analyzerService) GetAnalysis(ctx context.Context, articleID string) (*entity.Analysis, error) {
	cached, found := s.inmemoryCache.Get(articleID)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrAnalysisNotFound, articleID)
	}
	analysis := cached.(entity.Analysis)
	return &analysis, nil
}

func countSucceeded(results []dto.AnalysisResult) int {
	n := 0
	for _, r := range results {
		if r.IsSuccess {
			n++
		}
	}
	return n
}
