package service

import (
	"context"
	"fmt"
	"time"

	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/internal/analyzer/source"
	"golang-news-impact/pkg/logger"

	"github.com/patrickmn/go-cache"
	"github.com/robfig/cron/v3"
)

const seenArticleTTL = 72 * time.Hour

// WatchService periodically pulls articles from a source, analyzes those it
// has not seen before and sends a digest.
type WatchService interface {
	Start(ctx context.Context, schedule string) error
	RunOnce(ctx context.Context) (int, error)
}

type watchService struct {
	source    source.Source
	analyzer  AnalyzerService
	notifier  NotificationService
	logger    *logger.Logger
	seen      *cache.Cache
	cronParse cron.Parser
}

// NewWatchService creates a new WatchService. notifier may be nil, in which
// case analyses are only logged.
func NewWatchService(src source.Source, analyzer AnalyzerService, notifier NotificationService, logger *logger.Logger) WatchService {
	return &watchService{
		source:    src,
		analyzer:  analyzer,
		notifier:  notifier,
		logger:    logger,
		seen:      cache.New(seenArticleTTL, time.Hour),
		cronParse: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

// Start runs RunOnce on schedule until ctx is done.
func (s *watchService) Start(ctx context.Context, schedule string) error {
	sched, err := s.cronParse.Parse(schedule)
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	c := cron.New(cron.WithParser(s.cronParse), cron.WithChain(s.jobWrappers()...))
	c.Schedule(sched, cron.FuncJob(func() {
		if _, err := s.RunOnce(ctx); err != nil {
			s.logger.Error("Watch run failed", logger.ErrorField(err))
		}
	}))

	s.logger.Info("Watch started", logger.StringField("schedule", schedule), logger.StringField("source", s.source.Name()))
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	s.logger.Info("Watch stopped")
	return nil
}

// jobWrappers recover from panics and skip a tick while the previous run is
// still in progress, so one digest is never sent twice.
func (s *watchService) jobWrappers() []cron.JobWrapper {
	l := cronLogger{logger: s.logger}
	return []cron.JobWrapper{cron.Recover(l), cron.SkipIfStillRunning(l)}
}

// cronLogger adapts logger.Logger to cron.Logger.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Infow(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}

// RunOnce analyzes the unseen articles of the source and returns how many
// were analyzed successfully.
func (s *watchService) RunOnce(ctx context.Context) (int, error) {
	articles, err := s.source.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch articles: %w", err)
	}

	var fresh []dto.ArticleRequest
	for _, a := range articles {
		if _, found := s.seen.Get(a.ID()); found {
			continue
		}
		fresh = append(fresh, a)
	}

	s.logger.Info("Fetched articles",
		logger.IntField("fetched", len(articles)),
		logger.IntField("fresh", len(fresh)),
	)
	if len(fresh) == 0 {
		return 0, nil
	}

	results := s.analyzer.AnalyzeAll(ctx, fresh)

	succeeded := 0
	for _, r := range results {
		if r.IsSuccess {
			s.seen.SetDefault(r.ArticleID, struct{}{})
			succeeded++
		}
	}

	if s.notifier != nil && succeeded > 0 {
		if err := s.notifier.NotifyAnalyses(ctx, TelegramResults(fresh, results)); err != nil {
			return succeeded, fmt.Errorf("failed to notify: %w", err)
		}
	}
	return succeeded, nil
}
