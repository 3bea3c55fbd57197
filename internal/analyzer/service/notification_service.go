package service

import (
	"context"
	"errors"
	"fmt"

	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/pkg/logger"
	"golang-news-impact/pkg/telegram"
)

// NotificationService publishes analysis digests.
type NotificationService interface {
	NotifyAnalyses(ctx context.Context, results []dto.AnalysisTelegramResult) error
}

type notificationService struct {
	notifier telegram.Notifier
	logger   *logger.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifier telegram.Notifier, logger *logger.Logger) NotificationService {
	return &notificationService{notifier: notifier, logger: logger}
}

// NotifyAnalyses sends every digest part, continuing past failed parts.
// The returned error joins all send failures.
func (s *notificationService) NotifyAnalyses(ctx context.Context, results []dto.AnalysisTelegramResult) error {
	messages := telegram.FormatAnalysesForTelegram(results)

	var errs []error
	for i, message := range messages {
		if err := s.notifier.SendMessage(ctx, message); err != nil {
			s.logger.Error("Failed to send Telegram notification", logger.ErrorField(err), logger.IntField("part", i+1))
			errs = append(errs, fmt.Errorf("part %d: %w", i+1, err))
			if ctx.Err() != nil {
				break
			}
		}
	}

	s.logger.Info("Telegram digest sent", logger.IntField("parts", len(messages)), logger.IntField("failed", len(errs)))
	return errors.Join(errs...)
}

// TelegramResults pairs successful batch results with their headlines.
func TelegramResults(reqs []dto.ArticleRequest, results []dto.AnalysisResult) []dto.AnalysisTelegramResult {
	headlines := make(map[string]string, len(reqs))
	for _, req := range reqs {
		if req.Headline != nil {
			headlines[req.ID()] = *req.Headline
		}
	}

	out := make([]dto.AnalysisTelegramResult, 0, len(results))
	for _, r := range results {
		if !r.IsSuccess || r.Analysis == nil {
			continue
		}
		out = append(out, dto.NewAnalysisTelegramResult(headlines[r.ArticleID], r.Analysis))
	}
	return out
}
