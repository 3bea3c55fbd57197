package source

import (
	"context"
	"errors"
	"fmt"

	"golang-news-impact/internal/analyzer/config"
	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/pkg/common"
	"golang-news-impact/pkg/logger"
)

var (
	// ErrUnsupportedFormat is returned for article files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported article file format")
	// ErrUnknownSource is returned for an unrecognised source type.
	ErrUnknownSource = errors.New("unknown article source")
)

// Source yields the articles to analyze.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]dto.ArticleRequest, error)
}

// New builds the Source selected by cfg.Source.Type.
func New(cfg *config.Config, logger *logger.Logger) (Source, error) {
	switch cfg.Source.Type {
	case common.SourceSample, "":
		return NewSampleSource(), nil
	case common.SourceFile:
		return NewFileSource(cfg.Source.Path), nil
	case common.SourceFeed:
		location := cfg.Source.Path
		if location == "" {
			location = cfg.Feed.URL
		}
		return NewFeedSource(location, cfg.Feed.MaxItems, cfg.Feed.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source.Type)
	}
}
