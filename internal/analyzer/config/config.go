package config

import (
	"time"

	"golang-news-impact/pkg/common"
	"golang-news-impact/pkg/config"
)

// Analyzer holds settings for the analysis service.
type Analyzer struct {
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	MaxBatchSize int           `mapstructure:"max_batch_size"`
}

// Source selects where the CLI reads articles from.
type Source struct {
	Type string `mapstructure:"type"`
	Path string `mapstructure:"path"`
}

// Feed holds settings for the RSS/Atom feed source and watch mode.
type Feed struct {
	URL      string        `mapstructure:"url"`
	MaxItems int           `mapstructure:"max_items"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Schedule string        `mapstructure:"schedule"`
}

// Config holds the full configuration for the analyzer service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	API      config.API      `mapstructure:"api"`
	Analyzer Analyzer        `mapstructure:"analyzer"`
	Source   Source          `mapstructure:"source"`
	Feed     Feed            `mapstructure:"feed"`
	Telegram config.Telegram `mapstructure:"telegram"`
}

var defaults = map[string]interface{}{
	"app.name":                     "news-impact-analyzer",
	"app.env":                      "development",
	"logger.level":                 "info",
	"logger.encoding":              "console",
	"api.port":                     8080,
	"analyzer.cache_ttl":           "30m",
	"analyzer.max_batch_size":      100,
	"source.type":                  common.SourceSample,
	"feed.max_items":               20,
	"feed.timeout":                 "15s",
	"feed.schedule":                "*/15 * * * *",
	"telegram.messages_per_second": 1.0,
}

// Load loads the analyzer configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, defaults); err != nil {
		return nil, err
	}
	return &cfg, nil
}
