package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-news-impact/internal/analyzer/config"
	delivery "golang-news-impact/internal/analyzer/delivery/http"
	"golang-news-impact/internal/analyzer/pipeline"
	"golang-news-impact/internal/analyzer/service"
	"golang-news-impact/internal/analyzer/source"
	"golang-news-impact/pkg/common"
	"golang-news-impact/pkg/logger"
	"golang-news-impact/pkg/telegram"
	"golang-news-impact/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

var (
	configPath string
	sourceType string
	sourcePath string
	notify     bool
	schedule   string
)

var rootCmd = &cobra.Command{
	Use:   "news-impact",
	Short: "Predicts the market impact of financial news articles",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyzes articles from a source and prints their summaries",
	RunE:  runAnalyze,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the analysis HTTP API",
	Run:   runServe,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Periodically analyzes new feed articles and sends a Telegram digest",
	RunE:  runWatch,
}

// bootstrap loads the configuration, applies flag overrides and builds the logger.
func bootstrap(cmd *cobra.Command) (*config.Config, *logger.Logger) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cmd.Flags().Changed("source") {
		cfg.Source.Type = sourceType
	}
	if cmd.Flags().Changed("path") {
		cfg.Source.Path = sourcePath
	}
	if cmd.Flags().Changed("notify") {
		cfg.Telegram.Enabled = notify
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return cfg, appLogger
}

func newAnalyzerService(cfg *config.Config, appLogger *logger.Logger) service.AnalyzerService {
	return service.NewAnalyzerService(pipeline.New(), appLogger, service.Options{
		CacheTTL:     cfg.Analyzer.CacheTTL,
		MaxBatchSize: cfg.Analyzer.MaxBatchSize,
	})
}

// newNotificationService returns nil when Telegram is disabled.
func newNotificationService(cfg *config.Config, appLogger *logger.Logger) (service.NotificationService, error) {
	if !cfg.Telegram.Enabled {
		return nil, nil
	}
	client, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram notifier: %w", err)
	}
	notifier := telegram.NewThrottledNotifier(client, cfg.Telegram.MessagesPerSecond)
	return service.NewNotificationService(notifier, appLogger), nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := bootstrap(cmd)
	defer func() { _ = appLogger.Sync() }()

	src, err := source.New(cfg, appLogger)
	if err != nil {
		return err
	}
	articles, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch articles from %s source: %w", src.Name(), err)
	}
	appLogger.Info("Articles loaded", logger.StringField("source", src.Name()), logger.IntField("count", len(articles)))

	results := newAnalyzerService(cfg, appLogger).AnalyzeAll(ctx, articles)
	if err := renderResults(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	notifier, err := newNotificationService(cfg, appLogger)
	if err != nil {
		return err
	}
	if notifier != nil {
		return notifier.NotifyAnalyses(ctx, service.TelegramResults(articles, results))
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := bootstrap(cmd)
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Analyzer Service", logger.Field("name", cfg.App.Name))

	analyzerSvc := newAnalyzerService(cfg, appLogger)

	e := echo.New()
	e.HideBanner = true
	e.GET("/healthz", delivery.HealthCheck)

	analysisHandler := delivery.NewAnalysisHandler(analyzerSvc, appLogger)
	apiV1 := e.Group(common.DefaultAPIBasePath)
	analysisHandler.RegisterRoutes(apiV1.Group("/analyses"))

	utils.GoSafe(func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	})

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := bootstrap(cmd)
	defer func() { _ = appLogger.Sync() }()

	if !cmd.Flags().Changed("source") {
		cfg.Source.Type = common.SourceFeed
	}
	if cmd.Flags().Changed("schedule") {
		cfg.Feed.Schedule = schedule
	}

	src, err := source.New(cfg, appLogger)
	if err != nil {
		return err
	}
	notifier, err := newNotificationService(cfg, appLogger)
	if err != nil {
		return err
	}

	watchSvc := service.NewWatchService(src, newAnalyzerService(cfg, appLogger), notifier, appLogger)
	return watchSvc.Start(ctx, cfg.Feed.Schedule)
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-analyzer.yaml", "Path to the configuration file")

	for _, cmd := range []*cobra.Command{runCmd, watchCmd} {
		cmd.Flags().StringVarP(&sourceType, "source", "s", common.SourceSample, "Article source: sample, file or feed")
		cmd.Flags().StringVarP(&sourcePath, "path", "p", "", "Articles file, feed file or feed URL")
		cmd.Flags().BoolVar(&notify, "notify", false, "Send a Telegram digest of the analyses")
	}
	watchCmd.Flags().StringVar(&schedule, "schedule", "", "Cron schedule, e.g. \"*/15 * * * *\" or \"@every 10m\"")

	rootCmd.AddCommand(runCmd, serveCmd, watchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing news-impact CLI: %s\n", err)
		os.Exit(1)
	}
}
