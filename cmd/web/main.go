package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/EmilyLiang06/DiaryAnalyzer/internal/adapters/analyzer"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/adapters/repo"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/adapters/web"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/anthropic"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/config"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/db"
	httpinfra "github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/http"
	applog "github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/log"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/metrics"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/usecase/diary"
)

func main() {
	cfg := config.Load()
	logger := applog.NewLogger(cfg.AppEnv)
	if cfg.Anthropic.APIKey == "" {
		logger.Fatal().Msg("web: ANTHROPIC_API_KEY не задан")
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(cfg.PGDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("web: нет подключения к БД")
	}
	defer pool.Close()

	entryRepo := repo.NewPostgres(pool)
	if err := entryRepo.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("web: подготовка схемы БД")
	}

	client := anthropic.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.BaseURL, cfg.Anthropic.Timeout)
	diaryAnalyzer := analyzer.NewAnthropic(client, cfg.Anthropic.Model, cfg.Anthropic.Timeout)
	service := diary.NewService(entryRepo, diaryAnalyzer, logger.With().Str("component", "diary").Logger())

	handler, err := web.NewHandler(service, logger.With().Str("component", "web").Logger())
	if err != nil {
		logger.Fatal().Err(err).Msg("web: инициализация обработчика")
	}

	server := httpinfra.NewServer(logger)
	handler.Routes(server.Router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	metrics.StartServer(ctx, logger.With().Str("component", "metrics").Logger(), cfg.MetricsAddr)
	go func() {
		logger.Info().Int("port", cfg.Port).Msg("web: старт")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("web: сервер остановлен")
		}
	}()
	<-ctx.Done()
	logger.Info().Msg("web: остановка")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
