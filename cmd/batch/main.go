package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/EmilyLiang06/DiaryAnalyzer/internal/adapters/analyzer"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/adapters/repo"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/domain"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/anthropic"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/config"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/db"
	applog "github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/log"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/metrics"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/usecase/diary"
)

// Батч-режим: прогоняет текст из файла через тот же конвейер анализа,
// что и веб-форма, и печатает результат вместе с историей записей.
func main() {
	file := flag.String("file", "diary.txt", "файл с текстом дневника")
	flag.Parse()

	cfg := config.Load()
	logger := applog.NewLogger(cfg.AppEnv)
	if cfg.Anthropic.APIKey == "" {
		logger.Fatal().Msg("batch: ANTHROPIC_API_KEY не задан")
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatal().Err(err).Str("file", *file).Msg("batch: не удалось прочитать файл")
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		logger.Fatal().Str("file", *file).Msg("batch: файл дневника пуст")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(cfg.PGDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("batch: нет подключения к БД")
	}
	defer pool.Close()

	entryRepo := repo.NewPostgres(pool)
	if err := entryRepo.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("batch: подготовка схемы БД")
	}

	client := anthropic.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.BaseURL, cfg.Anthropic.Timeout)
	diaryAnalyzer := analyzer.NewAnthropic(client, cfg.Anthropic.Model, cfg.Anthropic.Timeout)
	service := diary.NewService(entryRepo, diaryAnalyzer, logger.With().Str("component", "diary").Logger())

	result, err := service.Analyze(ctx, text)
	if err != nil {
		logger.Fatal().Err(err).Msg("batch: анализ дневника")
	}

	fmt.Println("\n分析结果：")
	fmt.Printf("关键词: %s\n", result.Analysis.Keywords)
	fmt.Printf("情绪: %s\n", result.Analysis.Mood)
	fmt.Printf("反馈: %s\n", result.Analysis.Feedback)
	fmt.Printf("推荐任务: %s\n", result.Analysis.RecommendedTask)
	if result.Saved {
		fmt.Println("日记已写入数据库。")
	} else {
		fmt.Println("日记未保存。")
	}

	entries, err := service.History(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("batch: история записей")
	}
	printEntries(entries)
}

func printEntries(entries []domain.Entry) {
	if len(entries) == 0 {
		fmt.Println("No diary entries found in the database.")
		return
	}
	fmt.Println("\nDiary Entries:")
	for _, e := range entries {
		fmt.Printf("ID: %d\n", e.ID)
		fmt.Printf("Date: %s\n", e.Date.Format("2006-01-02"))
		fmt.Printf("Text: %s\n", previewText(e.Text))
		fmt.Printf("Mood: %s\n", orNotSet(e.Mood))
		fmt.Printf("Keywords: %s\n", orNotSet(e.Keywords))
		fmt.Println(strings.Repeat("-", 50))
	}
}

func previewText(text string) string {
	runes := []rune(text)
	if len(runes) <= 100 {
		return text
	}
	return string(runes[:100]) + "..."
}

func orNotSet(v string) string {
	if v == "" {
		return "Not set"
	}
	return v
}
