package diary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/EmilyLiang06/DiaryAnalyzer/internal/domain"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/metrics"
)

// ErrEmptyEntry возвращается на пустой текст или нетронутый placeholder формы.
var ErrEmptyEntry = errors.New("текст дневника пуст")

// placeholderText — подсказка в поле ввода; отправка формы с ней равносильна пустой.
const placeholderText = "输入..."

// Result — итог конвейера анализа: разобранные поля и флаг сохранения.
type Result struct {
	Analysis domain.Analysis
	Saved    bool
}

// Service реализует конвейер анализа дневника: валидация, вызов модели,
// разбор ответа, сохранение записи.
type Service struct {
	entries  domain.EntryRepo
	analyzer domain.Analyzer
	log      zerolog.Logger
}

// NewService создаёт сервис дневника.
func NewService(entries domain.EntryRepo, analyzer domain.Analyzer, logger zerolog.Logger) *Service {
	return &Service{entries: entries, analyzer: analyzer, log: logger}
}

// Analyze прогоняет текст через модель и сохраняет запись за сегодняшний день.
// Ошибка сохранения не прерывает ответ: пользователь получает разбор
// с флагом Saved=false.
func (s *Service) Analyze(ctx context.Context, text string) (Result, error) {
	metrics.AnalyzeRequestsTotal.Inc()
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == placeholderText {
		return Result{}, ErrEmptyEntry
	}

	raw, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		metrics.AnalyzeFailuresTotal.Inc()
		return Result{}, fmt.Errorf("анализ дневника: %w", err)
	}
	analysis := ParseAnalysis(raw)

	entry := domain.Entry{
		Date:     today(),
		Text:     text,
		Mood:     storedField(analysis.Mood),
		Keywords: storedField(analysis.Keywords),
	}
	saved := true
	if _, err := s.entries.CreateEntry(ctx, entry); err != nil {
		metrics.EntrySaveErrorsTotal.Inc()
		s.log.Error().Err(err).Msg("diary: не удалось сохранить запись")
		saved = false
	}
	return Result{Analysis: analysis, Saved: saved}, nil
}

// History возвращает все записи, новые сверху.
func (s *Service) History(ctx context.Context) ([]domain.Entry, error) {
	return s.entries.ListEntries(ctx)
}

// Entry возвращает запись по id либо domain.ErrEntryNotFound.
func (s *Service) Entry(ctx context.Context, id int64) (domain.Entry, error) {
	return s.entries.GetEntry(ctx, id)
}

// BuildReport собирает распределение настроений и тренд по всем записям.
func (s *Service) BuildReport(ctx context.Context) (Report, error) {
	entries, err := s.entries.ListEntries(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("получение записей: %w", err)
	}
	return Report{
		Distribution: MoodDistribution(entries),
		Trend:        MoodTrend(entries),
	}, nil
}

// storedField приводит sentinel-значение парсера к отсутствующему значению:
// в хранилище попадает пустота, подстановка остаётся на уровне представления.
func storedField(v string) string {
	if v == NotAvailable {
		return ""
	}
	return v
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
