package diary

import (
	"strings"

	"github.com/EmilyLiang06/DiaryAnalyzer/internal/domain"
)

// NotAvailable подставляется вместо поля, которое не удалось извлечь из ответа модели.
const NotAvailable = "Not available"

const (
	keywordsPrefix = "关键词:"
	moodPrefix     = "情绪:"
	feedbackPrefix = "反馈:"
	taskPrefix     = "推荐任务:"
)

const (
	maxKeywordsRunes = 256
	maxMoodRunes     = 32
)

// ParseAnalysis разбирает сырой ответ модели на четыре поля.
// Разбор позиционный: строка 0 — ключевые слова, 1 — настроение,
// 2 — отзыв, 3 — рекомендованная задача. Строка без ожидаемого префикса,
// как и отсутствующая строка, даёт значение NotAvailable; ошибкой это не считается.
func ParseAnalysis(raw string) domain.Analysis {
	lines := strings.Split(raw, "\n")
	return domain.Analysis{
		Keywords:        extractField(lines, 0, keywordsPrefix, maxKeywordsRunes),
		Mood:            extractField(lines, 1, moodPrefix, maxMoodRunes),
		Feedback:        extractField(lines, 2, feedbackPrefix, 0),
		RecommendedTask: extractField(lines, 3, taskPrefix, 0),
	}
}

func extractField(lines []string, idx int, prefix string, limit int) string {
	if idx >= len(lines) {
		return NotAvailable
	}
	line := lines[idx]
	if !strings.HasPrefix(line, prefix) {
		return NotAvailable
	}
	value := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	return clipRunes(value, limit)
}

// clipRunes обрезает строку до limit рун. Поля содержат китайский текст,
// поэтому резать по байтам нельзя.
func clipRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
