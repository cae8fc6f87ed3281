package domain

import "time"

// Entry описывает одну запись дневника вместе с производными полями анализа.
// Записи создаются один раз и далее не изменяются.
type Entry struct {
	ID       int64
	Date     time.Time
	Text     string
	Mood     string
	Keywords string
}

// Analysis содержит структурированный результат анализа текста дневника.
type Analysis struct {
	Keywords        string
	Mood            string
	Feedback        string
	RecommendedTask string
}
