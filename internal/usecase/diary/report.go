package diary

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/EmilyLiang06/DiaryAnalyzer/internal/domain"
)

// TrendPoint — оценка настроения одной записи в хронологии.
type TrendPoint struct {
	Date  time.Time
	Score float64
}

// Report объединяет данные для страницы отчёта.
type Report struct {
	Distribution map[string]float64
	Trend        []TrendPoint
}

// defaultDistribution возвращается, когда ни у одной записи нет настроения.
// Три нулевых ключа нужны диаграмме, чтобы не рисовать пустой график.
func defaultDistribution() map[string]float64 {
	return map[string]float64{"Happy": 0, "Sad": 0, "Neutral": 0}
}

// MoodDistribution считает процентное распределение меток настроения.
// Записи без настроения не учитываются. Проценты округляются до двух знаков.
func MoodDistribution(entries []domain.Entry) map[string]float64 {
	counts := make(map[string]int)
	total := 0
	for _, e := range entries {
		if e.Mood == "" {
			continue
		}
		counts[e.Mood]++
		total++
	}
	if total == 0 {
		return defaultDistribution()
	}
	dist := make(map[string]float64, len(counts))
	for mood, count := range counts {
		dist[mood] = round2(float64(count) / float64(total) * 100)
	}
	return dist
}

// moodScores переводит метку настроения в числовую оценку для графика тренда.
// Метки приходят от модели свободным текстом, поэтому словарь покрывает
// распространённые китайские и английские варианты.
var moodScores = map[string]float64{
	"开心": 80, "快乐": 80, "高兴": 80, "积极": 80, "愉快": 80, "happy": 80,
	"平静": 50, "中性": 50, "一般": 50, "neutral": 50,
	"难过": 20, "悲伤": 20, "消极": 20, "低落": 20, "sad": 20,
}

const unknownMoodScore = 50

// MoodTrend строит оценку настроения по записям в хронологическом порядке.
// Записи без настроения пропускаются. Пустой результат заменяется одной
// нулевой точкой за сегодня, чтобы график не оставался пустым.
func MoodTrend(entries []domain.Entry) []TrendPoint {
	points := make([]TrendPoint, 0, len(entries))
	for _, e := range entries {
		if e.Mood == "" {
			continue
		}
		points = append(points, TrendPoint{Date: e.Date, Score: moodScore(e.Mood)})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	if len(points) == 0 {
		y, m, d := time.Now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
		return []TrendPoint{{Date: today, Score: 0}}
	}
	return points
}

func moodScore(mood string) float64 {
	key := strings.ToLower(strings.TrimSpace(mood))
	if score, ok := moodScores[key]; ok {
		return score
	}
	return unknownMoodScore
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
