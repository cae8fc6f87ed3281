package diary

import (
	"testing"
	"time"

	"github.com/EmilyLiang06/DiaryAnalyzer/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMoodDistributionEmpty(t *testing.T) {
	dist := MoodDistribution(nil)
	want := map[string]float64{"Happy": 0, "Sad": 0, "Neutral": 0}
	if len(dist) != len(want) {
		t.Fatalf("ожидали три ключа по умолчанию, получили %v", dist)
	}
	for k, v := range want {
		if dist[k] != v {
			t.Fatalf("ожидали %s=%v, получили %v", k, v, dist[k])
		}
	}
}

func TestMoodDistributionIgnoresEntriesWithoutMood(t *testing.T) {
	entries := []domain.Entry{
		{Mood: ""},
		{Mood: ""},
	}
	dist := MoodDistribution(entries)
	if dist["Happy"] != 0 || dist["Sad"] != 0 || dist["Neutral"] != 0 || len(dist) != 3 {
		t.Fatalf("записи без настроения не должны учитываться: %v", dist)
	}
}

func TestMoodDistributionPercentages(t *testing.T) {
	entries := []domain.Entry{
		{Mood: "Happy"},
		{Mood: "Happy"},
		{Mood: "Sad"},
	}
	dist := MoodDistribution(entries)
	if dist["Happy"] != 66.67 {
		t.Fatalf("ожидали Happy=66.67, получили %v", dist["Happy"])
	}
	if dist["Sad"] != 33.33 {
		t.Fatalf("ожидали Sad=33.33, получили %v", dist["Sad"])
	}
	if len(dist) != 2 {
		t.Fatalf("ожидали две метки, получили %v", dist)
	}
}

func TestMoodTrendOrdersByDate(t *testing.T) {
	entries := []domain.Entry{
		{Date: date(2024, time.March, 1), Mood: "开心"},
		{Date: date(2024, time.January, 1), Mood: "难过"},
		{Date: date(2024, time.February, 1), Mood: "平静"},
	}
	trend := MoodTrend(entries)
	if len(trend) != 3 {
		t.Fatalf("ожидали три точки, получили %d", len(trend))
	}
	if !trend[0].Date.Equal(date(2024, time.January, 1)) {
		t.Fatalf("тренд должен идти по возрастанию даты: %v", trend[0].Date)
	}
	if trend[0].Score != 20 || trend[1].Score != 50 || trend[2].Score != 80 {
		t.Fatalf("неожиданные оценки: %+v", trend)
	}
}

func TestMoodTrendUnknownLabel(t *testing.T) {
	trend := MoodTrend([]domain.Entry{{Date: date(2024, time.May, 5), Mood: "复杂"}})
	if len(trend) != 1 || trend[0].Score != unknownMoodScore {
		t.Fatalf("незнакомая метка должна давать нейтральную оценку: %+v", trend)
	}
}

func TestMoodTrendEmpty(t *testing.T) {
	trend := MoodTrend(nil)
	if len(trend) != 1 {
		t.Fatalf("пустая история должна давать одну точку, получили %d", len(trend))
	}
	if trend[0].Score != 0 {
		t.Fatalf("ожидали нулевую оценку, получили %v", trend[0].Score)
	}
}
