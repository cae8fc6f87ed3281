package diary

import (
	"strings"
	"testing"
)

func TestParseAnalysisFullReply(t *testing.T) {
	raw := "关键词: 工作, 朋友, 晚餐\n情绪: 开心\n反馈: 今天过得很充实。\n推荐任务: 散步二十分钟"
	analysis := ParseAnalysis(raw)
	if analysis.Keywords != "工作, 朋友, 晚餐" {
		t.Fatalf("неожиданные ключевые слова: %q", analysis.Keywords)
	}
	if analysis.Mood != "开心" {
		t.Fatalf("неожиданное настроение: %q", analysis.Mood)
	}
	if analysis.Feedback != "今天过得很充实。" {
		t.Fatalf("неожиданный отзыв: %q", analysis.Feedback)
	}
	if analysis.RecommendedTask != "散步二十分钟" {
		t.Fatalf("неожиданная задача: %q", analysis.RecommendedTask)
	}
}

func TestParseAnalysisTruncatesKeywordsAndMood(t *testing.T) {
	longKeywords := strings.Repeat("词", 300)
	longMood := strings.Repeat("情", 40)
	raw := "关键词: " + longKeywords + "\n情绪: " + longMood + "\n反馈: ok\n推荐任务: ok"
	analysis := ParseAnalysis(raw)
	if got := len([]rune(analysis.Keywords)); got != 256 {
		t.Fatalf("ожидали 256 рун в ключевых словах, получили %d", got)
	}
	if got := len([]rune(analysis.Mood)); got != 32 {
		t.Fatalf("ожидали 32 руны в настроении, получили %d", got)
	}
	if len([]rune(analysis.Feedback)) != 2 {
		t.Fatalf("отзыв не должен обрезаться")
	}
}

func TestParseAnalysisUnknownPrefix(t *testing.T) {
	raw := "Keywords: a\nMood: b\n反馈: c\n推荐任务: d"
	analysis := ParseAnalysis(raw)
	if analysis.Keywords != NotAvailable {
		t.Fatalf("ожидали sentinel для ключевых слов, получили %q", analysis.Keywords)
	}
	if analysis.Mood != NotAvailable {
		t.Fatalf("ожидали sentinel для настроения, получили %q", analysis.Mood)
	}
	if analysis.Feedback != "c" || analysis.RecommendedTask != "d" {
		t.Fatalf("совпавшие строки должны разбираться: %+v", analysis)
	}
}

func TestParseAnalysisMissingLines(t *testing.T) {
	raw := "关键词: 天气\n情绪: 平静"
	analysis := ParseAnalysis(raw)
	if analysis.Keywords != "天气" || analysis.Mood != "平静" {
		t.Fatalf("первые строки должны разбираться: %+v", analysis)
	}
	if analysis.Feedback != NotAvailable || analysis.RecommendedTask != NotAvailable {
		t.Fatalf("отсутствующие строки должны давать sentinel: %+v", analysis)
	}
}

func TestParseAnalysisEmptyReply(t *testing.T) {
	analysis := ParseAnalysis("")
	if analysis.Keywords != NotAvailable || analysis.Mood != NotAvailable ||
		analysis.Feedback != NotAvailable || analysis.RecommendedTask != NotAvailable {
		t.Fatalf("пустой ответ должен давать четыре sentinel: %+v", analysis)
	}
}
