package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"sort"

	"github.com/EmilyLiang06/DiaryAnalyzer/internal/domain"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/usecase/diary"
)

const dateLayout = "01月02日，2006"

const fieldNotSet = "未设置"

type homeView struct {
	Entries []entryView
}

type entryView struct {
	ID       int64
	Date     string
	Keywords string
}

func newHomeView(entries []domain.Entry) homeView {
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		keywords := e.Keywords
		if keywords == "" {
			keywords = "无关键词"
		}
		views = append(views, entryView{ID: e.ID, Date: e.Date.Format(dateLayout), Keywords: keywords})
	}
	return homeView{Entries: views}
}

type resultView struct {
	Keywords        string
	Mood            string
	Feedback        string
	RecommendedTask string
	Saved           string
}

func newResultView(res diary.Result) resultView {
	saved := "Yes"
	if !res.Saved {
		saved = "No"
	}
	return resultView{
		Keywords:        res.Analysis.Keywords,
		Mood:            res.Analysis.Mood,
		Feedback:        res.Analysis.Feedback,
		RecommendedTask: res.Analysis.RecommendedTask,
		Saved:           saved,
	}
}

type detailView struct {
	Found    bool
	Date     string
	Mood     string
	Keywords string
	Text     string
}

func newDetailView(e domain.Entry) detailView {
	view := detailView{
		Found:    true,
		Date:     e.Date.Format(dateLayout),
		Mood:     e.Mood,
		Keywords: e.Keywords,
		Text:     e.Text,
	}
	if view.Mood == "" {
		view.Mood = fieldNotSet
	}
	if view.Keywords == "" {
		view.Keywords = fieldNotSet
	}
	return view
}

type reportView struct {
	MoodLabels  template.JS
	MoodValues  template.JS
	TrendLabels template.JS
	TrendValues template.JS
}

func newReportView(rep diary.Report) (reportView, error) {
	moodLabels := make([]string, 0, len(rep.Distribution))
	for label := range rep.Distribution {
		moodLabels = append(moodLabels, label)
	}
	sort.Strings(moodLabels)
	moodValues := make([]float64, 0, len(moodLabels))
	for _, label := range moodLabels {
		moodValues = append(moodValues, rep.Distribution[label])
	}

	trendLabels := make([]string, 0, len(rep.Trend))
	trendValues := make([]float64, 0, len(rep.Trend))
	for _, point := range rep.Trend {
		trendLabels = append(trendLabels, point.Date.Format("2006-01-02"))
		trendValues = append(trendValues, point.Score)
	}

	view := reportView{}
	var err error
	if view.MoodLabels, err = toJS(moodLabels); err != nil {
		return reportView{}, err
	}
	if view.MoodValues, err = toJS(moodValues); err != nil {
		return reportView{}, err
	}
	if view.TrendLabels, err = toJS(trendLabels); err != nil {
		return reportView{}, err
	}
	if view.TrendValues, err = toJS(trendValues); err != nil {
		return reportView{}, err
	}
	return view, nil
}

func toJS(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("сериализация данных графика: %w", err)
	}
	return template.JS(b), nil
}
