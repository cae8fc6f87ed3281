package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/EmilyLiang06/DiaryAnalyzer/internal/domain"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/usecase/diary"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DiaryService описывает операции конвейера дневника, нужные веб-слою.
type DiaryService interface {
	Analyze(ctx context.Context, text string) (diary.Result, error)
	History(ctx context.Context) ([]domain.Entry, error)
	Entry(ctx context.Context, id int64) (domain.Entry, error)
	BuildReport(ctx context.Context) (diary.Report, error)
}

// Handler обслуживает четыре страницы приложения.
type Handler struct {
	service DiaryService
	tmpl    *template.Template
	log     zerolog.Logger
}

// NewHandler создаёт обработчик и разбирает встроенные шаблоны.
func NewHandler(service DiaryService, logger zerolog.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("разбор шаблонов: %w", err)
	}
	return &Handler{service: service, tmpl: tmpl, log: logger}, nil
}

// Routes регистрирует маршруты приложения.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.home)
	r.Post("/analyze", h.analyze)
	r.Get("/diary/{id}", h.detail)
	r.Get("/analysis", h.report)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.History(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("web: история записей")
		http.Error(w, "Error loading diary entries", http.StatusInternalServerError)
		return
	}
	h.render(w, "home.html", newHomeView(entries))
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error: invalid form", http.StatusBadRequest)
		return
	}
	result, err := h.service.Analyze(r.Context(), r.PostFormValue("diary"))
	if err != nil {
		if errors.Is(err, diary.ErrEmptyEntry) {
			http.Error(w, "Error: Diary entry is empty!", http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("web: анализ записи")
		http.Error(w, "Error processing diary: "+err.Error(), http.StatusInternalServerError)
		return
	}
	h.render(w, "result.html", newResultView(result))
}

func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	entry, err := h.service.Entry(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			h.render(w, "detail.html", detailView{Found: false})
			return
		}
		h.log.Error().Err(err).Msg("web: запись дневника")
		http.Error(w, "Error loading diary entry", http.StatusInternalServerError)
		return
	}
	h.render(w, "detail.html", newDetailView(entry))
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.BuildReport(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("web: отчёт по настроению")
		http.Error(w, "Error building mood report", http.StatusInternalServerError)
		return
	}
	view, err := newReportView(rep)
	if err != nil {
		h.log.Error().Err(err).Msg("web: данные отчёта")
		http.Error(w, "Error building mood report", http.StatusInternalServerError)
		return
	}
	h.render(w, "report.html", view)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error().Err(err).Str("template", name).Msg("web: рендер шаблона")
	}
}
