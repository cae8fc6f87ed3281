package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EmilyLiang06/DiaryAnalyzer/internal/domain"
	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/metrics"
)

// Postgres реализует domain.EntryRepo на основе pgxpool.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ domain.EntryRepo = (*Postgres)(nil)

// NewPostgres создаёт адаптер БД.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) connCtxWithParent(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), 5*time.Second)
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, 5*time.Second)
}

// EnsureSchema создаёт таблицу записей, если её ещё нет.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	ctx, cancel := p.connCtxWithParent(ctx)
	defer cancel()

	start := time.Now()
	_, err := p.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS diaries (
    id BIGSERIAL PRIMARY KEY,
    date DATE NOT NULL,
    text TEXT NOT NULL,
    mood VARCHAR(32),
    keywords VARCHAR(256)
)
`)
	metrics.ObserveNetworkRequest("postgres", "ensure_schema", "diaries", start, err)
	if err != nil {
		return fmt.Errorf("создание схемы: %w", err)
	}
	return nil
}

// CreateEntry вставляет новую запись и возвращает назначенный id.
// Пустые mood/keywords сохраняются как NULL: sentinel-подстановки — дело
// уровня представления, не хранилища.
func (p *Postgres) CreateEntry(ctx context.Context, entry domain.Entry) (int64, error) {
	ctx, cancel := p.connCtxWithParent(ctx)
	defer cancel()

	start := time.Now()
	var id int64
	err := p.pool.QueryRow(ctx, `
INSERT INTO diaries (date, text, mood, keywords)
VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''))
RETURNING id
`, entry.Date, entry.Text, entry.Mood, entry.Keywords).Scan(&id)
	metrics.ObserveNetworkRequest("postgres", "entry_insert", "diaries", start, err)
	if err != nil {
		return 0, fmt.Errorf("вставка записи: %w", err)
	}
	return id, nil
}

// ListEntries возвращает все записи: по дате по убыванию, при равной дате —
// позже вставленные раньше.
func (p *Postgres) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	ctx, cancel := p.connCtxWithParent(ctx)
	defer cancel()

	start := time.Now()
	rows, err := p.pool.Query(ctx, `
SELECT id, date, text, COALESCE(mood, ''), COALESCE(keywords, '')
FROM diaries
ORDER BY date DESC, id DESC
`)
	metrics.ObserveNetworkRequest("postgres", "entries_list", "diaries", start, err)
	if err != nil {
		return nil, fmt.Errorf("выборка записей: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.Date, &e.Text, &e.Mood, &e.Keywords); err != nil {
			return nil, fmt.Errorf("чтение записи: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("обход записей: %w", err)
	}
	return entries, nil
}

// GetEntry возвращает запись по id либо domain.ErrEntryNotFound.
func (p *Postgres) GetEntry(ctx context.Context, id int64) (domain.Entry, error) {
	ctx, cancel := p.connCtxWithParent(ctx)
	defer cancel()

	start := time.Now()
	var e domain.Entry
	err := p.pool.QueryRow(ctx, `
SELECT id, date, text, COALESCE(mood, ''), COALESCE(keywords, '')
FROM diaries WHERE id = $1
`, id).Scan(&e.ID, &e.Date, &e.Text, &e.Mood, &e.Keywords)
	metrics.ObserveNetworkRequest("postgres", "entry_get", "diaries", start, err)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Entry{}, domain.ErrEntryNotFound
	}
	if err != nil {
		return domain.Entry{}, fmt.Errorf("выборка записи: %w", err)
	}
	return e, nil
}
