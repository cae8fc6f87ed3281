package domain

import "context"

// EntryRepo управляет записями дневника. Хранилище append-only:
// записи добавляются и читаются, операций обновления и удаления нет.
type EntryRepo interface {
	CreateEntry(ctx context.Context, entry Entry) (int64, error)
	ListEntries(ctx context.Context) ([]Entry, error)
	GetEntry(ctx context.Context, id int64) (Entry, error)
}

// Analyzer отправляет текст дневника внешней модели и возвращает сырой текст ответа.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (string, error)
}
