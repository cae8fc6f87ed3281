package domain

import "errors"

// ErrEntryNotFound возвращается, когда записи с указанным id нет в хранилище.
var ErrEntryNotFound = errors.New("запись дневника не найдена")
