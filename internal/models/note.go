package models

import "time"

// Ограничения на содержимое заметки.
// Применяются при создании, сохраненная заметка им всегда удовлетворяет.
const (
	MaxTextLength  = 4096 // MaxTextLength максимальная длина текста заметки в символах
	MaxTitleLength = 500  // MaxTitleLength максимальная длина заголовка в символах
	MaxPhotos      = 5    // MaxPhotos максимальное количество фото в одной заметке
)

// UntitledPlaceholder заголовок по умолчанию, когда текст заметки пуст.
const UntitledPlaceholder = "Без названия"

// Note представляет сохраненную заметку.
// Заметка создается один раз и после этого не изменяется:
// операций обновления и удаления не существует.
type Note struct {
	Created time.Time `json:"created"` // Created время создания (UTC), неизменяемое
	ID      string    `json:"id"`      // ID уникальный идентификатор (UUID), используется как payload QR-кода
	Title   string    `json:"title"`   // Title короткий заголовок, производный от первой строки текста
	Text    string    `json:"text"`    // Text опциональный свободный текст
	Photos  []string  `json:"photos"`  // Photos упорядоченный список путей к файлам фото (0-5), первое фото - обложка
	OwnerID int64     `json:"-"`       // OwnerID идентификатор создавшего пользователя
}
