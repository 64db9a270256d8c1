// Package relay пересылает созданные заметки во внешний канал уведомлений.
// Доставка best-effort: одна попытка на заметку, сбои логируются
// и не влияют на создание заметки.
package relay

import (
	"context"
	"log/slog"
	"sync/atomic"
)

const (
	// maxCaptionLength лимит подписи к фото
	maxCaptionLength = 1024
	// maxMessageLength лимит обычного текстового сообщения
	maxMessageLength = 4096
)

//go:generate moq -out sender_mock.go . Sender

// Sender доставляет одно сообщение или фото в канал
type Sender interface {
	// SendMessage sends a plain text message to the chat
	SendMessage(ctx context.Context, chatID int64, text string) error

	// SendPhoto sends a photo file with an optional caption
	SendPhoto(ctx context.Context, chatID int64, photoPath, caption string) error
}

// job одно relay-задание: текст заметки и пути к фото в значимом порядке
type job struct {
	text       string
	photoPaths []string
}

// Stats счетчики очереди для наблюдаемости
type Stats struct {
	Queued    int64 `json:"queued"`    // Queued всего принято заданий
	Delivered int64 `json:"delivered"` // Delivered успешно доставлено
	Failed    int64 `json:"failed"`    // Failed доставка завершилась ошибкой
	Dropped   int64 `json:"dropped"`   // Dropped отброшено из-за переполнения очереди
}

// Queue ограниченная очередь relay-заданий с одним потребителем.
// Один потребитель сериализует весь исходящий трафик: многочастные
// отправки не перемешиваются между собой.
type Queue struct {
	jobs   chan job
	sender Sender
	logger *slog.Logger
	chatID int64

	queued    atomic.Int64
	delivered atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

// NewQueue creates a relay queue with the given capacity
func NewQueue(sender Sender, chatID int64, capacity int, logger *slog.Logger) *Queue {
	return &Queue{
		jobs:   make(chan job, capacity),
		sender: sender,
		logger: logger,
		chatID: chatID,
	}
}

// Enqueue ставит задание в очередь, никогда не блокируя вызывающего.
// При переполненной очереди задание отбрасывается: ровно одна попытка
// доставки на заметку, повторов нет.
func (q *Queue) Enqueue(text string, photoPaths []string) {
	select {
	case q.jobs <- job{text: text, photoPaths: photoPaths}:
		q.queued.Add(1)
	default:
		q.dropped.Add(1)
		q.logger.Warn("relay queue full, dropping job",
			"photos", len(photoPaths),
			"dropped_total", q.dropped.Load(),
		)
	}
}

// Run обрабатывает задания по одному в порядке поступления,
// пока контекст не будет отменен. Запускается в отдельной горутине.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-q.jobs:
			q.deliver(ctx, j)
		}
	}
}

// Depth возвращает текущую глубину очереди
func (q *Queue) Depth() int {
	return len(q.jobs)
}

// Stats возвращает снимок счетчиков очереди
func (q *Queue) Stats() Stats {
	return Stats{
		Queued:    q.queued.Load(),
		Delivered: q.delivered.Load(),
		Failed:    q.failed.Load(),
		Dropped:   q.dropped.Load(),
	}
}

// deliver выполняет одну попытку доставки.
// Первое фото уходит с подписью-текстом, остальные без подписи,
// без фото - обычное сообщение. Любая ошибка логируется и глотается.
func (q *Queue) deliver(ctx context.Context, j job) {
	if len(j.photoPaths) == 0 {
		if err := q.sender.SendMessage(ctx, q.chatID, truncateRunes(j.text, maxMessageLength)); err != nil {
			q.failed.Add(1)
			q.logger.Error("failed to relay message", "error", err)
			return
		}
		q.delivered.Add(1)
		return
	}

	caption := truncateRunes(j.text, maxCaptionLength)
	for i, path := range j.photoPaths {
		photoCaption := ""
		if i == 0 {
			photoCaption = caption
		}
		if err := q.sender.SendPhoto(ctx, q.chatID, path, photoCaption); err != nil {
			q.failed.Add(1)
			q.logger.Error("failed to relay photo", "path", path, "error", err)
			return
		}
	}
	q.delivered.Add(1)
}

// truncateRunes обрезает строку до max символов
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
