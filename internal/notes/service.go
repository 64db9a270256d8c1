// Package notes собирает заметки из сырого ввода обоих фронтендов
// (веб-форма и бот), сохраняет их и разрешает отсканированные QR-payload
// обратно в заметки.
package notes

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mikawo846/qrnotes/internal/media"
	"github.com/mikawo846/qrnotes/internal/models"
	"github.com/mikawo846/qrnotes/internal/qr"
	"github.com/mikawo846/qrnotes/internal/server/storage"
)

//go:generate moq -out relay_mock.go . RelayQueue

// RelayQueue принимает задания на пересылку созданной заметки
// во внешний канал уведомлений. Fire-and-forget: Enqueue не блокирует
// и не влияет на результат создания заметки.
type RelayQueue interface {
	Enqueue(text string, photoPaths []string)
}

// ValidationError описывает некорректный пользовательский ввод.
// Message безопасно показывать пользователю.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Service реализует сборку заметок: валидация, производный заголовок,
// нормализация фото, сохранение и постановка relay-задания.
type Service struct {
	storage   storage.NoteStorage
	relay     RelayQueue
	logger    *slog.Logger
	uploadDir string
}

// NewService creates a new note assembly service
func NewService(st storage.NoteStorage, relay RelayQueue, uploadDir string, logger *slog.Logger) *Service {
	return &Service{
		storage:   st,
		relay:     relay,
		logger:    logger,
		uploadDir: uploadDir,
	}
}

// CreateFromWeb создает заметку из веб-формы: свободный текст
// плюс 0-5 изображений. Возвращает ValidationError при некорректном вводе.
func (s *Service) CreateFromWeb(ctx context.Context, text string, photos []media.Source, ownerID int64) (*models.Note, error) {
	if len([]rune(text)) > models.MaxTextLength {
		return nil, &ValidationError{Message: "Текст заметки превышает 4096 символов"}
	}

	if strings.TrimSpace(text) == "" && len(photos) == 0 {
		return nil, &ValidationError{Message: "Необходимо указать текст или добавить фото"}
	}

	if len(photos) > models.MaxPhotos {
		return nil, &ValidationError{Message: "Максимум 5 фотографий"}
	}

	photoPaths := s.savePhotos(photos)

	note := &models.Note{
		ID:      uuid.New().String(),
		Title:   DeriveTitle(text),
		Text:    text,
		Photos:  photoPaths,
		Created: time.Now().UTC(),
		OwnerID: ownerID,
	}

	if err := s.storage.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.relay.Enqueue(text, photoPaths)

	return note, nil
}

// CreateFromDraft создает заметку из черновика бота. Заголовок задается
// явно и обязателен, фото уже нормализованы при добавлении в черновик.
func (s *Service) CreateFromDraft(ctx context.Context, title, text string, photoPaths []string, ownerID int64) (*models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Message: "Установите заголовок"}
	}

	if len([]rune(text)) > models.MaxTextLength {
		return nil, &ValidationError{Message: "Текст заметки превышает 4096 символов"}
	}

	if len(photoPaths) > models.MaxPhotos {
		return nil, &ValidationError{Message: "Максимум 5 фотографий"}
	}

	note := &models.Note{
		ID:      uuid.New().String(),
		Title:   truncateRunes(strings.TrimSpace(title), models.MaxTitleLength),
		Text:    text,
		Photos:  photoPaths,
		Created: time.Now().UTC(),
		OwnerID: ownerID,
	}

	if err := s.storage.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.relay.Enqueue(text, photoPaths)

	return note, nil
}

// Resolve разбирает отсканированный payload и возвращает заметку.
// Возвращает storage.ErrNoteNotFound для неизвестного id.
// Поиск только по id: владелец QR-кода может открыть любую заметку.
func (s *Service) Resolve(ctx context.Context, payload string) (*models.Note, error) {
	noteID := qr.ParsePayload(payload)

	note, err := s.storage.GetNoteByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	return note, nil
}

// ListByOwner возвращает последние limit заметок владельца
func (s *Service) ListByOwner(ctx context.Context, ownerID int64, limit int) ([]*models.Note, error) {
	return s.storage.ListNotesByOwner(ctx, ownerID, limit)
}

// Count возвращает общее количество заметок
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.storage.CountNotes(ctx)
}

// NormalizePhoto нормализует одно изображение в свежий файл в каталоге
// загрузок и возвращает его путь. При ошибке декодирования сохраняет
// оригинал как есть (fallback-политика).
func (s *Service) NormalizePhoto(src media.Source) (string, error) {
	target := filepath.Join(s.uploadDir, uuid.New().String()+".jpg")

	if err := media.Normalize(src, target); err != nil {
		s.logger.Warn("failed to normalize photo, saving original",
			"target", target,
			"error", err,
		)
		if err := media.SaveOriginal(src, target); err != nil {
			return "", fmt.Errorf("failed to save original: %w", err)
		}
	}

	return target, nil
}

// savePhotos нормализует изображения веб-загрузки.
// Политика best-effort: фото, которое не удалось сохранить даже
// оригиналом, пропускается, заметка создается с остальными.
func (s *Service) savePhotos(photos []media.Source) []string {
	paths := make([]string, 0, len(photos))
	for _, src := range photos {
		path, err := s.NormalizePhoto(src)
		if err != nil {
			s.logger.Error("failed to save photo, skipping", "error", err)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// DeriveTitle выводит заголовок из текста заметки: первая непустая строка,
// обрезанная до лимита. Для пустого текста - заголовок-заглушка.
func DeriveTitle(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.UntitledPlaceholder
	}

	firstLine, _, _ := strings.Cut(trimmed, "\n")
	firstLine = strings.TrimSpace(firstLine)
	if firstLine == "" {
		return models.UntitledPlaceholder
	}

	return truncateRunes(firstLine, models.MaxTitleLength)
}

// truncateRunes обрезает строку до max символов (не байт)
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
