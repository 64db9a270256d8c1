package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/mikawo846/qrnotes/internal/media"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	userID := msg.From.ID
	if !b.isAuthorized(userID) {
		if msg.IsCommand() {
			b.send(tgbotapi.NewMessage(msg.Chat.ID, accessDeniedMessage))
		}
		// Обычные сообщения чужих пользователей молча игнорируются
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Активный черновик перехватывает фото и текст
	if draft, ok := b.sessions.Get(userID); ok {
		switch {
		case len(msg.Photo) > 0:
			b.draftAddPhoto(msg, draft, userID)
		case msg.Text != "":
			b.draftApplyText(msg, draft, userID)
		}
		return
	}

	b.send(tgbotapi.NewMessage(msg.Chat.ID, helpMessage))
}

// draftAddPhoto скачивает присланное фото, нормализует его
// и добавляет в черновик
func (b *Bot) draftAddPhoto(msg *tgbotapi.Message, draft *Draft, userID int64) {
	if len(draft.Photos) >= maxDraftPhotos {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Максимум 5 фото!"))
		return
	}

	// Telegram присылает несколько размеров, последний - самый большой
	largest := msg.Photo[len(msg.Photo)-1]

	tempPath, err := b.downloadFile(largest.FileID)
	if err != nil {
		b.logger.Error("failed to download photo", "error", err)
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Не удалось загрузить фото."))
		return
	}

	path, err := b.service.NormalizePhoto(media.LocalPath(tempPath))
	if err != nil {
		// Даже fallback не сработал: используем скачанный файл как есть
		path = tempPath
	} else {
		_ = os.Remove(tempPath)
	}

	if err := draft.AddPhoto(path); err != nil {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Максимум 5 фото!"))
		return
	}
	b.sessions.Set(userID, draft)

	b.send(tgbotapi.NewMessage(msg.Chat.ID,
		fmt.Sprintf("✅ Фото добавлено (%d/5)", len(draft.Photos))))
}

// draftApplyText направляет входящий текст в заголовок или текст черновика
func (b *Bot) draftApplyText(msg *tgbotapi.Message, draft *Draft, userID int64) {
	applied := draft.ApplyText(msg.Text)
	b.sessions.Set(userID, draft)

	if applied == AppliedTitle {
		b.send(tgbotapi.NewMessage(msg.Chat.ID,
			fmt.Sprintf("✅ Заголовок установлен: %s", msg.Text)))
		return
	}
	b.send(tgbotapi.NewMessage(msg.Chat.ID, "✅ Текст установлен"))
}

// downloadFile скачивает файл Telegram во временный файл
// в каталоге загрузок и возвращает его путь
func (b *Bot) downloadFile(fileID string) (string, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("failed to get file info: %w", err)
	}

	resp, err := http.Get(file.Link(b.token))
	if err != nil {
		return "", fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download file: status %d", resp.StatusCode)
	}

	tempPath := filepath.Join(b.uploadDir, "temp_"+uuid.New().String()+".jpg")
	out, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return tempPath, nil
}
