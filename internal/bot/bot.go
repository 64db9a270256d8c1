// Package bot реализует Telegram-фронтенд: команды, inline-кнопки
// и сборку заметок через черновики.
package bot

import (
	"context"
	"log/slog"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mikawo846/qrnotes/internal/notes"
)

// accessDeniedMessage единое сообщение об отказе в доступе.
// Никакой информации о существовании заметок не раскрывается.
const accessDeniedMessage = "❌ Доступ запрещен."

//go:generate moq -out api_mock.go . TelegramAPI

// TelegramAPI - используемая ботом часть Telegram Bot API.
// *tgbotapi.BotAPI реализует интерфейс, в тестах подменяется моком.
type TelegramAPI interface {
	// Send sends a message-producing request
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)

	// Request performs a request without a message response
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)

	// GetFile fetches file metadata for a download
	GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error)

	// GetUpdatesChan starts long polling
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel

	// StopReceivingUpdates stops long polling
	StopReceivingUpdates()
}

// Bot обрабатывает обновления Telegram по одному
type Bot struct {
	api           TelegramAPI
	service       *notes.Service
	sessions      SessionStore
	logger        *slog.Logger
	token         string
	allowedUserID int64
	uploadDir     string
}

// New creates a bot front-end for the single authorized user
func New(api *tgbotapi.BotAPI, service *notes.Service, sessions SessionStore, allowedUserID int64, uploadDir string, logger *slog.Logger) *Bot {
	return &Bot{
		api:           api,
		token:         api.Token,
		service:       service,
		sessions:      sessions,
		logger:        logger,
		allowedUserID: allowedUserID,
		uploadDir:     uploadDir,
	}
}

// Run запускает long polling и обрабатывает обновления до отмены
// контекста. Обновления обрабатываются строго по одному, поэтому
// черновики не требуют блокировок на время обработчика.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate обрабатывает одно обновление. Паника в обработчике
// логируется и не роняет цикл Run вместе со всем процессом.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if err := recover(); err != nil {
			b.logger.Error("panic recovered in update handler",
				"error", err,
				"stack", string(debug.Stack()),
			)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) isAuthorized(userID int64) bool {
	return userID == b.allowedUserID
}

// send отправляет сообщение, логируя ошибку вместо ее распространения:
// сбой отправки ответа не должен ронять обработку обновлений
func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.logger.Error("failed to send bot message", "error", err)
	}
}

// request выполняет API-запрос без ответа-сообщения (callback answer)
func (b *Bot) request(c tgbotapi.Chattable) {
	if _, err := b.api.Request(c); err != nil {
		b.logger.Error("failed to send bot request", "error", err)
	}
}
