package relay

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender реализует Sender поверх Telegram Bot API
type TelegramSender struct {
	api *tgbotapi.BotAPI
}

// NewTelegramSender creates a Sender backed by the Telegram Bot API
func NewTelegramSender(api *tgbotapi.BotAPI) *TelegramSender {
	return &TelegramSender{api: api}
}

// SendMessage sends a plain text message to the chat
func (s *TelegramSender) SendMessage(_ context.Context, chatID int64, text string) error {
	_, err := s.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SendPhoto sends a photo file with an optional caption
func (s *TelegramSender) SendPhoto(_ context.Context, chatID int64, photoPath, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(photoPath))
	photo.Caption = caption
	_, err := s.api.Send(photo)
	return err
}
