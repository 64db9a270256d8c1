package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mikawo846/qrnotes/internal/notes"
)

// draftKeyboard кнопки управления черновиком
func draftKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📷 Добавить фото (до 5)", "note_add_photo"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Установить заголовок", "note_set_title"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 Установить текст", "note_set_text"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💾 Сохранить", "note_save"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", "note_cancel"),
		),
	)
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Telegram не присылает Message для callback'ов по сообщениям
	// старше 48 часов: такую клавиатуру уже нечем редактировать
	if query.Message == nil {
		b.logger.Warn("callback without message, skipping", "user_id", query.From.ID)
		return
	}

	// Подтверждаем callback, чтобы у пользователя пропал "часик"
	b.request(tgbotapi.NewCallback(query.ID, ""))

	userID := query.From.ID
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	if !b.isAuthorized(userID) {
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, accessDeniedMessage))
		return
	}

	data := query.Data

	switch {
	case data == "note_new":
		b.startDraft(userID, chatID, messageID)

	case data == "note_add_photo":
		b.promptAddPhoto(userID, chatID, messageID, query.ID)

	case data == "note_set_title":
		b.promptField(userID, chatID, messageID, WaitingTitle, "✏️ Отправьте заголовок заметки:")

	case data == "note_set_text":
		b.promptField(userID, chatID, messageID, WaitingText, "📄 Отправьте текст заметки:")

	case data == "note_save":
		b.saveDraft(ctx, userID, chatID, messageID, query.ID)

	case data == "note_cancel":
		b.sessions.Delete(userID)
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, "❌ Создание заметки отменено."))

	case strings.HasPrefix(data, "note_view_"):
		noteID := strings.TrimPrefix(data, "note_view_")
		note, err := b.service.Resolve(ctx, noteID)
		if err != nil || note.OwnerID != userID {
			b.send(tgbotapi.NewEditMessageText(chatID, messageID, "❌ Заметка не найдена."))
			return
		}
		b.sendNote(chatID, note)
	}
}

// startDraft начинает новый черновик, сбрасывая предыдущий
func (b *Bot) startDraft(userID, chatID int64, messageID int) {
	b.sessions.Set(userID, NewDraft())

	text := "📝 Создание новой заметки:\n\n" +
		"Фото: 0/5\n" +
		"Заголовок: не установлен\n" +
		"Текст: не установлен\n\n" +
		"Выберите действие:"

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, draftKeyboard())
	b.send(edit)
}

func (b *Bot) promptAddPhoto(userID, chatID int64, messageID int, queryID string) {
	draft, ok := b.sessions.Get(userID)
	if !ok {
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, "❌ Ошибка: состояние не найдено."))
		return
	}

	if len(draft.Photos) >= maxDraftPhotos {
		b.request(tgbotapi.NewCallbackWithAlert(queryID, "❌ Максимум 5 фото!"))
		return
	}

	b.send(tgbotapi.NewEditMessageText(chatID, messageID,
		"📷 Отправьте фото (можно несколько, но не более 5 всего)"))
}

func (b *Bot) promptField(userID, chatID int64, messageID int, field WaitingField, prompt string) {
	draft, ok := b.sessions.Get(userID)
	if !ok {
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, "❌ Ошибка: состояние не найдено."))
		return
	}

	draft.WaitingFor = field
	b.sessions.Set(userID, draft)
	b.send(tgbotapi.NewEditMessageText(chatID, messageID, prompt))
}

// saveDraft сохраняет черновик как заметку.
// Без заголовка черновик остается активным, показывается alert.
func (b *Bot) saveDraft(ctx context.Context, userID, chatID int64, messageID int, queryID string) {
	draft, ok := b.sessions.Get(userID)
	if !ok {
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, "❌ Ошибка: состояние не найдено."))
		return
	}

	note, err := b.service.CreateFromDraft(ctx, draft.Title, draft.Text, draft.Photos, userID)
	if err != nil {
		var validationErr *notes.ValidationError
		if errors.As(err, &validationErr) {
			b.request(tgbotapi.NewCallbackWithAlert(queryID, "❌ "+validationErr.Error()+"!"))
			return
		}
		b.logger.Error("failed to save draft", "user_id", userID, "error", err)
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, "❌ Не удалось сохранить заметку."))
		return
	}

	// Черновик одноразовый: после сохранения он удаляется
	b.sessions.Delete(userID)

	b.send(tgbotapi.NewEditMessageText(chatID, messageID, "✅ Заметка сохранена!"))
	b.sendNoteQR(chatID, note.ID, fmt.Sprintf("📱 QR-код заметки: %s", note.Title))
}
