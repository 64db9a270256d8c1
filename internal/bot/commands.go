package bot

import (
	"context"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mikawo846/qrnotes/internal/models"
	"github.com/mikawo846/qrnotes/internal/qr"
)

const helpMessage = "👋 Используйте команды:\n" +
	"/start - приветствие\n" +
	"/qr <текст> - создать QR-код\n" +
	"/note - управление заметками\n" +
	"/view <id> - просмотр заметки"

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	if !b.isAuthorized(userID) {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, accessDeniedMessage))
		return
	}

	switch msg.Command() {
	case "start":
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "👋 Отправь ссылку Ozon/WB/Avito или заметку с фото"))
	case "qr":
		b.handleQRCommand(ctx, msg)
	case "note":
		b.handleNoteCommand(ctx, msg)
	case "view":
		b.handleViewCommand(ctx, msg)
	default:
		b.send(tgbotapi.NewMessage(msg.Chat.ID, helpMessage))
	}
}

// handleQRCommand обрабатывает /qr <текст или payload заметки>
func (b *Bot) handleQRCommand(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Использование: /qr <текст или ссылка>"))
		return
	}

	// Payload заметки открывает саму заметку, а не кодирует строку
	if strings.HasPrefix(args, qr.NotePrefix) {
		note, err := b.service.Resolve(ctx, args)
		if err != nil {
			b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Заметка не найдена"))
			return
		}
		b.sendNoteSummary(msg.Chat.ID, note)
		return
	}

	png, err := qr.Generate(args)
	if err != nil {
		b.logger.Error("failed to generate qr", "error", err)
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Не удалось создать QR-код"))
		return
	}

	photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: "qr.png", Bytes: png})
	photo.Caption = fmt.Sprintf("📱 QR-код для: %s...", truncateRunes(args, 50))
	b.send(photo)
}

// handleNoteCommand обрабатывает /note: кнопка новой заметки
// плюс последние десять заметок пользователя
func (b *Bot) handleNoteCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	userNotes, err := b.service.ListByOwner(ctx, userID, 10)
	if err != nil {
		b.logger.Error("failed to list notes", "error", err)
		userNotes = nil
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Новая заметка", "note_new"),
		),
	}
	for _, note := range userNotes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("📝 %s...", truncateRunes(note.Title, 30)),
				"note_view_"+note.ID,
			),
		))
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "📋 Заметки:\n\nВыберите действие:")
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(reply)
}

// handleViewCommand обрабатывает /view <id>
func (b *Bot) handleViewCommand(ctx context.Context, msg *tgbotapi.Message) {
	noteID := strings.TrimSpace(msg.CommandArguments())
	if noteID == "" {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Использование: /view <id>"))
		return
	}

	note, err := b.service.Resolve(ctx, noteID)
	if err != nil || note.OwnerID != msg.From.ID {
		// Чужие заметки через /view не показываем и не подтверждаем
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Заметка не найдена."))
		return
	}

	b.sendNote(msg.Chat.ID, note)
}

// sendNote отправляет заметку: первое фото с текстом-подписью,
// остальные фото отдельно, затем QR-код заметки
func (b *Bot) sendNote(chatID int64, note *models.Note) {
	text := fmt.Sprintf("📝 <b>%s</b>\n\n", html.EscapeString(note.Title))
	if note.Text != "" {
		text += html.EscapeString(note.Text) + "\n\n"
	}
	text += fmt.Sprintf("🆔 ID: <code>%s</code>", note.ID)

	if len(note.Photos) > 0 {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(note.Photos[0]))
		photo.Caption = text
		photo.ParseMode = tgbotapi.ModeHTML
		b.send(photo)

		for _, path := range note.Photos[1:] {
			b.send(tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path)))
		}
	} else {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		b.send(msg)
	}

	b.sendNoteQR(chatID, note.ID, "📱 QR-код заметки")
}

// sendNoteSummary отправляет краткую сводку заметки и до трех ее фото
func (b *Bot) sendNoteSummary(chatID int64, note *models.Note) {
	text := fmt.Sprintf("📝 %s\n\n", note.Title)
	if note.Text != "" {
		text += note.Text
	}
	if len(note.Photos) > 0 {
		text += fmt.Sprintf("\n\n📷 Фото: %d шт.", len(note.Photos))
	}
	text += fmt.Sprintf("\n\n🕐 Создано: %s", note.Created.Format("2006-01-02 15:04"))

	b.send(tgbotapi.NewMessage(chatID, text))

	for i, path := range note.Photos {
		if i >= 3 {
			break
		}
		b.send(tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path)))
	}
}

// sendNoteQR отправляет QR-код заметки с подписью
func (b *Bot) sendNoteQR(chatID int64, noteID, caption string) {
	png, err := qr.Generate(qr.NotePayload(noteID))
	if err != nil {
		b.logger.Error("failed to generate note qr", "note_id", noteID, "error", err)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "qr.png", Bytes: png})
	photo.Caption = caption
	b.send(photo)
}

// truncateRunes обрезает строку до max символов
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
