package bot

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikawo846/qrnotes/internal/models"
	"github.com/mikawo846/qrnotes/internal/notes"
	"github.com/mikawo846/qrnotes/internal/server/storage"
)

const botTestUserID int64 = 99

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestBot собирает бота на моках API, сессий и хранилища
func newTestBot(t *testing.T) (*Bot, *TelegramAPIMock, *SessionStoreMock, *storage.NoteStorageMock) {
	t.Helper()

	api := &TelegramAPIMock{
		SendFunc: func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
			return tgbotapi.Message{}, nil
		},
		RequestFunc: func(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
			return &tgbotapi.APIResponse{Ok: true}, nil
		},
	}

	drafts := map[int64]*Draft{}
	sessions := &SessionStoreMock{
		GetFunc: func(userID int64) (*Draft, bool) {
			draft, ok := drafts[userID]
			return draft, ok
		},
		SetFunc: func(userID int64, draft *Draft) {
			drafts[userID] = draft
		},
		DeleteFunc: func(userID int64) {
			delete(drafts, userID)
		},
	}

	saved := map[string]*models.Note{}
	storageMock := &storage.NoteStorageMock{
		CreateNoteFunc: func(ctx context.Context, note *models.Note) error {
			if _, ok := saved[note.ID]; ok {
				return storage.ErrNoteExists
			}
			saved[note.ID] = note
			return nil
		},
		GetNoteByIDFunc: func(ctx context.Context, id string) (*models.Note, error) {
			if note, ok := saved[id]; ok {
				return note, nil
			}
			return nil, storage.ErrNoteNotFound
		},
		ListNotesByOwnerFunc: func(ctx context.Context, ownerID int64, limit int) ([]*models.Note, error) {
			return nil, nil
		},
		CountNotesFunc: func(ctx context.Context) (int64, error) {
			return int64(len(saved)), nil
		},
	}

	relayMock := &notes.RelayQueueMock{
		EnqueueFunc: func(text string, photoPaths []string) {},
	}

	service := notes.NewService(storageMock, relayMock, t.TempDir(), setupTestLogger())

	b := &Bot{
		api:           api,
		token:         "test-token",
		service:       service,
		sessions:      sessions,
		logger:        setupTestLogger(),
		allowedUserID: botTestUserID,
		uploadDir:     t.TempDir(),
	}

	return b, api, sessions, storageMock
}

// commandMessage собирает сообщение-команду с entity, как его шлет Telegram
func commandMessage(text string, userID int64) *tgbotapi.Message {
	command, _, _ := strings.Cut(text, " ")
	return &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID},
		Chat:      &tgbotapi.Chat{ID: userID},
		Text:      text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(command)},
		},
	}
}

func callbackQuery(data string, userID int64) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "callback-id",
		From:    &tgbotapi.User{ID: userID},
		Message: &tgbotapi.Message{MessageID: 7, Chat: &tgbotapi.Chat{ID: userID}},
		Data:    data,
	}
}

// Telegram не присылает Message для callback'ов по сообщениям старше
// 48 часов: такое обновление пропускается без обращений к API
func TestHandleCallback_NilMessage(t *testing.T) {
	b, api, sessions, _ := newTestBot(t)

	query := &tgbotapi.CallbackQuery{
		ID:   "stale",
		From: &tgbotapi.User{ID: botTestUserID},
		Data: "note_save",
	}

	assert.NotPanics(t, func() {
		b.handleCallback(context.Background(), query)
	})

	assert.Empty(t, api.RequestCalls())
	assert.Empty(t, api.SendCalls())
	assert.Empty(t, sessions.GetCalls())
}

func TestHandleUpdate_StaleCallbackDoesNotStopBot(t *testing.T) {
	b, _, _, _ := newTestBot(t)

	update := tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "stale",
			From: &tgbotapi.User{ID: botTestUserID},
			Data: "note_new",
		},
	}

	assert.NotPanics(t, func() {
		b.handleUpdate(context.Background(), update)
	})
}

func TestHandleUpdate_RecoversFromHandlerPanic(t *testing.T) {
	b, api, _, _ := newTestBot(t)

	api.SendFunc = func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		panic("send exploded")
	}

	update := tgbotapi.Update{Message: commandMessage("/start", botTestUserID)}

	// Паника обработчика не должна доходить до цикла Run
	assert.NotPanics(t, func() {
		b.handleUpdate(context.Background(), update)
	})
}

func TestHandleCallback_NewDraft(t *testing.T) {
	b, api, sessions, _ := newTestBot(t)

	b.handleCallback(context.Background(), callbackQuery("note_new", botTestUserID))

	// Callback подтвержден
	require.Len(t, api.RequestCalls(), 1)

	// В сессии свежий пустой черновик
	setCalls := sessions.SetCalls()
	require.Len(t, setCalls, 1)
	assert.Equal(t, botTestUserID, setCalls[0].UserID)
	assert.Empty(t, setCalls[0].Draft.Title)
	assert.Empty(t, setCalls[0].Draft.Photos)

	// Сообщение отредактировано в меню черновика
	sendCalls := api.SendCalls()
	require.Len(t, sendCalls, 1)
	edit, ok := sendCalls[0].C.(tgbotapi.EditMessageTextConfig)
	require.True(t, ok, "expected EditMessageTextConfig, got %T", sendCalls[0].C)
	assert.Contains(t, edit.Text, "Создание новой заметки")
}

func TestHandleCallback_SaveRequiresTitle(t *testing.T) {
	b, api, sessions, storageMock := newTestBot(t)

	sessions.Set(botTestUserID, &Draft{Text: "только текст"})

	b.handleCallback(context.Background(), callbackQuery("note_save", botTestUserID))

	// Ничего не сохранено, черновик остается активным
	assert.Empty(t, storageMock.CreateNoteCalls())
	assert.Empty(t, sessions.DeleteCalls())

	// Второй Request - alert с сообщением валидации (первый - ack)
	requestCalls := api.RequestCalls()
	require.Len(t, requestCalls, 2)
	alert, ok := requestCalls[1].C.(tgbotapi.CallbackConfig)
	require.True(t, ok, "expected CallbackConfig, got %T", requestCalls[1].C)
	assert.True(t, alert.ShowAlert)
	assert.Contains(t, alert.Text, "Установите заголовок")
}

func TestHandleCallback_SaveDiscardsDraft(t *testing.T) {
	b, api, sessions, storageMock := newTestBot(t)

	sessions.Set(botTestUserID, &Draft{Title: "Полка А-17", Text: "коробка 42"})

	b.handleCallback(context.Background(), callbackQuery("note_save", botTestUserID))

	// Заметка сохранена на пользователя
	require.Len(t, storageMock.CreateNoteCalls(), 1)
	created := storageMock.CreateNoteCalls()[0].Note
	assert.Equal(t, "Полка А-17", created.Title)
	assert.Equal(t, botTestUserID, created.OwnerID)

	// Черновик одноразовый
	require.Len(t, sessions.DeleteCalls(), 1)
	assert.Equal(t, botTestUserID, sessions.DeleteCalls()[0].UserID)

	// Подтверждение и QR-код заметки
	sendCalls := api.SendCalls()
	require.Len(t, sendCalls, 2)
	edit, ok := sendCalls[0].C.(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Contains(t, edit.Text, "Заметка сохранена")
	_, ok = sendCalls[1].C.(tgbotapi.PhotoConfig)
	assert.True(t, ok, "expected QR photo, got %T", sendCalls[1].C)
}

func TestHandleCallback_CancelDiscardsDraft(t *testing.T) {
	b, _, sessions, storageMock := newTestBot(t)

	sessions.Set(botTestUserID, &Draft{Title: "Черновик"})

	b.handleCallback(context.Background(), callbackQuery("note_cancel", botTestUserID))

	assert.Len(t, sessions.DeleteCalls(), 1)
	assert.Empty(t, storageMock.CreateNoteCalls())
}

func TestHandleMessage_TextRoutedIntoActiveDraft(t *testing.T) {
	b, api, sessions, _ := newTestBot(t)

	sessions.Set(botTestUserID, &Draft{})

	msg := &tgbotapi.Message{
		MessageID: 2,
		From:      &tgbotapi.User{ID: botTestUserID},
		Chat:      &tgbotapi.Chat{ID: botTestUserID},
		Text:      "Мой заголовок",
	}
	b.handleMessage(context.Background(), msg)

	// Первый текст становится заголовком
	draft, ok := sessions.Get(botTestUserID)
	require.True(t, ok)
	assert.Equal(t, "Мой заголовок", draft.Title)

	sendCalls := api.SendCalls()
	require.Len(t, sendCalls, 1)
	reply, ok := sendCalls[0].C.(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Contains(t, reply.Text, "Заголовок установлен")
}

func TestHandleMessage_Unauthorized(t *testing.T) {
	b, api, _, _ := newTestBot(t)
	otherUser := botTestUserID + 1

	// Команда чужого пользователя получает отказ
	b.handleMessage(context.Background(), commandMessage("/note", otherUser))

	sendCalls := api.SendCalls()
	require.Len(t, sendCalls, 1)
	reply, ok := sendCalls[0].C.(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, accessDeniedMessage, reply.Text)

	// Обычный текст игнорируется молча
	b.handleMessage(context.Background(), &tgbotapi.Message{
		MessageID: 3,
		From:      &tgbotapi.User{ID: otherUser},
		Chat:      &tgbotapi.Chat{ID: otherUser},
		Text:      "привет",
	})
	assert.Len(t, api.SendCalls(), 1)
}
