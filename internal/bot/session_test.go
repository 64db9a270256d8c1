package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_AddPhoto(t *testing.T) {
	draft := NewDraft()

	for i := range 5 {
		err := draft.AddPhoto("uploads/photo.jpg")
		require.NoError(t, err, "photo %d", i+1)
	}
	require.Len(t, draft.Photos, 5)

	// Шестое фото отклоняется
	err := draft.AddPhoto("uploads/photo6.jpg")
	assert.ErrorIs(t, err, ErrTooManyPhotos)
	assert.Len(t, draft.Photos, 5)
}

func TestDraft_ApplyText_WaitingTitle(t *testing.T) {
	draft := NewDraft()
	draft.WaitingFor = WaitingTitle

	applied := draft.ApplyText("Мой заголовок")

	assert.Equal(t, AppliedTitle, applied)
	assert.Equal(t, "Мой заголовок", draft.Title)
	assert.Equal(t, WaitingNone, draft.WaitingFor)
}

func TestDraft_ApplyText_WaitingText(t *testing.T) {
	draft := NewDraft()
	draft.Title = "уже есть"
	draft.WaitingFor = WaitingText

	applied := draft.ApplyText("содержимое заметки")

	assert.Equal(t, AppliedText, applied)
	assert.Equal(t, "содержимое заметки", draft.Text)
	assert.Equal(t, WaitingNone, draft.WaitingFor)
}

// Без явного запроса поля первый текст становится заголовком,
// следующий - текстом заметки
func TestDraft_ApplyText_ImplicitOrder(t *testing.T) {
	draft := NewDraft()

	applied := draft.ApplyText("первое сообщение")
	assert.Equal(t, AppliedTitle, applied)
	assert.Equal(t, "первое сообщение", draft.Title)

	applied = draft.ApplyText("второе сообщение")
	assert.Equal(t, AppliedText, applied)
	assert.Equal(t, "второе сообщение", draft.Text)

	// Последующий текст перезаписывает текст, заголовок не трогается
	applied = draft.ApplyText("третье сообщение")
	assert.Equal(t, AppliedText, applied)
	assert.Equal(t, "первое сообщение", draft.Title)
	assert.Equal(t, "третье сообщение", draft.Text)
}

// Запрошенное поле имеет приоритет над неявным порядком
func TestDraft_ApplyText_WaitingOverridesImplicit(t *testing.T) {
	draft := NewDraft()
	draft.WaitingFor = WaitingText

	applied := draft.ApplyText("сразу текст")

	assert.Equal(t, AppliedText, applied)
	assert.Empty(t, draft.Title)
	assert.Equal(t, "сразу текст", draft.Text)
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	const userID int64 = 42

	_, ok := store.Get(userID)
	assert.False(t, ok)

	draft := NewDraft()
	draft.Title = "черновик"
	store.Set(userID, draft)

	got, ok := store.Get(userID)
	require.True(t, ok)
	assert.Equal(t, "черновик", got.Title)

	// Один черновик на пользователя: Set заменяет предыдущий
	store.Set(userID, NewDraft())
	got, ok = store.Get(userID)
	require.True(t, ok)
	assert.Empty(t, got.Title)

	// Черновики других пользователей независимы
	store.Set(userID+1, draft)
	got, ok = store.Get(userID + 1)
	require.True(t, ok)
	assert.Equal(t, "черновик", got.Title)

	store.Delete(userID)
	_, ok = store.Get(userID)
	assert.False(t, ok)

	_, ok = store.Get(userID + 1)
	assert.True(t, ok)

	// Delete несуществующего черновика безопасен
	store.Delete(userID)
}
