package bot

import (
	"errors"
	"sync"
)

// ErrTooManyPhotos indicates that the draft already holds the maximum
// number of photos
var ErrTooManyPhotos = errors.New("draft already has maximum photos")

// maxDraftPhotos лимит фото в черновике
const maxDraftPhotos = 5

// WaitingField какое поле черновика ожидает следующий текст пользователя
type WaitingField string

// Возможные значения WaitingField
const (
	WaitingNone  WaitingField = ""
	WaitingTitle WaitingField = "title"
	WaitingText  WaitingField = "text"
)

// AppliedField какое поле черновика заполнил входящий текст
type AppliedField string

// Возможные значения AppliedField
const (
	AppliedTitle AppliedField = "title"
	AppliedText  AppliedField = "text"
)

// Draft черновик заметки, собираемый через бота.
// Живет только в памяти процесса: сбрасывается при сохранении,
// отмене и рестарте. Это конструктор заметки, а не сама заметка.
type Draft struct {
	Title      string
	Text       string
	Photos     []string
	WaitingFor WaitingField
}

// NewDraft возвращает пустой черновик
func NewDraft() *Draft {
	return &Draft{}
}

// AddPhoto добавляет путь к нормализованному фото.
// Возвращает ErrTooManyPhotos при достижении лимита.
func (d *Draft) AddPhoto(path string) error {
	if len(d.Photos) >= maxDraftPhotos {
		return ErrTooManyPhotos
	}
	d.Photos = append(d.Photos, path)
	return nil
}

// ApplyText применяет входящий текст к черновику.
// Запрошенное поле имеет приоритет, иначе первый текст становится
// заголовком, последующий - текстом заметки.
func (d *Draft) ApplyText(text string) AppliedField {
	switch {
	case d.WaitingFor == WaitingTitle:
		d.Title = text
		d.WaitingFor = WaitingNone
		return AppliedTitle
	case d.WaitingFor == WaitingText:
		d.Text = text
		d.WaitingFor = WaitingNone
		return AppliedText
	case d.Title == "":
		d.Title = text
		return AppliedTitle
	default:
		d.Text = text
		return AppliedText
	}
}

//go:generate moq -out session_mock.go . SessionStore

// SessionStore хранит черновики по идентификатору пользователя.
// Абстракция вместо глобальной map: внедряется в обработчик
// обновлений и подменяется фейком в тестах.
type SessionStore interface {
	// Get returns the draft of the user, if any
	Get(userID int64) (*Draft, bool)

	// Set stores the draft of the user, replacing any previous one
	Set(userID int64, draft *Draft)

	// Delete discards the draft of the user
	Delete(userID int64)
}

// MemorySessionStore процесс-локальная реализация SessionStore.
// Черновики не переживают рестарт, это принятое ограничение.
type MemorySessionStore struct {
	mu     sync.Mutex
	drafts map[int64]*Draft
}

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		drafts: make(map[int64]*Draft),
	}
}

// Get returns the draft of the user, if any
func (s *MemorySessionStore) Get(userID int64) (*Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[userID]
	return draft, ok
}

// Set stores the draft of the user, replacing any previous one
func (s *MemorySessionStore) Set(userID int64, draft *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = draft
}

// Delete discards the draft of the user
func (s *MemorySessionStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}
