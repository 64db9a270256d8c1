// Package handlers реализует HTTP-интерфейс сервиса заметок:
// веб-форма создания, разрешение QR-payload, генерация QR-изображений
// и раздача загруженных файлов.
package handlers

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mikawo846/qrnotes/internal/media"
	"github.com/mikawo846/qrnotes/internal/notes"
	"github.com/mikawo846/qrnotes/internal/qr"
	"github.com/mikawo846/qrnotes/internal/server/storage"
)

//go:embed index.html
var indexHTML []byte

// serviceName отдается в /status как человекочитаемое имя сервиса
const serviceName = "QR Warehouse Notes"

// NotesHandler обрабатывает все HTTP-запросы сервиса заметок
type NotesHandler struct {
	logger    *slog.Logger
	service   *notes.Service
	uploadDir string
	ownerID   int64
	maxUpload int64
}

// NewNotesHandler создает новый handler для заметок.
// ownerID - идентификатор единственного оператора: заметки,
// созданные через веб, записываются на него.
func NewNotesHandler(logger *slog.Logger, service *notes.Service, uploadDir string, ownerID, maxUpload int64) *NotesHandler {
	return &NotesHandler{
		logger:    logger,
		service:   service,
		uploadDir: uploadDir,
		ownerID:   ownerID,
		maxUpload: maxUpload,
	}
}

// StatusResponse представляет успешный ответ GET /status
type StatusResponse struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	NotesCount int64  `json:"notes_count"`
	Timestamp  string `json:"timestamp"`
}

// CreateNoteResponse представляет успешный ответ POST /create_note
type CreateNoteResponse struct {
	Message string `json:"message"`
	NoteID  string `json:"note_id"`
	QRURL   string `json:"qr_url"`
}

// OpenQRRequest представляет тело POST /open_qr
type OpenQRRequest struct {
	Data string `json:"data"`
}

// Index обрабатывает GET /
// Отдает встроенную HTML-страницу с формой создания заметки
func (h *NotesHandler) Index(w http.ResponseWriter, r *http.Request) {
	// "/" - catch-all паттерн, сюда попадают и неизвестные пути
	if r.URL.Path != "/" {
		h.sendHTTPError(w, http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		h.sendHTTPError(w, http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(indexHTML); err != nil {
		h.logger.Error("failed to write index page", slog.Any("error", err))
	}
}

// Status обрабатывает GET /status
// Возвращает состояние сервиса и количество заметок
func (h *NotesHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendHTTPError(w, http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	count, err := h.service.Count(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count notes", slog.Any("error", err))
		h.sendJSON(w, map[string]string{
			"status": "error",
			"error":  err.Error(),
		}, http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, StatusResponse{
		Status:     "ok",
		Service:    serviceName,
		NotesCount: count,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// CreateNote обрабатывает POST /create_note
// Принимает multipart-форму: text и до 5 файлов photos
func (h *NotesHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendHTTPError(w, http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	// Ограничиваем размер тела до maxUpload
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.sendError(w, "Размер загрузки превышает допустимый", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.WarnContext(ctx, "failed to parse multipart form", slog.Any("error", err))
		h.sendError(w, "Некорректная форма", http.StatusBadRequest)
		return
	}

	text := r.FormValue("text")

	var photos []media.Source
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["photos"] {
			if fh.Filename == "" {
				continue
			}
			src, err := readUpload(fh)
			if err != nil {
				h.logger.ErrorContext(ctx, "failed to read uploaded photo",
					slog.String("filename", fh.Filename), slog.Any("error", err))
				continue
			}
			photos = append(photos, src)
		}
	}

	note, err := h.service.CreateFromWeb(ctx, text, photos, h.ownerID)
	if err != nil {
		var validationErr *notes.ValidationError
		if errors.As(err, &validationErr) {
			h.sendError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create note", slog.Any("error", err))
		h.sendError(w, "Ошибка при создании заметки", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note created via web",
		slog.String("note_id", note.ID),
		slog.Int("photos", len(note.Photos)))

	query := url.Values{}
	query.Set("data", qr.NotePayload(note.ID))

	h.sendJSON(w, CreateNoteResponse{
		Message: "Заметка создана успешно",
		NoteID:  note.ID,
		QRURL:   "/qr?" + query.Encode(),
	}, http.StatusOK)
}

// OpenQR обрабатывает POST /open_qr
// Разрешает отсканированный payload в заметку
func (h *NotesHandler) OpenQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendHTTPError(w, http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	var req OpenQRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Data == "" {
		h.sendError(w, "No data provided", http.StatusBadRequest)
		return
	}

	note, err := h.service.Resolve(ctx, req.Data)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			h.sendError(w, "Note not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to resolve note", slog.Any("error", err))
		h.sendError(w, "Ошибка при открытии заметки", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, note, http.StatusOK)
}

// QRImage обрабатывает GET /qr?data=<payload>
// Генерирует PNG с QR-кодом для произвольного payload
func (h *NotesHandler) QRImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendHTTPError(w, http.StatusMethodNotAllowed)
		return
	}

	data := r.URL.Query().Get("data")
	if data == "" {
		h.sendError(w, `Parameter "data" is required`, http.StatusBadRequest)
		return
	}

	png, err := qr.Generate(data)
	if err != nil {
		h.logger.Error("failed to generate qr code", slog.Any("error", err))
		h.sendError(w, "Ошибка генерации QR-кода", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Error("failed to write qr image", slog.Any("error", err))
	}
}

// Uploads обрабатывает GET /uploads/<filename>
// Раздает файлы из каталога загрузок. Берется только базовое имя,
// выход за пределы каталога невозможен.
func (h *NotesHandler) Uploads(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendHTTPError(w, http.StatusMethodNotAllowed)
		return
	}

	name := filepath.Base(r.URL.Path)
	if name == "." || name == "/" || name == "uploads" {
		h.sendHTTPError(w, http.StatusNotFound)
		return
	}

	path := filepath.Join(h.uploadDir, name)
	if _, err := os.Stat(path); err != nil {
		h.sendHTTPError(w, http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, path)
}

// NotFound отдает JSON 404 для неизвестных путей
func (h *NotesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.sendHTTPError(w, http.StatusNotFound)
}

// readUpload вычитывает загруженный файл целиком в память.
// Размер уже ограничен MaxBytesReader на уровне запроса.
func readUpload(fh *multipart.FileHeader) (media.Source, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	return media.UploadedBytes(data), nil
}

// sendJSON отправляет JSON ответ
func (h *NotesHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *NotesHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, map[string]string{"error": message}, statusCode)
}

// sendHTTPError отправляет JSON для протокольных ошибок (404/405)
func (h *NotesHandler) sendHTTPError(w http.ResponseWriter, statusCode int) {
	h.sendJSON(w, map[string]interface{}{
		"error":       http.StatusText(statusCode),
		"status_code": statusCode,
	}, statusCode)
}
