// Package server собирает HTTP-сервер сервиса заметок:
// маршруты, middleware-цепочку и graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mikawo846/qrnotes/internal/server/handlers"
	"github.com/mikawo846/qrnotes/internal/server/middleware"
)

// Server оборачивает http.Server с настроенными маршрутами
type Server struct {
	logger *slog.Logger
	http   *http.Server
}

// NewRouter регистрирует все маршруты сервиса на новом mux.
// Метод проверяется внутри handler'ов, чтобы ошибки 405
// возвращались в JSON, как и остальные ответы API.
func NewRouter(h *handlers.NotesHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", h.Index) // catch-all: неизвестные пути получают JSON 404
	mux.HandleFunc("/status", h.Status)
	mux.HandleFunc("/create_note", h.CreateNote)
	mux.HandleFunc("/open_qr", h.OpenQR)
	mux.HandleFunc("/qr", h.QRImage)
	mux.HandleFunc("/uploads/", h.Uploads)

	return mux
}

// New создает сервер с middleware-цепочкой: recovery снаружи,
// логирование внутри (пропуская частый /status).
func New(logger *slog.Logger, h *handlers.NotesHandler, port int) *Server {
	chain := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/status"})(
			NewRouter(h),
		),
	)

	return &Server{
		logger: logger,
		http: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           chain,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Run запускает сервер и блокируется до отмены контекста
// или фатальной ошибки. При отмене выполняется graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", slog.String("addr", s.http.Addr))
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.logger.Info("shutting down http server")
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
