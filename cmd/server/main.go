package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mikawo846/qrnotes/internal/bot"
	"github.com/mikawo846/qrnotes/internal/config"
	"github.com/mikawo846/qrnotes/internal/notes"
	"github.com/mikawo846/qrnotes/internal/relay"
	"github.com/mikawo846/qrnotes/internal/server"
	"github.com/mikawo846/qrnotes/internal/server/handlers"
	"github.com/mikawo846/qrnotes/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// relayQueueCapacity размер очереди relay-заданий.
// Переполнение означает, что канал уведомлений сильно отстает;
// новые задания в этом случае отбрасываются.
const relayQueueCapacity = 64

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create bot api: %w", err)
	}
	logger.Info("bot authorized", slog.String("username", api.Self.UserName))

	queue := relay.NewQueue(relay.NewTelegramSender(api), cfg.ChannelID, relayQueueCapacity, logger)
	go queue.Run(ctx)

	service := notes.NewService(store, queue, cfg.UploadDir, logger)

	tgBot := bot.New(api, service, bot.NewMemorySessionStore(), cfg.AllowedUserID, cfg.UploadDir, logger)
	go tgBot.Run(ctx)

	noteHandler := handlers.NewNotesHandler(logger, service, cfg.UploadDir, cfg.AllowedUserID, cfg.MaxUploadSize)
	srv := server.New(logger, noteHandler, cfg.Port)

	logger.Info("starting qrnotes server",
		slog.String("version", Version),
		slog.Int("port", cfg.Port),
		slog.String("upload_dir", cfg.UploadDir),
		slog.String("database", cfg.DatabasePath),
	)

	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("QR Warehouse Notes Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
