package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ad/startlink-bot/internal/bot"
	"github.com/ad/startlink-bot/internal/config"
	"github.com/ad/startlink-bot/internal/locale"
	"github.com/ad/startlink-bot/internal/logger"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(logger.ParseLevel(cfg.LogLevel))
	log.Info("Starting start-link bot", "log_level", cfg.LogLevel, "web_app_url", cfg.WebAppURL)

	localizer, err := locale.NewLocalizer(locale.En)
	if err != nil {
		log.Error("Failed to load message catalog", "error", err)
		os.Exit(1)
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	transportLog := log.With("component", "telegram")

	opts := []tgbot.Option{
		tgbot.WithErrorsHandler(transportLog.ErrorHandler("telegram client error")),
		tgbot.WithDefaultHandler(func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
			// Only /start is handled
		}),
	}

	b, err := tgbot.New(cfg.TelegramToken, opts...)
	if err != nil {
		log.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	log.Info("Telegram bot created")

	handler := bot.NewBotHandler(b, cfg, log.With("component", "start"), localizer)

	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/start", tgbot.MatchTypePrefix, handler.HandleStart)

	log.Info("Command handlers registered")

	// Start bot polling in a goroutine
	go func() {
		log.Info("Starting bot polling")
		b.Start(ctx)
	}()

	log.Info("Bot is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("Bot stopped")
}
