package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	itelegram "homework_notification_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger is configured from this very config, so a load failure
		// goes through the default logrus instance.
		logrus.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Poll interval: %s", cfg.LogLevel, cfg.Environment, cfg.PollInterval)

	// Initialize Telegram Bot. The bot only sends; no poller for incoming
	// updates is attached and bot.Start is never called. NewBot still
	// verifies the token against Telegram, so a bad TELEGRAM_TOKEN fails here.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	log.Info("Telegram bot created successfully.")

	notifier := app.NewTelegramNotifier(itelegram.NewTelebotAdapter(bot), cfg.TelegramChatID, log)

	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout, log)
	log.Info("Practicum API client initialized.")

	poller := app.NewPollerService(apiClient, notifier, log, time.Now().Unix())

	pollScheduler := scheduler.NewPollScheduler(poller, log, cfg.PollInterval)
	if err := pollScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start poll scheduler: %v", err)
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	pollScheduler.Stop()
	log.Info("Application shut down gracefully.")
}
