package main

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"telegram-deadline-bot/internal/config"
	"telegram-deadline-bot/internal/handlers"
	"telegram-deadline-bot/internal/scheduler"
	"telegram-deadline-bot/internal/session"
	"telegram-deadline-bot/internal/storage"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_TOKEN etc.

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("load timezone", zap.Error(err), zap.String("timezone", cfg.Timezone))
	}

	var store storage.Storage
	switch cfg.Database.Driver {
	case "postgres":
		store, err = storage.NewPostgres(storage.PostgresConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}, loc)
	default:
		store, err = storage.NewSQLite(cfg.Database.Path, loc)
	}
	if err != nil {
		logger.Fatal("open storage", zap.Error(err))
	}
	defer store.Close()

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logger.Fatal("create bot", zap.Error(err))
	}

	sched, err := scheduler.New(logger)
	if err != nil {
		logger.Fatal("start scheduler", zap.Error(err))
	}
	defer sched.Shutdown()

	h := handlers.New(bot, store, session.NewManager(), sched, loc, logger)
	sched.SetNotifier(h)

	logger.Info("bot started",
		zap.String("username", bot.Self.UserName),
		zap.String("timezone", cfg.Timezone),
		zap.String("driver", cfg.Database.Driver))

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	for upd := range bot.GetUpdatesChan(updateConfig) {
		h.HandleUpdate(upd)
	}
}
