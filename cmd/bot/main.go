package main

import (
	"context"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"staffbot/internal/auth"
	"staffbot/internal/bot"
	"staffbot/internal/config"
	"staffbot/internal/handlers"
	"staffbot/internal/managers"
	"staffbot/internal/router"
	"staffbot/internal/session"
	"staffbot/internal/tracker"
	"staffbot/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	zapLogger, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}, logger.DefaultServiceName)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	trackerClient := tracker.NewClient(tracker.Config{
		BaseURL: cfg.Tracker.BaseURL,
		OrgID:   cfg.Tracker.OrgID,
		Token:   cfg.Tracker.Token,
		Timeout: time.Duration(cfg.Tracker.RequestTimeout) * time.Second,
	}, zapLogger)

	employees := managers.NewEmployeeManager(trackerClient)
	requests := managers.NewRequestManager(trackerClient)
	shifts := managers.NewShiftManager(trackerClient)

	resolver := auth.NewResolver(cfg.Bot.AdminTelegramID, employees, zapLogger)

	sessions, err := session.NewStore(cfg.Session.Capacity)
	if err != nil {
		zap.L().Fatal("failed to create session store", zap.Error(err))
	}

	routes := router.New(router.Deps{
		Log:       zapLogger,
		Resolver:  resolver,
		Sessions:  sessions,
		Employees: employees,
		Requests:  requests,
		Shifts:    shifts,
		Comments:  trackerClient,
	})

	b, err := bot.New(cfg.Bot.Token, zapLogger)
	if err != nil {
		zap.L().Fatal("failed to create bot", zap.Error(err))
	}

	handler := handlers.New(b, routes, sessions, zapLogger)

	zap.L().Info("bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Bot.UpdateTimeout
	updates := b.API.GetUpdatesChan(u)

	ctx := context.Background()
	for update := range updates {
		if update.Message != nil {
			if update.Message.Chat.IsPrivate() && update.Message.IsCommand() {
				switch update.Message.Command() {
				case "start":
					handler.HandleStart(ctx, update.Message)
				default:
					if _, err := b.SendMessage(update.Message.Chat.ID,
						"Неизвестная команда. Используйте /start.", nil); err != nil {
						zap.L().Warn("send failed", zap.Error(err))
					}
				}
			}
		} else if update.CallbackQuery != nil {
			handler.HandleCallbackQuery(ctx, update.CallbackQuery)
		}
	}
}
