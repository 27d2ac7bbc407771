package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourname/starcheck-bot/internal/bot"
	"github.com/yourname/starcheck-bot/internal/config"
	"github.com/yourname/starcheck-bot/internal/logger"
	"github.com/yourname/starcheck-bot/internal/store"
	"github.com/yourname/starcheck-bot/internal/webhook"
)

func main() {
	logger.Init()
	cfg := config.MustLoad()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatalf("bot init: %v", err)
	}
	botAPI.Debug = false

	username := cfg.BotUsername
	if username == "" {
		username = botAPI.Self.UserName
	}

	wallets := store.NewWallets()
	vouchers := store.NewVouchers(wallets, username)
	admins := store.NewAdmins()
	verifs := store.NewVerifications()
	sessions := store.NewSessions()
	autoGifts := store.NewAutoGifts()

	// первый админ из окружения
	if cfg.AdminID != 0 {
		admins.Grant(cfg.AdminID, "admin")
		logger.Info("admin seeded from env", "id", cfg.AdminID)
	}

	h := bot.NewHandler(botAPI, cfg, username, wallets, vouchers, admins, verifs, sessions, autoGifts)

	// вебхук-сервер верификаций живёт в своей горутине
	srv := webhook.New(cfg, vouchers, admins, verifs)
	go func() {
		logger.Info("webhook server listening", "port", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil {
			logger.Fatalf("webhook server: %v", err)
		}
	}()

	// Graceful shutdown
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)

	logger.Infof("StarCheckBot started as @%s", username)

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutdown")
			return
		case upd := <-updates:
			h.HandleUpdate(ctx, upd)
		}
	}
}
