package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-task-manager/config"
	_ "smart-task-manager/docs" // Swagger docs
	"smart-task-manager/internal/httpserver"
	"smart-task-manager/internal/middleware"
	taskHTTP "smart-task-manager/internal/task/delivery/http"
	tgDelivery "smart-task-manager/internal/task/delivery/telegram"
	boltRepo "smart-task-manager/internal/task/repository/bolt"
	"smart-task-manager/internal/task/usecase"
	"smart-task-manager/pkg/log"
	"smart-task-manager/pkg/parser"
	"smart-task-manager/pkg/telegram"
)

// @title       Smart Task Manager API
// @description Natural language task manager: describe a task in plain English and get category, priority, due date and recurrence extracted deterministically.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser timezone
	location, err := time.LoadLocation(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		location = time.UTC
	}

	// 4. Storage
	taskRepo, err := boltRepo.New(logger, cfg.Storage.Path, cfg.Storage.Bucket)
	if err != nil {
		logger.Errorf(ctx, "Failed to open task store: %v", err)
		return
	}
	defer taskRepo.Close()
	logger.Infof(ctx, "Task store opened at %s", cfg.Storage.Path)

	// 5. Task domain
	taskUC := usecase.New(logger, taskRepo, parser.New(), location)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 6. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUC, telegramBot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram delivery skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit.PerMin),
		TaskHandler:     taskHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
