package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	requestlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"patrolscribe/internal/common"
	"patrolscribe/internal/llm/openai"
	"patrolscribe/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := openai.NewClient(openai.Config{
		APIKey:          cfg.LLM.APIKey,
		BaseURL:         cfg.LLM.BaseURL,
		GenerateModel:   cfg.LLM.GenerateModel,
		EditModel:       cfg.LLM.EditModel,
		TranscribeModel: cfg.LLM.TranscribeModel,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
	}, logger)

	srv := server.New(client, client, client, logger)

	app := fiber.New(fiber.Config{
		AppName:   "patrolscribe",
		BodyLimit: cfg.Server.MaxUploadBytes,
	})
	app.Use(recover.New())
	app.Use(requestlog.New(requestlog.Config{
		TimeFormat: "15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
	}))
	srv.RegisterRoutes(app)

	logger.Info("patrolscribe listening", "addr", cfg.Server.Addr)
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			logger.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
