// Command sendupdate performs exactly one monitoring cycle and exits.
// Any failure terminates with a non-zero status so an external scheduler
// (GitHub Actions, cron) can detect and retry the whole invocation.
package main

import (
	"context"
	"flag"
	"log"

	"vault-pulse/internal/bot"
	"vault-pulse/internal/config"
	"vault-pulse/internal/provider"
	"vault-pulse/internal/service"
	"vault-pulse/pkg/tracing"

	"github.com/joho/godotenv"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initTracerFunc = tracing.InitTracer
	fatalFunc      = log.Fatalf
)

func main() {
	includeHistory := flag.Bool("history", false, "include look-back aggregates in the report")
	flag.Parse()

	loadEnvFunc()

	cfg := loadConfigFunc()
	if err := cfg.Validate(); err != nil {
		fatalFunc("invalid configuration: %v", err)
	}

	ctx := context.Background()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		fatalFunc("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	morpho := provider.NewMorphoProvider(tracer, cfg.MorphoAPIURL, cfg.VaultAddress, cfg.MarketID)

	notifier, err := bot.NewNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		fatalFunc("failed to create Telegram bot: %v", err)
	}

	monitorService := service.NewMonitorService(tracer, morpho, notifier, nil, *includeHistory, 0)

	if err := monitorService.RunCycle(ctx); err != nil {
		fatalFunc("update failed: %v", err)
	}
}
