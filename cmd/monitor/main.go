package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vault-pulse/internal/bot"
	"vault-pulse/internal/cache"
	"vault-pulse/internal/config"
	"vault-pulse/internal/handler"
	"vault-pulse/internal/job"
	"vault-pulse/internal/provider"
	"vault-pulse/internal/service"
	"vault-pulse/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "vault-pulse/docs"
)

// notifierClient is what main needs from the Telegram layer.
type notifierClient interface {
	Send(text string) error
	StartCommands(reporter bot.Reporter, includeHistory bool)
	Stop()
}

var (
	loadEnvFunc     = godotenv.Load
	loadConfigFunc  = config.Load
	fatalFunc       = log.Fatalf
	initRedisFunc   = cache.InitRedis
	initTracerFunc  = tracing.InitTracer
	newProviderFunc = func(tracer trace.Tracer, cfg *config.Config) service.StatusProvider {
		return provider.NewMorphoProvider(tracer, cfg.MorphoAPIURL, cfg.VaultAddress, cfg.MarketID)
	}
	newNotifierFunc = func(token, chatID string) (notifierClient, error) {
		return bot.NewNotifier(token, chatID)
	}
	newMonitorServiceFunc  = service.NewMonitorService
	newMonitorJobFunc      = job.NewMonitorJob
	startJobFunc           = func(j *job.MonitorJob, ctx context.Context) { go j.Start(ctx) }
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Vault Pulse API
// @version         1.0
// @description     Morpho vault monitoring service with a Telegram delivery channel.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()
	if err := cfg.Validate(); err != nil {
		fatalFunc("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	morpho := newProviderFunc(tracer, cfg)

	notifier, err := newNotifierFunc(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	var statusCache service.RedisClient
	if cache.Client != nil {
		statusCache = cache.Client
	}

	cacheTTL := 3 * time.Duration(cfg.MonitoringSecs) * time.Second / 2
	monitorService := newMonitorServiceFunc(tracer, morpho, notifier, statusCache, cfg.ReportHistory, cacheTTL)

	log.Printf("Starting vault monitor (vault=%s interval=%ds history=%t)",
		morpho.VaultAddress(), cfg.MonitoringSecs, cfg.ReportHistory)

	monitorJob := newMonitorJobFunc(tracer, monitorService, cfg.MonitoringSecs)
	startJobFunc(monitorJob, ctx)

	notifier.StartCommands(monitorService, cfg.ReportHistory)

	h := newHandlerFunc(tracer, monitorService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("vault-pulse"))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down...")

	cancel()
	notifier.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Monitor exiting")
}
