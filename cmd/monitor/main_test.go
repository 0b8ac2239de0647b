package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"vault-pulse/internal/bot"
	"vault-pulse/internal/config"
	"vault-pulse/internal/job"
	"vault-pulse/internal/provider"
	"vault-pulse/internal/service"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestMainBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	restore := stubMonitorDeps(&config.Config{
		TelegramBotToken: "token",
		TelegramChatID:   "@channel",
		MonitoringSecs:   1,
	})
	defer restore()

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}
}

func TestMainFailsFastOnMissingConfig(t *testing.T) {
	restore := stubMonitorDeps(&config.Config{})
	defer restore()

	var fatalMsg string
	fatalFunc = func(format string, v ...interface{}) {
		fatalMsg = fmt.Sprintf(format, v...)
		panic("fatal")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected main to abort on missing configuration")
		}
		if !strings.Contains(fatalMsg, "TELEGRAM_BOT_TOKEN") {
			t.Fatalf("fatal message should name the missing variable: %s", fatalMsg)
		}
	}()
	main()
}

func stubMonitorDeps(cfg *config.Config) func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origFatal := fatalFunc
	origInitRedis := initRedisFunc
	origInitTracer := initTracerFunc
	origNewProvider := newProviderFunc
	origNewNotifier := newNotifierFunc
	origNewJob := newMonitorJobFunc
	origStartJob := startJobFunc
	origNewRouter := newRouterFunc
	origSetupSignal := setupSignalNotify
	origWait := waitForSignalFunc
	origStartHTTP := startHTTPServerFunc
	origShutdownHTTP := shutdownHTTPServerFunc

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config { return cfg }
	initRedisFunc = func(context.Context) {}
	initTracerFunc = func(ctx context.Context) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	newProviderFunc = func(trace.Tracer, *config.Config) service.StatusProvider {
		return stubStatusProvider{}
	}
	newNotifierFunc = func(token, chatID string) (notifierClient, error) {
		return stubNotifier{}, nil
	}
	startJobFunc = func(*job.MonitorJob, context.Context) {}
	newRouterFunc = func(...gin.OptionFunc) *gin.Engine { return gin.New() }
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	waitForSignalFunc = func(<-chan os.Signal) {}
	startHTTPServerFunc = func(*http.Server) error { return http.ErrServerClosed }
	shutdownHTTPServerFunc = func(*http.Server, context.Context) error { return nil }

	return func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		fatalFunc = origFatal
		initRedisFunc = origInitRedis
		initTracerFunc = origInitTracer
		newProviderFunc = origNewProvider
		newNotifierFunc = origNewNotifier
		newMonitorJobFunc = origNewJob
		startJobFunc = origStartJob
		newRouterFunc = origNewRouter
		setupSignalNotify = origSetupSignal
		waitForSignalFunc = origWait
		startHTTPServerFunc = origStartHTTP
		shutdownHTTPServerFunc = origShutdownHTTP
	}
}

type stubStatusProvider struct{}

func (stubStatusProvider) FetchStatus(ctx context.Context, includeHistory bool) (*provider.StatusData, error) {
	return &provider.StatusData{Vault: &provider.VaultData{Name: "v", TotalAssets: "0"}}, nil
}

func (stubStatusProvider) VaultAddress() string { return "0xvault" }

type stubNotifier struct{}

func (stubNotifier) Send(text string) error { return nil }

func (stubNotifier) StartCommands(reporter bot.Reporter, includeHistory bool) {}

func (stubNotifier) Stop() {}
