package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"vault-pulse/internal/domain"
	"vault-pulse/internal/metrics"
	"vault-pulse/internal/provider"
	"vault-pulse/internal/report"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const statusCacheKey = "vaultpulse:status"

// StatusProvider fetches the raw vault/market state.
type StatusProvider interface {
	FetchStatus(ctx context.Context, includeHistory bool) (*provider.StatusData, error)
	VaultAddress() string
}

// Notifier delivers a rendered report to the destination chat.
type Notifier interface {
	Send(text string) error
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// MonitorService runs the fetch → extract → render → deliver pipeline and
// keeps the latest extracted status in a TTL cache for the HTTP API.
type MonitorService struct {
	tracer         trace.Tracer
	provider       StatusProvider
	notifier       Notifier
	redis          RedisClient
	includeHistory bool
	cacheTTL       time.Duration
}

func NewMonitorService(
	tracer trace.Tracer,
	statusProvider StatusProvider,
	notifier Notifier,
	redisClient RedisClient,
	includeHistory bool,
	cacheTTL time.Duration,
) *MonitorService {
	if cacheTTL <= 0 {
		cacheTTL = 90 * time.Second
	}
	return &MonitorService{
		tracer:         tracer,
		provider:       statusProvider,
		notifier:       notifier,
		redis:          redisClient,
		includeHistory: includeHistory,
		cacheTTL:       cacheTTL,
	}
}

// RunCycle performs one full monitoring cycle. Every failure is returned to
// the caller; the scheduler logs and moves on, the single-shot binary exits.
func (s *MonitorService) RunCycle(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "monitor-service.run-cycle")
	defer span.End()

	status, err := s.RefreshStatus(ctx, s.includeHistory)
	if err != nil {
		return err
	}

	message := report.Render(status)
	if err := s.notifier.Send(message); err != nil {
		return err
	}

	log.Printf("Update sent: $%s", report.FormatNumber(status.Vault.TotalAssetsUSD))
	return nil
}

// RefreshStatus fetches and extracts a fresh status and caches it.
func (s *MonitorService) RefreshStatus(ctx context.Context, includeHistory bool) (*domain.VaultStatus, error) {
	ctx, span := s.tracer.Start(ctx, "monitor-service.refresh-status")
	defer span.End()

	data, err := s.provider.FetchStatus(ctx, includeHistory)
	if err != nil {
		return nil, err
	}

	status, err := metrics.Extract(data, s.provider.VaultAddress())
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if err := s.setStatusCache(ctx, status); err != nil {
			log.Printf("redis cache write error: %v", err)
		}
	}
	return status, nil
}

// GetStatus returns the latest cached status, falling back to a live fetch
// when the cache is cold or lacks the requested look-back aggregates.
func (s *MonitorService) GetStatus(ctx context.Context, includeHistory bool) (*domain.VaultStatus, error) {
	ctx, span := s.tracer.Start(ctx, "monitor-service.get-status")
	defer span.End()

	if s.redis != nil {
		cached, err := s.getStatusCache(ctx)
		if err != nil {
			log.Printf("redis cache read error: %v", err)
		}
		if cached != nil && (!includeHistory || cached.History != nil) {
			return cached, nil
		}
	}

	return s.RefreshStatus(ctx, includeHistory)
}

// BuildReport renders the current status as the Telegram message text.
func (s *MonitorService) BuildReport(ctx context.Context, includeHistory bool) (string, error) {
	status, err := s.GetStatus(ctx, includeHistory)
	if err != nil {
		return "", err
	}
	return report.Render(status), nil
}

func (s *MonitorService) setStatusCache(ctx context.Context, status *domain.VaultStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, statusCacheKey, data, s.cacheTTL).Err()
}

func (s *MonitorService) getStatusCache(ctx context.Context) (*domain.VaultStatus, error) {
	data, err := s.redis.Get(ctx, statusCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var status domain.VaultStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
