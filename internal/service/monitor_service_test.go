package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"vault-pulse/internal/domain"
	"vault-pulse/internal/provider"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

type stubProvider struct {
	data    *provider.StatusData
	err     error
	calls   int
	history []bool
}

func (s *stubProvider) FetchStatus(ctx context.Context, includeHistory bool) (*provider.StatusData, error) {
	s.calls++
	s.history = append(s.history, includeHistory)
	return s.data, s.err
}

func (s *stubProvider) VaultAddress() string { return "0xvault" }

type stubNotifier struct {
	sent []string
	err  error
}

func (s *stubNotifier) Send(text string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, text)
	return nil
}

// fakeRedis is an in-memory stand-in for the two cache calls the service makes.
type fakeRedis struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string][]byte)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = append([]byte(nil), value.([]byte)...)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.store[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(data), nil)
}

func vaultFixture() *provider.StatusData {
	return &provider.StatusData{
		Vault: &provider.VaultData{
			Address:        "0xvault",
			Name:           "USDS Risk Capital",
			TotalAssets:    "1000000000000000000000",
			TotalAssetsUsd: 1001.5,
			AvgApy:         0.05,
			AvgNetApy:      0.07,
			Rewards: []provider.RewardData{
				{SupplyApr: 0.02, Asset: provider.AssetRef{Symbol: "SKY"}},
			},
		},
	}
}

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

func TestRunCycleSendsReport(t *testing.T) {
	morpho := &stubProvider{data: vaultFixture()}
	notifier := &stubNotifier{}
	svc := NewMonitorService(testTracer(), morpho, notifier, nil, false, 0)

	if err := svc.RunCycle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(notifier.sent))
	}
	if !strings.Contains(notifier.sent[0], "*Total Deposits:* 1,000.00 USDS") {
		t.Fatalf("unexpected message:\n%s", notifier.sent[0])
	}
}

func TestRunCyclePropagatesFetchError(t *testing.T) {
	morpho := &stubProvider{err: &domain.TransportError{StatusCode: 502, Body: "down"}}
	notifier := &stubNotifier{}
	svc := NewMonitorService(testTracer(), morpho, notifier, nil, false, 0)

	err := svc.RunCycle(context.Background())
	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatal("nothing should be sent on a failed fetch")
	}
}

func TestRunCyclePropagatesDeliveryError(t *testing.T) {
	morpho := &stubProvider{data: vaultFixture()}
	notifier := &stubNotifier{err: &domain.DeliveryError{Chat: "@c", Err: errors.New("rate limited")}}
	svc := NewMonitorService(testTracer(), morpho, notifier, nil, false, 0)

	err := svc.RunCycle(context.Background())
	var de *domain.DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
}

func TestRunCyclePropagatesMissingVault(t *testing.T) {
	morpho := &stubProvider{data: &provider.StatusData{}}
	svc := NewMonitorService(testTracer(), morpho, &stubNotifier{}, nil, false, 0)

	err := svc.RunCycle(context.Background())
	var missing *domain.MissingVaultDataError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVaultDataError, got %v", err)
	}
}

func TestGetStatusUsesCache(t *testing.T) {
	morpho := &stubProvider{data: vaultFixture()}
	cache := newFakeRedis()
	svc := NewMonitorService(testTracer(), morpho, &stubNotifier{}, cache, false, time.Minute)

	first, err := svc.GetStatus(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GetStatus(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if morpho.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", morpho.calls)
	}
	if first.Vault.Name != second.Vault.Name {
		t.Fatal("cached status differs")
	}
	if !first.Vault.TotalAssets.Equal(second.Vault.TotalAssets) {
		t.Fatalf("cached amount differs: %s vs %s", first.Vault.TotalAssets, second.Vault.TotalAssets)
	}
}

func TestGetStatusRefetchesWhenHistoryMissing(t *testing.T) {
	morpho := &stubProvider{data: vaultFixture()}
	cache := newFakeRedis()
	svc := NewMonitorService(testTracer(), morpho, &stubNotifier{}, cache, false, time.Minute)

	if _, err := svc.GetStatus(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The cached status has no look-back aggregates, so asking for history
	// must go upstream again.
	if _, err := svc.GetStatus(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if morpho.calls != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", morpho.calls)
	}
	if !morpho.history[1] {
		t.Fatal("second fetch should request history")
	}
}

func TestBuildReport(t *testing.T) {
	morpho := &stubProvider{data: vaultFixture()}
	svc := NewMonitorService(testTracer(), morpho, &stubNotifier{}, nil, false, 0)

	msg, err := svc.BuildReport(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg, "*Morpho Vault Monitor*") {
		t.Fatalf("unexpected report:\n%s", msg)
	}
}
