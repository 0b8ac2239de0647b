package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vault-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const (
	morphoBaseURL = "https://blue-api.morpho.org/graphql"

	// sky.money USDS Risk Capital vault and the stUSDS/USDS market on mainnet.
	DefaultVaultAddress = "0xf42bca228D9bd3e2F8EE65Fec3d21De1063882d4"
	DefaultMarketID     = "0x77e624dd9dd980810c2b804249e88f3598d9c7ec91f16aa5fbf6e3fdf6087f82"
)

// MorphoProvider fetches vault and market state from the Morpho GraphQL API.
type MorphoProvider struct {
	client  *http.Client
	baseURL string
	vault   string
	market  string
	tracer  trace.Tracer
	limiter *RateLimiter
	now     func() time.Time
}

// NewMorphoProvider creates a provider for one vault/market pair. Empty
// arguments fall back to the monitored sky.money deployment. The public API
// needs no key; a small token bucket keeps the scheduler and the HTTP API
// from stacking requests on it.
func NewMorphoProvider(tracer trace.Tracer, baseURL, vault, market string) *MorphoProvider {
	if baseURL == "" {
		baseURL = morphoBaseURL
	}
	if vault == "" {
		vault = DefaultVaultAddress
	}
	if market == "" {
		market = DefaultMarketID
	}
	return &MorphoProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		vault:   vault,
		market:  market,
		tracer:  tracer,
		limiter: NewRateLimiter(10, 3*time.Second),
		now:     time.Now,
	}
}

// VaultAddress returns the monitored vault address.
func (p *MorphoProvider) VaultAddress() string { return p.vault }

// FetchStatus runs the combined query, optionally extended with the hourly
// look-back series, and returns the raw data object. A top-level GraphQL
// errors array fails the call before any data is surfaced.
func (p *MorphoProvider) FetchStatus(ctx context.Context, includeHistory bool) (*StatusData, error) {
	_, span := p.tracer.Start(ctx, "morpho.fetch-status")
	defer span.End()

	query := BuildStatusQuery(p.vault, p.market)
	if includeHistory {
		query = BuildHistoricalQuery(p.vault, p.market, LookbackWindows(p.now()))
	}

	body, err := p.doQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data   *StatusData           `json:"data"`
		Errors []domain.GraphQLError `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parse morpho response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return nil, &domain.RemoteQueryError{Errors: envelope.Errors}
	}
	if envelope.Data == nil {
		return nil, &domain.RemoteQueryError{Errors: []domain.GraphQLError{{Message: "response has no data"}}}
	}

	return envelope.Data, nil
}

func (p *MorphoProvider) doQuery(ctx context.Context, query string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post graphql query: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read morpho response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
