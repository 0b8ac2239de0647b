package metrics

import (
	"fmt"
	"time"

	"vault-pulse/internal/domain"
	"vault-pulse/internal/provider"
)

// Extract converts a raw query response into the domain model. A missing
// vault object is terminal; a missing market only drops the market section.
func Extract(data *provider.StatusData, vaultAddress string) (*domain.VaultStatus, error) {
	if data == nil || data.Vault == nil {
		return nil, &domain.MissingVaultDataError{Address: vaultAddress}
	}

	v := data.Vault
	totalAssets, err := ParseTokenAmount(string(v.TotalAssets))
	if err != nil {
		return nil, fmt.Errorf("vault totalAssets: %w", err)
	}

	status := &domain.VaultStatus{
		Vault: domain.VaultSnapshot{
			Address:        v.Address,
			Name:           v.Name,
			Symbol:         v.Symbol,
			TotalAssets:    totalAssets,
			TotalAssetsUSD: float64(v.TotalAssetsUsd),
			NativeAPY:      float64(v.AvgApy),
			NetAPY:         float64(v.AvgNetApy),
			Rewards:        extractRewards(v.Rewards),
		},
		FetchedAt: time.Now().UTC(),
	}

	if data.Market != nil && data.Market.State != nil {
		market, err := extractMarket(data.Market)
		if err != nil {
			return nil, err
		}
		status.Market = market
	}

	if v.HistoricalState != nil {
		status.History = extractHistory(status, v.HistoricalState, marketHistory(data.Market))
	}

	return status, nil
}

func extractRewards(rewards []provider.RewardData) []domain.RewardEntry {
	out := make([]domain.RewardEntry, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, domain.RewardEntry{
			SupplyAPR:   float64(r.SupplyApr),
			AssetSymbol: r.Asset.Symbol,
		})
	}
	return out
}

func extractMarket(m *provider.MarketData) (*domain.MarketSnapshot, error) {
	liquidity, err := ParseTokenAmount(string(m.State.LiquidityAssets))
	if err != nil {
		return nil, fmt.Errorf("market liquidityAssets: %w", err)
	}

	snapshot := &domain.MarketSnapshot{
		Utilization:       float64(m.State.Utilization),
		TotalLiquidityUSD: float64(m.State.TotalLiquidityUsd),
		LiquidityAssets:   liquidity,
		AvgBorrowAPY:      float64(m.State.AvgBorrowApy),
	}
	if m.LoanAsset != nil {
		snapshot.LoanSymbol = m.LoanAsset.Symbol
	}
	if m.CollateralAsset != nil {
		snapshot.CollateralSymbol = m.CollateralAsset.Symbol
	}
	return snapshot, nil
}

func marketHistory(m *provider.MarketData) *provider.MarketHistory {
	if m == nil {
		return nil
	}
	return m.HistoricalState
}

func extractHistory(status *domain.VaultStatus, vh *provider.VaultHistory, mh *provider.MarketHistory) []domain.WindowStats {
	currentDeposits := status.Vault.TotalAssets.InexactFloat64()

	windows := []struct {
		label     string
		deposits  []provider.SeriesPoint
		netApy    []provider.SeriesPoint
		borrowApy []provider.SeriesPoint
	}{
		{"1h", vh.TotalAssets1h, vh.NetApy1h, nil},
		{"12h", vh.TotalAssets12h, vh.NetApy12h, nil},
		{"24h", vh.TotalAssets24h, vh.NetApy24h, nil},
	}
	if mh != nil {
		windows[0].borrowApy = mh.BorrowApy1h
		windows[1].borrowApy = mh.BorrowApy12h
		windows[2].borrowApy = mh.BorrowApy24h
	}

	stats := make([]domain.WindowStats, 0, len(windows))
	for _, w := range windows {
		ws := domain.WindowStats{Label: w.label}
		ws.DepositDelta = Delta(currentDeposits, seriesToPoints(w.deposits, true))
		ws.AvgNetAPY = Average(seriesToPoints(w.netApy, false))
		if w.borrowApy != nil {
			ws.AvgBorrowAPY = Average(seriesToPoints(w.borrowApy, false))
		}
		stats = append(stats, ws)
	}
	return stats
}
