package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenDecimals is the fixed-point scale of USDS amounts on chain.
const TokenDecimals = 18

// VaultSnapshot is the current state of the monitored vault.
type VaultSnapshot struct {
	Address        string          `json:"address"`
	Name           string          `json:"name"`
	Symbol         string          `json:"symbol,omitempty"`
	TotalAssets    decimal.Decimal `json:"total_assets"`
	TotalAssetsUSD float64         `json:"total_assets_usd"`
	NativeAPY      float64         `json:"native_apy"`
	NetAPY         float64         `json:"net_apy"`
	Rewards        []RewardEntry   `json:"rewards,omitempty"`
}

// RewardEntry is one reward program contributing yield on top of the native APY.
type RewardEntry struct {
	SupplyAPR   float64 `json:"supply_apr"`
	AssetSymbol string  `json:"asset_symbol"`
}

// RewardsAPY is the summed yield contribution of all reward entries.
func (v *VaultSnapshot) RewardsAPY() float64 {
	total := 0.0
	for _, r := range v.Rewards {
		total += r.SupplyAPR
	}
	return total
}

// MarketSnapshot is the current state of the lending market paired with the vault.
type MarketSnapshot struct {
	LoanSymbol        string          `json:"loan_symbol,omitempty"`
	CollateralSymbol  string          `json:"collateral_symbol,omitempty"`
	Utilization       float64         `json:"utilization"`
	TotalLiquidityUSD float64         `json:"total_liquidity_usd"`
	LiquidityAssets   decimal.Decimal `json:"liquidity_assets"`
	AvgBorrowAPY      float64         `json:"avg_borrow_apy"`
}

// TimeSeriesPoint is one hourly sample from the provider's historical state.
// A nil Value means the bucket has not been computed yet (notably the
// still-accumulating current hour) and must be excluded from aggregates.
type TimeSeriesPoint struct {
	Timestamp int64    `json:"x"`
	Value     *float64 `json:"y"`
}

// DeltaResult is the change between a current value and the oldest sample in
// a look-back window. A nil *DeltaResult means the delta is undefined:
// either the window had no usable points or the oldest value was zero.
type DeltaResult struct {
	Abs float64 `json:"abs"`
	Rel float64 `json:"rel"`
}

// WindowStats holds the aggregates computed over one look-back window.
type WindowStats struct {
	Label        string       `json:"label"`
	DepositDelta *DeltaResult `json:"deposit_delta,omitempty"`
	AvgNetAPY    *float64     `json:"avg_net_apy,omitempty"`
	AvgBorrowAPY *float64     `json:"avg_borrow_apy,omitempty"`
}

// VaultStatus is the full result of one monitoring cycle. Market is nil when
// the provider could not resolve the market; History is nil when the cycle
// did not request look-back aggregates.
type VaultStatus struct {
	Vault     VaultSnapshot   `json:"vault"`
	Market    *MarketSnapshot `json:"market,omitempty"`
	History   []WindowStats   `json:"history,omitempty"`
	FetchedAt time.Time       `json:"fetched_at"`
}
