package provider

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number that some fixtures quote as a string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse float %q: %w", s, err)
	}
	*f = FlexFloat(v)
	return nil
}

// RawAmount carries an 18-decimal fixed-point integer exactly as the API sent
// it. The extractor parses it with big.Int; parsing it as a float here would
// silently lose precision above 2^53.
type RawAmount string

func (a *RawAmount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if s == "null" {
		s = ""
	}
	*a = RawAmount(s)
	return nil
}

// SeriesPoint is one hourly sample; Y is null for buckets the provider has
// not finalized yet.
type SeriesPoint struct {
	X FlexFloat  `json:"x"`
	Y *FlexFloat `json:"y"`
}

// StatusData is the `data` object of the combined query. Either sub-object
// may be null when the provider cannot resolve it.
type StatusData struct {
	Vault  *VaultData  `json:"vault"`
	Market *MarketData `json:"market"`
}

type VaultData struct {
	Address         string        `json:"address"`
	Name            string        `json:"name"`
	Symbol          string        `json:"symbol"`
	TotalAssets     RawAmount     `json:"totalAssets"`
	TotalAssetsUsd  FlexFloat     `json:"totalAssetsUsd"`
	AvgApy          FlexFloat     `json:"avgApy"`
	AvgNetApy       FlexFloat     `json:"avgNetApy"`
	Rewards         []RewardData  `json:"rewards"`
	HistoricalState *VaultHistory `json:"historicalState"`
}

type RewardData struct {
	SupplyApr FlexFloat `json:"supplyApr"`
	Asset     AssetRef  `json:"asset"`
}

type AssetRef struct {
	Symbol string `json:"symbol"`
}

// VaultHistory fields mirror the aliases built by BuildHistoricalQuery.
type VaultHistory struct {
	TotalAssets1h  []SeriesPoint `json:"totalAssets1h"`
	TotalAssets12h []SeriesPoint `json:"totalAssets12h"`
	TotalAssets24h []SeriesPoint `json:"totalAssets24h"`
	NetApy1h       []SeriesPoint `json:"netApy1h"`
	NetApy12h      []SeriesPoint `json:"netApy12h"`
	NetApy24h      []SeriesPoint `json:"netApy24h"`
}

type MarketData struct {
	LoanAsset       *AssetRef      `json:"loanAsset"`
	CollateralAsset *AssetRef      `json:"collateralAsset"`
	State           *MarketState   `json:"state"`
	HistoricalState *MarketHistory `json:"historicalState"`
}

type MarketState struct {
	Utilization       FlexFloat `json:"utilization"`
	TotalLiquidityUsd FlexFloat `json:"totalLiquidityUsd"`
	LiquidityAssets   RawAmount `json:"liquidityAssets"`
	AvgBorrowApy      FlexFloat `json:"avgBorrowApy"`
}

type MarketHistory struct {
	BorrowApy1h  []SeriesPoint `json:"borrowApy1h"`
	BorrowApy12h []SeriesPoint `json:"borrowApy12h"`
	BorrowApy24h []SeriesPoint `json:"borrowApy24h"`
}
