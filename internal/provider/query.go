package provider

import (
	"fmt"
	"strings"
	"time"
)

// Window is one look-back span for the historical sub-queries. Alias is the
// identifier suffix used for the GraphQL field aliases, Label is what the
// rendered report shows.
type Window struct {
	Label string
	Alias string
	Start int64
	End   int64
}

// LookbackWindows returns the three spans requested at hourly granularity.
// The "1h" window is requested as a two-hour span on purpose: the provider's
// current hour bucket has no value until the hour closes, so a literal
// one-hour span would leave the 1h delta undefined most of the time.
func LookbackWindows(now time.Time) []Window {
	end := now.Unix()
	return []Window{
		{Label: "1h", Alias: "1h", Start: now.Add(-2 * time.Hour).Unix(), End: end},
		{Label: "12h", Alias: "12h", Start: now.Add(-12 * time.Hour).Unix(), End: end},
		{Label: "24h", Alias: "24h", Start: now.Add(-24 * time.Hour).Unix(), End: end},
	}
}

// BuildStatusQuery constructs the combined vault + market document.
// Inputs are fixed operator-supplied constants, so plain interpolation is fine.
func BuildStatusQuery(vault, market string) string {
	return fmt.Sprintf(`
query GetVaultStatus {
    vault: vaultV2ByAddress(address: "%s", chainId: 1) {
        address
        name
        symbol
        totalAssets
        totalAssetsUsd
        avgApy
        avgNetApy
        rewards {
            supplyApr
            asset { symbol }
        }
    }
    market: marketByUniqueKey(uniqueKey: "%s", chainId: 1) {
        loanAsset { symbol }
        collateralAsset { symbol }
        state {
            utilization
            totalLiquidityUsd
            liquidityAssets
            avgBorrowApy
        }
    }
}`, vault, market)
}

// BuildHistoricalQuery extends the status document with hourly time series
// for each window: vault deposits and net APY, plus the market borrow APY.
func BuildHistoricalQuery(vault, market string, windows []Window) string {
	var vaultSeries, marketSeries strings.Builder
	for _, w := range windows {
		vaultSeries.WriteString(seriesField("totalAssets", w))
		vaultSeries.WriteString(seriesField("netApy", w))
		marketSeries.WriteString(seriesField("borrowApy", w))
	}

	return fmt.Sprintf(`
query GetVaultHistory {
    vault: vaultV2ByAddress(address: "%s", chainId: 1) {
        address
        name
        symbol
        totalAssets
        totalAssetsUsd
        avgApy
        avgNetApy
        rewards {
            supplyApr
            asset { symbol }
        }
        historicalState {
%s        }
    }
    market: marketByUniqueKey(uniqueKey: "%s", chainId: 1) {
        loanAsset { symbol }
        collateralAsset { symbol }
        state {
            utilization
            totalLiquidityUsd
            liquidityAssets
            avgBorrowApy
        }
        historicalState {
%s        }
    }
}`, vault, vaultSeries.String(), market, marketSeries.String())
}

func seriesField(field string, w Window) string {
	return fmt.Sprintf(
		"            %s%s: %s(options: {startTimestamp: %d, endTimestamp: %d, interval: HOUR}) { x y }\n",
		field, w.Alias, field, w.Start, w.End)
}
