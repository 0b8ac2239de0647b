package report

import (
	"fmt"
	"strings"

	"vault-pulse/internal/domain"
)

// The deposit asset of the monitored vault. The vault's own symbol is the
// share token, which is not what depositors think in.
const depositSymbol = "USDS"

const timestampLayout = "2006-01-02 15:04 UTC"

// Render produces the Telegram-Markdown status message. Section order and
// styling markers are a layout contract with the channel; history sections
// appear only when the cycle computed look-back aggregates, the market
// section only when the provider resolved the market.
func Render(status *domain.VaultStatus) string {
	parts := []string{
		"*Morpho Vault Monitor*",
		"",
		fmt.Sprintf("*%s*", status.Vault.Name),
		"",
		fmt.Sprintf("*Total Deposits:* %s %s", FormatAmount(status.Vault.TotalAssets), depositSymbol),
	}

	for _, w := range status.History {
		parts = append(parts, depositChangeLine(w))
	}

	parts = append(parts,
		"",
		"*APY Breakdown:*",
		fmt.Sprintf("  Native APY: %s", FormatPct(status.Vault.NativeAPY)),
		fmt.Sprintf("  Rewards APY: %s", FormatPct(status.Vault.RewardsAPY())),
		fmt.Sprintf("  *Total APY: %s*", FormatPct(status.Vault.NetAPY)),
	)

	if len(status.History) > 0 {
		parts = append(parts, "", "*Avg Total APY:*")
		for _, w := range status.History {
			parts = append(parts, averageLine(w.Label, w.AvgNetAPY))
		}
	}

	if status.Market != nil {
		m := status.Market
		parts = append(parts,
			"",
			fmt.Sprintf("*%s Market:*", marketPair(m)),
			fmt.Sprintf("  Utilization: %s", FormatPct(m.Utilization)),
			fmt.Sprintf("  Liquidity: %s %s", FormatAmount(m.LiquidityAssets), depositSymbol),
			fmt.Sprintf("  Borrow Rate: %s", FormatPct(m.AvgBorrowAPY)),
		)

		if len(status.History) > 0 {
			parts = append(parts, "", "*Avg Borrow Rate:*")
			for _, w := range status.History {
				parts = append(parts, averageLine(w.Label, w.AvgBorrowAPY))
			}
		}
	}

	parts = append(parts,
		"",
		fmt.Sprintf("_%s_", status.FetchedAt.UTC().Format(timestampLayout)),
	)

	return strings.Join(parts, "\n")
}

func depositChangeLine(w domain.WindowStats) string {
	if w.DepositDelta == nil {
		return fmt.Sprintf("  %s: %s", w.Label, NA)
	}
	return fmt.Sprintf("  %s: %s %s (%s)",
		w.Label,
		FormatSignedInt(w.DepositDelta.Abs),
		depositSymbol,
		FormatSignedPct(w.DepositDelta.Rel))
}

func averageLine(label string, avg *float64) string {
	if avg == nil {
		return fmt.Sprintf("  %s: %s", label, NA)
	}
	return fmt.Sprintf("  %s: %s", label, FormatPct(*avg))
}

func marketPair(m *domain.MarketSnapshot) string {
	collateral := m.CollateralSymbol
	loan := m.LoanSymbol
	if collateral == "" {
		collateral = "stUSDS"
	}
	if loan == "" {
		loan = depositSymbol
	}
	return collateral + "/" + loan
}
