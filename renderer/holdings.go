package renderer

import (
	"github.com/etnz/fundbook"
)

// Holdings renders the holdings ledger as a markdown table with a totals row.
func Holdings(holdings []fundbook.Holding, stats fundbook.HoldingStats) string {
	b := newBuilder()
	b.Printf("# Holdings (%s)\n\n", fundbook.Currency)

	if len(holdings) == 0 {
		b.Printf("No holdings tracked.\n")
		return b.String()
	}

	b.Printf("| ID | Fund | Shares | Cost Price | Current Value | Cost | Market Value | Profit | Rate |\n")
	b.Printf("|---:|:---|---:|---:|---:|---:|---:|---:|---:|\n")
	for _, h := range holdings {
		b.Printf("| %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			h.ID,
			fundDisplay(h.FundName, h.FundCode),
			h.Shares.Fixed(2),
			h.CostPrice.Fixed(4),
			h.CurrentValue.Fixed(4),
			h.CostAmount.Fixed(2),
			h.MarketValue.Fixed(2),
			h.Profit.SignedString(),
			h.ProfitRate.SignedString(),
		)
	}
	b.Printf("| | **Total** | | | | %s | %s | %s | %s |\n",
		stats.TotalCost.Fixed(2),
		stats.TotalMarketValue.Fixed(2),
		stats.TotalProfit.SignedString(),
		stats.TotalProfit.Rate(stats.TotalCost).SignedString(),
	)
	return b.String()
}
