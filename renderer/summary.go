package renderer

import (
	"github.com/etnz/fundbook"
)

// Summary renders the combined journal and holdings statistics.
func Summary(txStats fundbook.TransactionStats, holdingStats fundbook.HoldingStats) string {
	b := newBuilder()
	b.Printf("# Summary (%s)\n\n", fundbook.Currency)

	b.Printf("## Transactions\n\n")
	b.Printf("| Metric | Value |\n")
	b.Printf("|:---|---:|\n")
	b.Printf("| Trades | %d |\n", txStats.Count)
	b.Printf("| Buys | %d |\n", txStats.BuyCount)
	b.Printf("| Sells | %d |\n", txStats.SellCount)
	b.Printf("| Realized Profit | %s |\n", txStats.TotalProfit.SignedString())

	b.Printf("\n## Holdings\n\n")
	b.Printf("| Metric | Value |\n")
	b.Printf("|:---|---:|\n")
	b.Printf("| Positions | %d |\n", holdingStats.Count)
	b.Printf("| Total Cost | %s |\n", holdingStats.TotalCost.Fixed(2))
	b.Printf("| Market Value | %s |\n", holdingStats.TotalMarketValue.Fixed(2))
	b.Printf("| Unrealized Profit | %s |\n", holdingStats.TotalProfit.SignedString())
	b.Printf("| Rate | %s |\n", holdingStats.TotalProfit.Rate(holdingStats.TotalCost).SignedString())

	return b.String()
}

// Quote renders one fund lookup answer.
func Quote(q fundbook.FundQuote) string {
	b := newBuilder()
	b.Printf("# %s (%s)\n\n", q.Name, q.Code)
	b.Printf("| Metric | Value |\n")
	b.Printf("|:---|---:|\n")
	b.Printf("| Official Value | %s |\n", q.OfficialValue.Fixed(4))
	if !q.EstimatedValue.IsZero() {
		b.Printf("| Intraday Estimate | %s |\n", q.EstimatedValue.Fixed(4))
	}
	return b.String()
}
