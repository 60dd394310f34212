package renderer

import (
	"github.com/etnz/fundbook"
)

// Ranking renders per-fund performance, best total profit first.
func Ranking(rankings []fundbook.FundRanking) string {
	b := newBuilder()
	b.Printf("# Fund Ranking (%s)\n\n", fundbook.Currency)

	if len(rankings) == 0 {
		b.Printf("No transactions to rank.\n")
		return b.String()
	}

	b.Printf("| # | Fund | Trades | Total Profit | Avg Profit | Max | Min |\n")
	b.Printf("|---:|:---|---:|---:|---:|---:|---:|\n")
	for i, r := range rankings {
		b.Printf("| %d | %s | %d | %s | %s | %s | %s |\n",
			i+1,
			fundDisplay(r.FundName, r.FundCode),
			r.Count,
			r.TotalProfit.SignedString(),
			r.AvgProfit.SignedString(),
			r.MaxProfit.SignedString(),
			r.MinProfit.SignedString(),
		)
	}
	return b.String()
}
