package renderer

import (
	"github.com/etnz/fundbook"
)

// Transaction renders a one-line description of a trade.
func Transaction(tx fundbook.Transaction) string {
	b := newBuilder()
	switch tx.Type {
	case fundbook.Buy:
		b.Printf("Bought %s of %s at %s", tx.Shares.Fixed(2), fundDisplay(tx.FundName, tx.FundCode), tx.CostPrice.Fixed(4))
	case fundbook.Sell:
		b.Printf("Sold %s of %s for %s", tx.Shares.Fixed(2), fundDisplay(tx.FundName, tx.FundCode), tx.Amount.Fixed(2))
	}
	return b.String()
}

// Transactions renders the journal as a markdown table, one row per trade, in
// journal order.
func Transactions(transactions []fundbook.Transaction) string {
	b := newBuilder()
	b.Printf("# Transactions (%s)\n\n", fundbook.Currency)

	if len(transactions) == 0 {
		b.Printf("No transactions recorded.\n")
		return b.String()
	}

	b.Printf("| ID | Date | Type | Fund | Shares | Cost Price | Amount | Fee | Profit | Rate |\n")
	b.Printf("|---:|:---|:---|:---|---:|---:|---:|---:|---:|---:|\n")
	for _, tx := range transactions {
		b.Printf("| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.ID,
			tx.Date,
			tx.Type,
			fundDisplay(tx.FundName, tx.FundCode),
			tx.Shares.Fixed(2),
			tx.CostPrice.Fixed(4),
			tx.Amount.Fixed(2),
			tx.Fee.Fixed(2),
			tx.Profit.SignedString(),
			tx.ProfitRate.SignedString(),
		)
	}
	return b.String()
}

// fundDisplay joins a fund name with its code when one is declared.
func fundDisplay(name, code string) string {
	if code == "" {
		return name
	}
	return name + " (" + code + ")"
}
