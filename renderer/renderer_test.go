package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fundbook"
)

func testTransaction(t *testing.T) fundbook.Transaction {
	t.Helper()
	tx := fundbook.Transaction{
		ID: 1, Type: fundbook.Sell, Date: fundbook.MustParse("2025-02-20"),
		FundName: "Fund A", FundCode: "005827",
		Shares: fundbook.Q(200), CostPrice: fundbook.M(2.15), Amount: fundbook.M(480),
	}
	tx.Recompute()
	return tx
}

func TestTransactions(t *testing.T) {
	got := Transactions([]fundbook.Transaction{testTransaction(t)})

	for _, want := range []string{
		"| ID | Date |",
		"| 1 | 2025-02-20 | sell | Fund A (005827) |",
		"200.00",  // shares, 2 decimals
		"2.1500",  // per-share price, 4 decimals
		"+50",     // profit 480-430, signed
		"+11.63%", // rate 50/430
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Transactions() misses %q:\n%s", want, got)
		}
	}
}

func TestTransactions_Empty(t *testing.T) {
	got := Transactions(nil)
	if !strings.Contains(got, "No transactions recorded.") {
		t.Errorf("Transactions(nil):\n%s", got)
	}
}

func TestTransaction_OneLiner(t *testing.T) {
	got := Transaction(testTransaction(t))
	if got != "Sold 200.00 of Fund A (005827) for 480.00" {
		t.Errorf("Transaction() = %q", got)
	}
}

func TestHoldings(t *testing.T) {
	b := fundbook.NewBook()
	if _, err := b.AddHolding(fundbook.Holding{
		FundName: "Fund A", FundCode: "005827",
		Shares: fundbook.Q(100), CostPrice: fundbook.M(1.5), CurrentValue: fundbook.M(2),
	}); err != nil {
		t.Fatalf("AddHolding() failed: %v", err)
	}

	got := Holdings(b.AllHoldings(), b.HoldingsStats())

	for _, want := range []string{
		"Fund A (005827)",
		"100.00", // shares
		"1.5000", // cost price, 4 decimals
		"150.00", // cost amount
		"200.00", // market value
		"+50",    // profit
		"**Total**",
		"+33.33%", // total rate
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Holdings() misses %q:\n%s", want, got)
		}
	}
}

func TestRanking(t *testing.T) {
	rankings := []fundbook.FundRanking{
		{FundName: "Fund B", FundCode: "000002", Count: 1, TotalProfit: fundbook.M(20), AvgProfit: fundbook.M(20), MaxProfit: fundbook.M(20), MinProfit: fundbook.M(20)},
		{FundName: "Fund A", FundCode: "000001", Count: 2, TotalProfit: fundbook.M(15), AvgProfit: fundbook.M(7.5), MaxProfit: fundbook.M(10), MinProfit: fundbook.M(5)},
	}
	got := Ranking(rankings)

	first := strings.Index(got, "Fund B")
	second := strings.Index(got, "Fund A")
	if first < 0 || second < 0 || first > second {
		t.Errorf("Ranking() order wrong:\n%s", got)
	}
	if !strings.Contains(got, "| 1 | Fund B (000002) | 1 |") {
		t.Errorf("Ranking() misses the rank column:\n%s", got)
	}
}

func TestSummary(t *testing.T) {
	got := Summary(
		fundbook.TransactionStats{Count: 3, BuyCount: 2, SellCount: 1, TotalProfit: fundbook.M(12)},
		fundbook.HoldingStats{Count: 1, TotalCost: fundbook.M(150), TotalMarketValue: fundbook.M(200), TotalProfit: fundbook.M(50)},
	)
	for _, want := range []string{
		"| Trades | 3 |",
		"| Buys | 2 |",
		"| Sells | 1 |",
		"| Realized Profit | +",
		"| Market Value | 200.00 |",
		"+33.33%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() misses %q:\n%s", want, got)
		}
	}
}

func TestQuote(t *testing.T) {
	got := Quote(fundbook.FundQuote{Code: "005827", Name: "Fund A", OfficialValue: fundbook.M(2.4501), EstimatedValue: fundbook.M(2.4713)})
	for _, want := range []string{"Fund A (005827)", "2.4501", "2.4713"} {
		if !strings.Contains(got, want) {
			t.Errorf("Quote() misses %q:\n%s", want, got)
		}
	}
}
