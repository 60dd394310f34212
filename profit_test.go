package fundbook

import "testing"

func TestComputeProfit(t *testing.T) {
	testCases := []struct {
		name           string
		typ            TxType
		shares         float64
		costPrice      float64
		amount         float64
		fee            float64
		wantCostAmount float64
		wantProfit     float64
		wantRate       Percent
	}{
		{
			name: "sell with gain",
			typ:  Sell, shares: 100, costPrice: 1.5, amount: 200, fee: 5,
			wantCostAmount: 150, wantProfit: 45, wantRate: 30,
		},
		{
			name: "sell with loss",
			typ:  Sell, shares: 100, costPrice: 2, amount: 150, fee: 5,
			wantCostAmount: 200, wantProfit: -55, wantRate: -27.5,
		},
		{
			name: "buy is a pure fee drag",
			typ:  Buy, shares: 100, costPrice: 1.5, amount: 150, fee: 5,
			wantCostAmount: 150, wantProfit: -5, wantRate: 0,
		},
		{
			name: "buy without fee",
			typ:  Buy, shares: 50, costPrice: 1.2, amount: 60, fee: 0,
			wantCostAmount: 60, wantProfit: 0, wantRate: 0,
		},
		{
			name: "sell with zero shares has no cost and no rate",
			typ:  Sell, shares: 0, costPrice: 1.5, amount: 20, fee: 5,
			wantCostAmount: 0, wantProfit: 15, wantRate: 0,
		},
		{
			name: "sell with zero cost price has no rate",
			typ:  Sell, shares: 100, costPrice: 0, amount: 20, fee: 5,
			wantCostAmount: 0, wantProfit: 15, wantRate: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeProfit(tc.typ, Q(tc.shares), M(tc.costPrice), M(tc.amount), M(tc.fee))
			if !got.CostAmount.Equal(M(tc.wantCostAmount)) {
				t.Errorf("CostAmount = %s, want %v", got.CostAmount.Fixed(2), tc.wantCostAmount)
			}
			if !got.Profit.Equal(M(tc.wantProfit)) {
				t.Errorf("Profit = %s, want %v", got.Profit.Fixed(2), tc.wantProfit)
			}
			if !got.ProfitRate.Equal(tc.wantRate) {
				t.Errorf("ProfitRate = %v, want %v", got.ProfitRate, tc.wantRate)
			}
		})
	}
}

func TestComputeProfit_Reproducible(t *testing.T) {
	// Recomputing the derived fields from the stored inputs must reproduce
	// the stored derived values exactly.
	tx := Transaction{
		Type:      Sell,
		FundName:  "Fund A",
		Shares:    Q(250),
		CostPrice: M(1.3456),
		Amount:    M(400),
		Fee:       M(2.5),
	}
	tx.Recompute()

	again := ComputeProfit(tx.Type, tx.Shares, tx.CostPrice, tx.Amount, tx.Fee)
	if !again.CostAmount.Equal(tx.CostAmount) || !again.Profit.Equal(tx.Profit) || !again.ProfitRate.Equal(tx.ProfitRate) {
		t.Errorf("recomputed %+v does not reproduce stored {%s %s %v}",
			again, tx.CostAmount.Fixed(2), tx.Profit.Fixed(2), tx.ProfitRate)
	}
}

func TestComputeHoldingMetrics(t *testing.T) {
	got := ComputeHoldingMetrics(Q(100), M(1.5), M(2))
	if !got.CostAmount.Equal(M(150)) {
		t.Errorf("CostAmount = %s, want 150", got.CostAmount.Fixed(2))
	}
	if !got.MarketValue.Equal(M(200)) {
		t.Errorf("MarketValue = %s, want 200", got.MarketValue.Fixed(2))
	}
	if !got.Profit.Equal(M(50)) {
		t.Errorf("Profit = %s, want 50", got.Profit.Fixed(2))
	}
	if !got.ProfitRate.Equal(Percent(100.0 / 3.0)) {
		t.Errorf("ProfitRate = %v, want %v", got.ProfitRate, Percent(100.0/3.0))
	}
}

func TestComputeHoldingMetrics_ZeroCost(t *testing.T) {
	got := ComputeHoldingMetrics(Q(0), M(1.5), M(2))
	if got.ProfitRate != 0 {
		t.Errorf("ProfitRate = %v, want 0 for a zero-cost position", got.ProfitRate)
	}
}
