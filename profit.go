package fundbook

// ProfitBreakdown is the derived cost and profit of a single transaction.
type ProfitBreakdown struct {
	CostAmount Money
	Profit     Money
	ProfitRate Percent
}

// ComputeProfit computes cost, profit, and profit rate for one trade.
//
// A sell realizes profit = amount - costAmount - fee. A buy never realizes
// gain: its profit is the fee drag, and its rate is 0. The rate is clamped to
// 0 when costAmount is not positive, so a zero-cost trade is never a division
// error. All intermediate values keep full decimal precision; rounding is a
// presentation concern.
func ComputeProfit(typ TxType, shares Quantity, costPrice, amount, fee Money) ProfitBreakdown {
	costAmount := costPrice.Mul(shares)
	if typ == Sell {
		profit := amount.Sub(costAmount).Sub(fee)
		return ProfitBreakdown{
			CostAmount: costAmount,
			Profit:     profit,
			ProfitRate: profit.Rate(costAmount),
		}
	}
	return ProfitBreakdown{
		CostAmount: costAmount,
		Profit:     fee.Neg(),
		ProfitRate: 0,
	}
}

// HoldingMetrics is the derived valuation of a holding.
type HoldingMetrics struct {
	CostAmount  Money
	MarketValue Money
	Profit      Money
	ProfitRate  Percent
}

// ComputeHoldingMetrics computes the derived valuation of a position from its
// share balance, declared cost basis, and latest known per-share value. The
// profit rate carries the same zero-cost clamp as ComputeProfit.
func ComputeHoldingMetrics(shares Quantity, costPrice, currentValue Money) HoldingMetrics {
	costAmount := costPrice.Mul(shares)
	marketValue := currentValue.Mul(shares)
	profit := marketValue.Sub(costAmount)
	return HoldingMetrics{
		CostAmount:  costAmount,
		MarketValue: marketValue,
		Profit:      profit,
		ProfitRate:  profit.Rate(costAmount),
	}
}
