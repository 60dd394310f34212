package fundbook

import (
	"iter"
	"sort"
)

// FundRanking is the aggregated performance of one fund across its
// transactions.
type FundRanking struct {
	FundName string
	FundCode string
	Count    int
	// TotalProfit is the sum of the per-transaction profits.
	TotalProfit Money
	// AvgProfit is the mean of the per-transaction profits. Historically
	// displayed as a "profit rate" although it is an absolute amount, not a
	// weighted percentage; the behavior is preserved.
	AvgProfit Money
	MaxProfit Money
	MinProfit Money
}

// RankFunds groups transactions by fund identity key and returns per-fund
// statistics ordered by descending total profit. Ties keep the insertion
// order of the fund's first appearance in the journal.
func RankFunds(transactions iter.Seq2[int, Transaction]) []FundRanking {
	type group struct {
		ranking FundRanking
		first   int // insertion rank of the fund's first appearance
	}
	index := make(map[string]*group)
	var order []*group

	for _, tx := range transactions {
		key := tx.Key()
		g, ok := index[key]
		if !ok {
			g = &group{
				ranking: FundRanking{
					FundName:  tx.FundName,
					FundCode:  tx.FundCode,
					MaxProfit: tx.Profit,
					MinProfit: tx.Profit,
				},
				first: len(order),
			}
			index[key] = g
			order = append(order, g)
		}
		r := &g.ranking
		r.Count++
		r.TotalProfit = r.TotalProfit.Add(tx.Profit)
		if tx.Profit.GreaterThan(r.MaxProfit) {
			r.MaxProfit = tx.Profit
		}
		if tx.Profit.LessThan(r.MinProfit) {
			r.MinProfit = tx.Profit
		}
	}

	// A group always holds at least one transaction, so the mean is defined.
	for _, g := range order {
		g.ranking.AvgProfit = g.ranking.TotalProfit.Div(Q(g.ranking.Count))
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].ranking.TotalProfit.GreaterThan(order[j].ranking.TotalProfit)
	})

	rankings := make([]FundRanking, len(order))
	for i, g := range order {
		rankings[i] = g.ranking
	}
	return rankings
}
