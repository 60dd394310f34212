package fundbook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Holding is the aggregate position in a fund, independent of the transaction
// history that produced it. Holdings are opt-in: a transaction for a fund
// without a holding row is tracked in the journal only.
type Holding struct {
	ID       int64
	FundName string
	FundCode string

	Shares       Quantity // running balance, mutated by the reconciler or direct edits
	CostPrice    Money    // declared average cost basis; never auto-recomputed on trades
	CurrentValue Money    // latest known per-share market value
	Remark       string

	// derived
	CostAmount  Money
	MarketValue Money
	Profit      Money
	ProfitRate  Percent
}

// Key returns the fund identity key: the fund code if present, else the name.
func (h Holding) Key() string {
	if h.FundCode != "" {
		return h.FundCode
	}
	return h.FundName
}

// Matches reports whether the holding is the one identified by the fund
// identity key. The code is matched exactly when the holding has one;
// otherwise the name is.
func (h Holding) Matches(key string) bool {
	return (h.FundCode != "" && h.FundCode == key) || h.FundName == key
}

// Recompute fills the derived fields from the stored inputs.
func (h *Holding) Recompute() {
	m := ComputeHoldingMetrics(h.Shares, h.CostPrice, h.CurrentValue)
	h.CostAmount = m.CostAmount
	h.MarketValue = m.MarketValue
	h.Profit = m.Profit
	h.ProfitRate = m.ProfitRate
}

// Validate checks the holding for correctness.
func (h Holding) Validate() (Holding, error) {
	if h.FundName == "" {
		return h, errors.New("fund name is missing")
	}
	if h.Shares.IsNegative() {
		return h, fmt.Errorf("holding shares cannot be negative, got %s", h.Shares)
	}
	return h, nil
}

func (h Holding) Equal(o Holding) bool {
	return h.ID == o.ID && h.FundName == o.FundName && h.FundCode == o.FundCode &&
		h.Shares.Equal(o.Shares) && h.CostPrice.Equal(o.CostPrice) &&
		h.CurrentValue.Equal(o.CurrentValue) && h.Remark == o.Remark
}

// MarshalJSON implements the json.Marshaler interface for Holding.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", h.ID)
	w.Append("fundName", h.FundName)
	w.Optional("fundCode", h.FundCode)
	w.Append("shares", h.Shares)
	w.Append("costPrice", h.CostPrice)
	w.Append("currentValue", h.CurrentValue)
	w.Optional("remark", h.Remark)
	w.Append("costAmount", h.CostAmount)
	w.Append("marketValue", h.MarketValue)
	w.Append("profit", h.Profit)
	w.Append("profitRate", h.ProfitRate)
	return w.MarshalJSON()
}

// holdingRecord is a specialized struct for decoding json.
type holdingRecord struct {
	ID           int64    `json:"id"`
	FundName     string   `json:"fundName"`
	FundCode     string   `json:"fundCode,omitempty"`
	Shares       Quantity `json:"shares"`
	CostPrice    Money    `json:"costPrice"`
	CurrentValue Money    `json:"currentValue"`
	Remark       string   `json:"remark,omitempty"`
	CostAmount   Money    `json:"costAmount"`
	MarketValue  Money    `json:"marketValue"`
	Profit       Money    `json:"profit"`
	ProfitRate   Percent  `json:"profitRate"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Holding.
func (h *Holding) UnmarshalJSON(data []byte) error {
	var temp holdingRecord
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*h = Holding{
		ID:           temp.ID,
		FundName:     temp.FundName,
		FundCode:     temp.FundCode,
		Shares:       temp.Shares,
		CostPrice:    temp.CostPrice,
		CurrentValue: temp.CurrentValue,
		Remark:       temp.Remark,
		CostAmount:   temp.CostAmount,
		MarketValue:  temp.MarketValue,
		Profit:       temp.Profit,
		ProfitRate:   temp.ProfitRate,
	}
	return nil
}
