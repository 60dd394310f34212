package fundbook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TxType is a typed string identifying the two kinds of trades.
type TxType string

const (
	Buy  TxType = "buy"
	Sell TxType = "sell"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction records a single confirmed fund trade.
//
// A transaction is immutable once computed; editing replaces the whole record
// while preserving its ID. The derived fields (CostAmount, Profit,
// ProfitRate) are recomputed by Recompute and persisted alongside the inputs.
type Transaction struct {
	ID       int64
	Type     TxType
	Date     Date
	FundName string
	FundCode string // optional; preferred identity key when present

	NetValue  Money    // per-share official value on the trade date
	CostPrice Money    // per-share cost basis
	Shares    Quantity // number of shares traded
	Amount    Money    // cash amount confirmed for the trade (meaningful for sells)
	Fee       Money

	Channel string
	Remark  string

	// derived
	CostAmount Money
	Profit     Money
	ProfitRate Percent
}

// Key returns the fund identity key: the fund code if present, else the name.
func (t Transaction) Key() string {
	if t.FundCode != "" {
		return t.FundCode
	}
	return t.FundName
}

// ShareDelta returns the signed change in held shares caused by this
// transaction: positive for a buy, negative for a sell.
func (t Transaction) ShareDelta() Quantity {
	if t.Type == Sell {
		return t.Shares.Neg()
	}
	return t.Shares
}

// Recompute fills the derived fields from the stored inputs.
func (t *Transaction) Recompute() {
	b := ComputeProfit(t.Type, t.Shares, t.CostPrice, t.Amount, t.Fee)
	t.CostAmount = b.CostAmount
	t.Profit = b.Profit
	t.ProfitRate = b.ProfitRate
}

// Validate checks the transaction for correctness and applies quick fixes
// where applicable (a zero date resolves to today).
func (t Transaction) Validate() (Transaction, error) {
	if t.Type != Buy && t.Type != Sell {
		return t, fmt.Errorf("unknown transaction type: %q", t.Type)
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.FundName == "" {
		return t, errors.New("fund name is missing")
	}
	if !t.Shares.IsPositive() {
		return t, fmt.Errorf("transaction shares must be positive, got %s", t.Shares)
	}
	if t.Fee.IsNegative() {
		return t, fmt.Errorf("transaction fee cannot be negative, got %s", t.Fee)
	}
	return t, nil
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Type == o.Type && t.Date == o.Date &&
		t.FundName == o.FundName && t.FundCode == o.FundCode &&
		t.NetValue.Equal(o.NetValue) && t.CostPrice.Equal(o.CostPrice) &&
		t.Shares.Equal(o.Shares) && t.Amount.Equal(o.Amount) && t.Fee.Equal(o.Fee) &&
		t.Channel == o.Channel && t.Remark == o.Remark
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Keys are written in a stable order so the stored form is diffable.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("date", t.Date)
	w.Append("fundName", t.FundName)
	w.Optional("fundCode", t.FundCode)
	w.Append("netValue", t.NetValue)
	w.Append("costPrice", t.CostPrice)
	w.Append("shares", t.Shares)
	w.Append("amount", t.Amount)
	w.Append("fee", t.Fee)
	w.Optional("channel", t.Channel)
	w.Optional("remark", t.Remark)
	w.Append("costAmount", t.CostAmount)
	w.Append("profit", t.Profit)
	w.Append("profitRate", t.ProfitRate)
	return w.MarshalJSON()
}

// txRecord is a specialized struct for decoding json.
type txRecord struct {
	ID         int64    `json:"id"`
	Type       TxType   `json:"type"`
	Date       Date     `json:"date"`
	FundName   string   `json:"fundName"`
	FundCode   string   `json:"fundCode,omitempty"`
	NetValue   Money    `json:"netValue"`
	CostPrice  Money    `json:"costPrice"`
	Shares     Quantity `json:"shares"`
	Amount     Money    `json:"amount"`
	Fee        Money    `json:"fee"`
	Channel    string   `json:"channel,omitempty"`
	Remark     string   `json:"remark,omitempty"`
	CostAmount Money    `json:"costAmount"`
	Profit     Money    `json:"profit"`
	ProfitRate Percent  `json:"profitRate"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp txRecord
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Transaction{
		ID:         temp.ID,
		Type:       temp.Type,
		Date:       temp.Date,
		FundName:   temp.FundName,
		FundCode:   temp.FundCode,
		NetValue:   temp.NetValue,
		CostPrice:  temp.CostPrice,
		Shares:     temp.Shares,
		Amount:     temp.Amount,
		Fee:        temp.Fee,
		Channel:    temp.Channel,
		Remark:     temp.Remark,
		CostAmount: temp.CostAmount,
		Profit:     temp.Profit,
		ProfitRate: temp.ProfitRate,
	}
	return nil
}
