package fundbook

import (
	"slices"
	"strings"
	"testing"
)

func TestEncodeDecodeTransactions(t *testing.T) {
	txs := []Transaction{
		{
			ID: 1700000000001, Type: Buy, Date: MustParse("2025-01-10"),
			FundName: "易方达蓝筹精选", FundCode: "005827",
			NetValue: M(2.15), CostPrice: M(2.15), Shares: Q(465.12),
			Fee: M(1.5), Channel: "bank", Remark: "first buy",
		},
		{
			ID: 1700000000002, Type: Sell, Date: MustParse("2025-02-20"),
			FundName: "易方达蓝筹精选", FundCode: "005827",
			NetValue: M(2.4), CostPrice: M(2.15), Shares: Q(200),
			Amount: M(480),
		},
	}
	for i := range txs {
		txs[i].Recompute()
	}

	var buf strings.Builder
	if err := EncodeTransactions(&buf, txs); err != nil {
		t.Fatalf("EncodeTransactions() failed: %v", err)
	}

	decoded, err := DecodeTransactions(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("DecodeTransactions() failed: %v", err)
	}
	if !slices.EqualFunc(decoded, txs, Transaction.Equal) {
		t.Errorf("roundtrip mismatch:\n got %v\nwant %v", decoded, txs)
	}
	for i := range decoded {
		if !decoded[i].Profit.Equal(txs[i].Profit) || !decoded[i].ProfitRate.Equal(txs[i].ProfitRate) {
			t.Errorf("derived fields lost on line %d", i)
		}
	}
}

func TestEncodeTransaction_StableKeyOrder(t *testing.T) {
	tx := Transaction{
		ID: 1, Type: Buy, Date: MustParse("2025-01-10"),
		FundName: "Fund A", FundCode: "005827",
		NetValue: M(2), CostPrice: M(2), Shares: Q(100), Fee: M(1),
	}
	tx.Recompute()

	var buf strings.Builder
	if err := EncodeTransaction(&buf, tx); err != nil {
		t.Fatalf("EncodeTransaction() failed: %v", err)
	}
	got := buf.String()

	// Canonical order keeps stored files diffable.
	want := `{"id":1,"type":"buy","date":"2025-01-10","fundName":"Fund A","fundCode":"005827","netValue":2,"costPrice":2,"shares":100,"amount":0,"fee":1,"costAmount":200,"profit":-1,"profitRate":0}` + "\n"
	if got != want {
		t.Errorf("encoded form:\n got %s\nwant %s", got, want)
	}
}

func TestEncodeTransaction_OmitsEmptyOptionalFields(t *testing.T) {
	tx := Transaction{ID: 1, Type: Sell, Date: MustParse("2025-01-10"), FundName: "Fund A", Shares: Q(1), Amount: M(1)}

	var buf strings.Builder
	if err := EncodeTransaction(&buf, tx); err != nil {
		t.Fatalf("EncodeTransaction() failed: %v", err)
	}
	for _, key := range []string{"fundCode", "channel", "remark"} {
		if strings.Contains(buf.String(), key) {
			t.Errorf("empty optional field %q was encoded: %s", key, buf.String())
		}
	}
}

func TestDecodeTransactions_SkipsEmptyLines(t *testing.T) {
	in := `{"id":1,"type":"buy","date":"2025-01-10","fundName":"A","shares":1}

{"id":2,"type":"sell","date":"2025-01-11","fundName":"A","shares":1}
`
	decoded, err := DecodeTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTransactions() failed: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("got %d transactions, want 2", len(decoded))
	}
}

func TestDecodeTransactions_BadLine(t *testing.T) {
	if _, err := DecodeTransactions(strings.NewReader("not json\n")); err == nil {
		t.Error("DecodeTransactions() accepted a malformed line")
	}
}

func TestEncodeDecodeHoldings(t *testing.T) {
	holdings := []Holding{
		{ID: 1, FundName: "易方达蓝筹精选", FundCode: "005827", Shares: Q(465.12), CostPrice: M(2.15), CurrentValue: M(2.4), Remark: "core position"},
		{ID: 2, FundName: "No Code Fund", Shares: Q(10), CostPrice: M(1)},
	}
	for i := range holdings {
		holdings[i].Recompute()
	}

	var buf strings.Builder
	if err := EncodeHoldings(&buf, holdings); err != nil {
		t.Fatalf("EncodeHoldings() failed: %v", err)
	}
	decoded, err := DecodeHoldings(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("DecodeHoldings() failed: %v", err)
	}
	if !slices.EqualFunc(decoded, holdings, Holding.Equal) {
		t.Errorf("roundtrip mismatch:\n got %v\nwant %v", decoded, holdings)
	}
}
