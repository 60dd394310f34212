package fundbook

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestExportFilename(t *testing.T) {
	got := ExportFilename(MustParse("2025-08-30"))
	if got != "fund-transactions_2025-08-30.json" {
		t.Errorf("ExportFilename() = %q", got)
	}
}

func TestExportImportRoundtrip(t *testing.T) {
	txs := []Transaction{
		{ID: 1, Type: Buy, Date: MustParse("2025-01-10"), FundName: "Fund A", FundCode: "005827", Shares: Q(100), CostPrice: M(1.5), Fee: M(1)},
		{ID: 2, Type: Sell, Date: MustParse("2025-02-20"), FundName: "Fund A", FundCode: "005827", Shares: Q(40), CostPrice: M(1.5), Amount: M(70)},
	}
	for i := range txs {
		txs[i].Recompute()
	}

	var buf strings.Builder
	if err := ExportTransactions(&buf, txs); err != nil {
		t.Fatalf("ExportTransactions() failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "[") {
		t.Errorf("export is not a JSON array: %s", buf.String())
	}

	imported, err := ImportTransactions(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ImportTransactions() failed: %v", err)
	}
	if !slices.EqualFunc(imported, txs, Transaction.Equal) {
		t.Errorf("roundtrip mismatch:\n got %v\nwant %v", imported, txs)
	}
}

func TestImportTransactions_RejectsNonArray(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "object", payload: `{"transactions":[]}`},
		{name: "scalar", payload: `42`},
		{name: "empty", payload: ``},
		{name: "blank", payload: "  \n "},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportTransactions(strings.NewReader(tc.payload)); !errors.Is(err, ErrBadFormat) {
				t.Errorf("ImportTransactions() = %v, want ErrBadFormat", err)
			}
		})
	}
}

func TestImportTransactions_MalformedArray(t *testing.T) {
	_, err := ImportTransactions(strings.NewReader(`[{"id":`))
	if err == nil {
		t.Fatal("ImportTransactions() accepted a truncated array")
	}
	if errors.Is(err, ErrBadFormat) {
		t.Error("a truncated array is a parse error, not a format error")
	}
}

func TestImportTransactions_EmptyArray(t *testing.T) {
	imported, err := ImportTransactions(strings.NewReader("[]"))
	if err != nil {
		t.Fatalf("ImportTransactions() failed: %v", err)
	}
	if len(imported) != 0 {
		t.Errorf("got %d transactions, want 0", len(imported))
	}
}

func TestImportTransactions_LeadingWhitespace(t *testing.T) {
	imported, err := ImportTransactions(strings.NewReader("\n  [\n]\n"))
	if err != nil {
		t.Fatalf("ImportTransactions() failed: %v", err)
	}
	if len(imported) != 0 {
		t.Errorf("got %d transactions, want 0", len(imported))
	}
}
