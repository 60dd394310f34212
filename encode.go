package fundbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file implements the stored form of the two collections: JSONL, one
// record per line, in a canonical key order (see the MarshalJSON of
// Transaction and Holding).

// EncodeTransaction marshals a single transaction and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction %d: %w", tx.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeTransactions persists the journal to an io.Writer in JSONL format,
// preserving its order.
func EncodeTransactions(w io.Writer, transactions []Transaction) error {
	for _, tx := range transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTransactions decodes a journal from a stream of JSONL data.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	transactions := make([]Transaction, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("could not parse transaction line %q: %w", string(line), err)
		}
		transactions = append(transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return transactions, nil
}

// EncodeHoldings persists the holdings ledger to an io.Writer in JSONL
// format, preserving its order.
func EncodeHoldings(w io.Writer, holdings []Holding) error {
	for _, h := range holdings {
		data, err := json.Marshal(h)
		if err != nil {
			return fmt.Errorf("failed to marshal holding %d: %w", h.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write holding: %w", err)
		}
	}
	return nil
}

// DecodeHoldings decodes a holdings ledger from a stream of JSONL data.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	holdings := make([]Holding, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var h Holding
		if err := json.Unmarshal(line, &h); err != nil {
			return nil, fmt.Errorf("could not parse holding line %q: %w", string(line), err)
		}
		holdings = append(holdings, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return holdings, nil
}
