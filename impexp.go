package fundbook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// this file contains functions to handle the import/export format:
// a single human readable JSON array of transactions.

// ErrBadFormat reports that an imported payload is not the expected
// transaction array. The local collection is left untouched.
var ErrBadFormat = errors.New("payload is not a transaction array")

// ExportFilename returns the conventional name of an export file for a day.
func ExportFilename(day Date) string {
	return fmt.Sprintf("fund-transactions_%s.json", day)
}

// ExportTransactions writes the journal to 'w' as an indented JSON array.
func ExportTransactions(w io.Writer, transactions []Transaction) error {
	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot export transactions: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}

// ImportTransactions reads a transaction array from 'r'.
//
// A payload that is not a JSON array is rejected with ErrBadFormat. The
// caller is responsible for the destructive confirmation (record count
// preview) before replacing the journal with the result.
func ImportTransactions(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrBadFormat
	}
	var transactions []Transaction
	if err := json.Unmarshal(trimmed, &transactions); err != nil {
		return nil, fmt.Errorf("cannot parse import: %w", err)
	}
	return transactions, nil
}
