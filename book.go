package fundbook

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrHoldingNotFound     = errors.New("holding not found")
)

// RemovalPolicy decides whether a holding whose share balance dropped to zero
// or below should be removed from the book. Declining keeps the holding with
// its shares clamped to exactly zero.
//
// The original decision point is interactive; injecting it here keeps the
// reconciliation logic testable without a UI.
type RemovalPolicy func(h Holding) bool

var (
	// RemoveEmptyHoldings removes a holding once its balance is exhausted.
	RemoveEmptyHoldings RemovalPolicy = func(Holding) bool { return true }
	// KeepEmptyHoldings keeps the row with shares clamped to zero.
	KeepEmptyHoldings RemovalPolicy = func(Holding) bool { return false }
)

// Book is the whole application state: the transaction journal and the
// holdings ledger. Every transaction mutation flows through the reconciler
// before the caller persists the book, so the two collections stay in
// lockstep.
//
// A Book is not safe for concurrent use; the CLI performs one mutation per
// process run.
type Book struct {
	transactions []Transaction
	holdings     []Holding
	removal      RemovalPolicy
}

// NewBook creates an empty book. Holdings whose balance drops to zero are
// kept (clamped) unless a different policy is set.
func NewBook() *Book {
	return &Book{
		transactions: make([]Transaction, 0),
		holdings:     make([]Holding, 0),
		removal:      KeepEmptyHoldings,
	}
}

// SetRemovalPolicy injects the decision applied when a holding balance
// reaches zero or below.
func (b *Book) SetRemovalPolicy(p RemovalPolicy) {
	if p == nil {
		p = KeepEmptyHoldings
	}
	b.removal = p
}

// newID returns a creation-time identifier: the current Unix millisecond,
// bumped past every existing ID so it stays unique and monotonic even when
// two records are created within the same millisecond.
func (b *Book) newID() int64 {
	id := time.Now().UnixMilli()
	for _, tx := range b.transactions {
		if tx.ID >= id {
			id = tx.ID + 1
		}
	}
	for _, h := range b.holdings {
		if h.ID >= id {
			id = h.ID + 1
		}
	}
	return id
}

// --- transaction journal ---

// AddTransaction validates the transaction, computes its derived fields,
// assigns a creation ID, appends it to the journal, and reconciles the
// matched holding.
func (b *Book) AddTransaction(tx Transaction) (Transaction, error) {
	tx, err := tx.Validate()
	if err != nil {
		return tx, fmt.Errorf("invalid %s transaction: %w", tx.Type, err)
	}
	tx.ID = b.newID()
	tx.Recompute()
	b.transactions = append(b.transactions, tx)
	b.applyShareDelta(tx.Key(), tx.ShareDelta())
	return tx, nil
}

// UpdateTransaction replaces the transaction with the given ID, preserving
// the ID. The old transaction's share effect is reversed before the new one
// is applied, so an edit that moves the trade to another fund reconciles
// both holdings.
func (b *Book) UpdateTransaction(id int64, tx Transaction) (Transaction, error) {
	i := b.findTransaction(id)
	if i < 0 {
		return tx, fmt.Errorf("cannot update transaction %d: %w", id, ErrTransactionNotFound)
	}
	tx, err := tx.Validate()
	if err != nil {
		return tx, fmt.Errorf("invalid %s transaction: %w", tx.Type, err)
	}
	old := b.transactions[i]
	b.applyShareDelta(old.Key(), old.ShareDelta().Neg())
	b.applyShareDelta(tx.Key(), tx.ShareDelta())
	tx.ID = id
	tx.Recompute()
	b.transactions[i] = tx
	return tx, nil
}

// DeleteTransaction removes the transaction and reverses its share effect on
// the matched holding.
func (b *Book) DeleteTransaction(id int64) error {
	i := b.findTransaction(id)
	if i < 0 {
		return fmt.Errorf("cannot delete transaction %d: %w", id, ErrTransactionNotFound)
	}
	tx := b.transactions[i]
	b.applyShareDelta(tx.Key(), tx.ShareDelta().Neg())
	b.transactions = append(b.transactions[:i], b.transactions[i+1:]...)
	return nil
}

// Transaction returns the transaction with the given ID.
func (b *Book) Transaction(id int64) (Transaction, bool) {
	i := b.findTransaction(id)
	if i < 0 {
		return Transaction{}, false
	}
	return b.transactions[i], true
}

func (b *Book) findTransaction(id int64) int {
	for i, tx := range b.transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

// Transactions returns an iterator over the journal in insertion order.
// A transaction is yielded only when every filter accepts it.
func (b *Book) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range b.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// AllTransactions returns a copy of the journal.
func (b *Book) AllTransactions() []Transaction {
	out := make([]Transaction, len(b.transactions))
	copy(out, b.transactions)
	return out
}

// ByText returns a predicate matching the fund name or code, case-insensitively.
func ByText(q string) func(Transaction) bool {
	q = strings.ToLower(q)
	return func(tx Transaction) bool {
		return q == "" ||
			strings.Contains(strings.ToLower(tx.FundName), q) ||
			(tx.FundCode != "" && strings.Contains(strings.ToLower(tx.FundCode), q))
	}
}

// ByType returns a predicate matching the transaction type.
func ByType(typ TxType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == typ }
}

// From returns a predicate keeping transactions on or after the given date.
func From(d Date) func(Transaction) bool {
	return func(tx Transaction) bool { return !tx.Date.Before(d) }
}

// Until returns a predicate keeping transactions on or before the given date.
func Until(d Date) func(Transaction) bool {
	return func(tx Transaction) bool { return !tx.Date.After(d) }
}

// --- holdings ledger ---

// applyShareDelta reconciles the holding matched by the fund identity key
// with a signed share change.
//
// Holdings are opt-in: when no holding matches, the delta is dropped. When
// the resulting balance is zero or below, the removal policy decides between
// removing the row and clamping its shares to exactly zero; the balance is
// never left negative.
func (b *Book) applyShareDelta(key string, delta Quantity) {
	i := b.findHolding(key)
	if i < 0 {
		return
	}
	h := &b.holdings[i]
	h.Shares = h.Shares.Add(delta)
	h.Recompute()
	if !h.Shares.IsPositive() {
		if b.removal(*h) {
			b.holdings = append(b.holdings[:i], b.holdings[i+1:]...)
			return
		}
		h.Shares = Q(0)
		h.Recompute()
	}
}

// findHolding returns the index of the first holding matching the fund
// identity key. Duplicate holdings per key are not rejected; first match
// wins.
func (b *Book) findHolding(key string) int {
	for i, h := range b.holdings {
		if h.Matches(key) {
			return i
		}
	}
	return -1
}

// FindHolding returns the first holding matching the fund identity key.
func (b *Book) FindHolding(key string) (Holding, bool) {
	i := b.findHolding(key)
	if i < 0 {
		return Holding{}, false
	}
	return b.holdings[i], true
}

// AddHolding validates the holding, computes its derived fields, assigns a
// creation ID, and appends it.
func (b *Book) AddHolding(h Holding) (Holding, error) {
	h, err := h.Validate()
	if err != nil {
		return h, fmt.Errorf("invalid holding: %w", err)
	}
	h.ID = b.newID()
	h.Recompute()
	b.holdings = append(b.holdings, h)
	return h, nil
}

// UpdateHolding replaces the holding with the given ID, preserving the ID.
// Direct edits are allowed to override the reconciled balance and are not
// reconciled backward into the journal.
func (b *Book) UpdateHolding(id int64, h Holding) (Holding, error) {
	i := b.findHoldingByID(id)
	if i < 0 {
		return h, fmt.Errorf("cannot update holding %d: %w", id, ErrHoldingNotFound)
	}
	h, err := h.Validate()
	if err != nil {
		return h, fmt.Errorf("invalid holding: %w", err)
	}
	h.ID = id
	h.Recompute()
	b.holdings[i] = h
	return h, nil
}

// DeleteHolding removes the holding with the given ID.
func (b *Book) DeleteHolding(id int64) error {
	i := b.findHoldingByID(id)
	if i < 0 {
		return fmt.Errorf("cannot delete holding %d: %w", id, ErrHoldingNotFound)
	}
	b.holdings = append(b.holdings[:i], b.holdings[i+1:]...)
	return nil
}

// Holding returns the holding with the given ID.
func (b *Book) Holding(id int64) (Holding, bool) {
	i := b.findHoldingByID(id)
	if i < 0 {
		return Holding{}, false
	}
	return b.holdings[i], true
}

func (b *Book) findHoldingByID(id int64) int {
	for i, h := range b.holdings {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// Holdings returns an iterator over the ledger in insertion order.
func (b *Book) Holdings() iter.Seq2[int, Holding] {
	return func(yield func(int, Holding) bool) {
		for i, h := range b.holdings {
			if !yield(i, h) {
				return
			}
		}
	}
}

// AllHoldings returns a copy of the holdings ledger.
func (b *Book) AllHoldings() []Holding {
	out := make([]Holding, len(b.holdings))
	copy(out, b.holdings)
	return out
}

// ReplaceAll swaps in a whole new state: both collections are replaced
// together or neither. Used by sync download and import, after the caller
// obtained confirmation.
func (b *Book) ReplaceAll(transactions []Transaction, holdings []Holding) {
	b.transactions = make([]Transaction, len(transactions))
	copy(b.transactions, transactions)
	b.holdings = make([]Holding, len(holdings))
	copy(b.holdings, holdings)
}

// ReplaceTransactions swaps in a new journal, leaving holdings untouched.
// Used by file import, which only carries the transaction collection.
func (b *Book) ReplaceTransactions(transactions []Transaction) {
	b.transactions = make([]Transaction, len(transactions))
	copy(b.transactions, transactions)
}

// --- statistics ---

// TransactionStats summarizes the journal.
type TransactionStats struct {
	Count       int
	BuyCount    int
	SellCount   int
	TotalProfit Money
}

// Stats computes the journal summary.
func (b *Book) Stats() TransactionStats {
	var s TransactionStats
	for _, tx := range b.transactions {
		s.Count++
		switch tx.Type {
		case Buy:
			s.BuyCount++
		case Sell:
			s.SellCount++
		}
		s.TotalProfit = s.TotalProfit.Add(tx.Profit)
	}
	return s
}

// HoldingStats summarizes the holdings ledger.
type HoldingStats struct {
	Count            int
	TotalCost        Money
	TotalMarketValue Money
	TotalProfit      Money
}

// HoldingsStats computes the ledger summary. The total profit is the gap
// between market value and cost over the whole ledger.
func (b *Book) HoldingsStats() HoldingStats {
	var s HoldingStats
	for _, h := range b.holdings {
		s.Count++
		s.TotalCost = s.TotalCost.Add(h.CostAmount)
		s.TotalMarketValue = s.TotalMarketValue.Add(h.MarketValue)
	}
	s.TotalProfit = s.TotalMarketValue.Sub(s.TotalCost)
	return s
}
