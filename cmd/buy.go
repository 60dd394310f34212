package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook"
	"github.com/etnz/fundbook/renderer"
	"github.com/google/subcommands"
)

// txFlags holds the flags shared by the buy and sell subcommands.
type txFlags struct {
	date      string
	name      string
	code      string
	netValue  float64
	costPrice float64
	shares    float64
	amount    float64
	fee       float64
	channel   string
	remark    string
}

func (x *txFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&x.date, "d", fundbook.Today().String(), "Trade confirmation date (YYYY-MM-DD).")
	f.StringVar(&x.name, "name", "", "Fund name (required).")
	f.StringVar(&x.code, "code", "", "Fund code. When set it becomes the fund identity key.")
	f.Float64Var(&x.netValue, "net", 0, "Official per-share value on the trade date.")
	f.Float64Var(&x.costPrice, "price", 0, "Per-share cost basis.")
	f.Float64Var(&x.shares, "shares", 0, "Number of shares traded (required).")
	f.Float64Var(&x.amount, "amount", 0, "Cash amount confirmed for the trade.")
	f.Float64Var(&x.fee, "fee", 0, "Trade fee.")
	f.StringVar(&x.channel, "channel", "", "Purchase channel.")
	f.StringVar(&x.remark, "remark", "", "Free-form remark.")
}

// Transaction builds the transaction from the flags.
func (x *txFlags) Transaction(typ fundbook.TxType) (fundbook.Transaction, error) {
	day, err := fundbook.ParseDate(x.date)
	if err != nil {
		return fundbook.Transaction{}, fmt.Errorf("invalid date %q: %w", x.date, err)
	}
	return fundbook.Transaction{
		Type:      typ,
		Date:      day,
		FundName:  x.name,
		FundCode:  x.code,
		NetValue:  fundbook.M(x.netValue),
		CostPrice: fundbook.M(x.costPrice),
		Shares:    fundbook.Q(x.shares),
		Amount:    fundbook.M(x.amount),
		Fee:       fundbook.M(x.fee),
		Channel:   x.channel,
		Remark:    x.remark,
	}, nil
}

// recordTransaction adds the transaction to the book, persists it, and
// reports the outcome. Shared by buy and sell.
func recordTransaction(tx fundbook.Transaction) subcommands.ExitStatus {
	b := loadBook()
	tx, err := b.AddTransaction(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Recorded #%d: %s\n", tx.ID, renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

type buyCmd struct {
	txFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a fund purchase" }
func (*buyCmd) Usage() string {
	return `fbk buy -name <fund> -shares <n> -price <p> [-code <code>] [-d <date>] [-fee <f>] [-channel <c>] [-remark <r>]

  Records a buy transaction and adds its shares to the matching holding,
  if one is tracked.
`
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.Transaction(fundbook.Buy)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return recordTransaction(tx)
}
