package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook"
	"github.com/google/subcommands"
)

type editCmd struct {
	id  int64
	typ string
	txFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a recorded transaction" }
func (*editCmd) Usage() string {
	return `fbk edit -id <id> [-type buy|sell] [flags of buy/sell]

  Replaces fields of a recorded transaction. Flags left unset keep their
  recorded value. The old share effect on the matching holding is reversed
  before the edited one is applied.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the transaction to edit (required).")
	f.StringVar(&c.typ, "type", "", "New transaction type (buy or sell).")
	c.txFlags.SetFlags(f)
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	b := loadBook()
	tx, ok := b.Transaction(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %d\n", c.id)
		return subcommands.ExitFailure
	}

	// Only flags the user actually set override the recorded values. The
	// first parse failure wins: flag.Visit walks flags alphabetically, so a
	// later error-free case must not clear an earlier error.
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "type":
			tx.Type, err = fundbook.ParseTxType(c.typ)
		case "d":
			tx.Date, err = fundbook.ParseDate(c.date)
		case "name":
			tx.FundName = c.name
		case "code":
			tx.FundCode = c.code
		case "net":
			tx.NetValue = fundbook.M(c.netValue)
		case "price":
			tx.CostPrice = fundbook.M(c.costPrice)
		case "shares":
			tx.Shares = fundbook.Q(c.shares)
		case "amount":
			tx.Amount = fundbook.M(c.amount)
		case "fee":
			tx.Fee = fundbook.M(c.fee)
		case "channel":
			tx.Channel = c.channel
		case "remark":
			tx.Remark = c.remark
		}
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	if _, err := b.UpdateTransaction(c.id, tx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Updated #%d\n", c.id)
	return subcommands.ExitSuccess
}
