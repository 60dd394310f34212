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

type txCmd struct {
	query string
	typ   string
	from  string
	to    string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list recorded transactions" }
func (*txCmd) Usage() string {
	return `fbk tx [-q <text>] [-type buy|sell] [-from <date>] [-to <date>]

  Lists transactions from the journal, newest last, optionally filtered by
  fund name or code, type, and date range.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Keep transactions whose fund name or code contains this text.")
	f.StringVar(&c.typ, "type", "", "Keep only buy or only sell transactions.")
	f.StringVar(&c.from, "from", "", "Keep transactions on or after this date.")
	f.StringVar(&c.to, "to", "", "Keep transactions on or before this date.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(fundbook.Transaction) bool
	if c.query != "" {
		filters = append(filters, fundbook.ByText(c.query))
	}
	if c.typ != "" {
		typ, err := fundbook.ParseTxType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, fundbook.ByType(typ))
	}
	if c.from != "" {
		day, err := fundbook.ParseDate(c.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, fundbook.From(day))
	}
	if c.to != "" {
		day, err := fundbook.ParseDate(c.to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, fundbook.Until(day))
	}

	b := loadBook()
	var transactions []fundbook.Transaction
	for _, tx := range b.Transactions(filters...) {
		transactions = append(transactions, tx)
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
