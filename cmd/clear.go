package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "erase the whole book" }
func (*clearCmd) Usage() string {
	return `fbk clear

  Erases every transaction and every holding. The remote store and the
  sync configuration are left untouched. Asks for confirmation twice.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := loadBook()
	txs, holdings := b.AllTransactions(), b.AllHoldings()
	if len(txs) == 0 && len(holdings) == 0 {
		fmt.Println("The book is already empty.")
		return subcommands.ExitSuccess
	}

	// Destructive and unexportable: confirm twice.
	first := fmt.Sprintf("Erase %d transaction(s) and %d holding(s)?", len(txs), len(holdings))
	if !confirm(first) || !confirm("This cannot be undone. Really erase everything?") {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	b.ReplaceAll(nil, nil)
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println("Book erased.")
	return subcommands.ExitSuccess
}
