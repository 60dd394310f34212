package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook/renderer"
	"github.com/google/subcommands"
)

type rmCmd struct {
	id  int64
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a recorded transaction" }
func (*rmCmd) Usage() string {
	return `fbk rm -id <id> [-y]

  Removes a transaction and reverses its share effect on the matching
  holding. Asks for confirmation unless -y is given.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the transaction to remove (required).")
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !c.yes && !confirm(fmt.Sprintf("Remove #%d (%s)?", tx.ID, renderer.Transaction(tx))) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	if err := b.DeleteTransaction(c.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Removed #%d\n", c.id)
	return subcommands.ExitSuccess
}
