package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type holdingRmCmd struct {
	id  int64
	yes bool
}

func (*holdingRmCmd) Name() string     { return "rm" }
func (*holdingRmCmd) Synopsis() string { return "stop tracking a position" }
func (*holdingRmCmd) Usage() string {
	return `fbk holding rm -id <id> [-y]

  Removes a position from the ledger. The transaction journal is not
  touched. Asks for confirmation unless -y is given.
`
}

func (c *holdingRmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the holding to remove (required).")
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *holdingRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	b := loadBook()
	h, ok := b.Holding(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no holding with id %d\n", c.id)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(fmt.Sprintf("Stop tracking %q (%s shares)?", h.FundName, h.Shares.Fixed(2))) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	if err := b.DeleteHolding(c.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Removed #%d\n", c.id)
	return subcommands.ExitSuccess
}
