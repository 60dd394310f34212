package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook"
	"github.com/google/subcommands"
)

type holdingEditCmd struct {
	id int64
	holdingFlags
}

func (*holdingEditCmd) Name() string     { return "edit" }
func (*holdingEditCmd) Synopsis() string { return "edit a tracked position" }
func (*holdingEditCmd) Usage() string {
	return `fbk holding edit -id <id> [flags of holding add]

  Replaces fields of a tracked position. Flags left unset keep their
  recorded value. Editing is the only way to change the average cost basis:
  buys never recompute it.
`
}

func (c *holdingEditCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the holding to edit (required).")
	c.holdingFlags.SetFlags(f)
}

func (c *holdingEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			h.FundName = c.name
		case "code":
			h.FundCode = c.code
		case "shares":
			h.Shares = fundbook.Q(c.shares)
		case "price":
			h.CostPrice = fundbook.M(c.costPrice)
		case "value":
			h.CurrentValue = fundbook.M(c.currentValue)
		case "remark":
			h.Remark = c.remark
		}
	})

	if _, err := b.UpdateHolding(c.id, h); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Updated #%d\n", c.id)
	return subcommands.ExitSuccess
}
