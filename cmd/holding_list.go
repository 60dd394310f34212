package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fundbook/renderer"
	"github.com/google/subcommands"
)

type holdingListCmd struct{}

func (*holdingListCmd) Name() string     { return "list" }
func (*holdingListCmd) Synopsis() string { return "list tracked positions" }
func (*holdingListCmd) Usage() string {
	return `fbk holding list

  Lists every tracked position with its derived metrics and totals.
`
}

func (c *holdingListCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := loadBook()
	printMarkdown(renderer.Holdings(b.AllHoldings(), b.HoldingsStats()))
	return subcommands.ExitSuccess
}
