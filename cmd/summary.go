package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fundbook/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the book statistics" }
func (*summaryCmd) Usage() string {
	return `fbk summary

  Displays the journal statistics (trade counts, realized profit) and the
  holdings statistics (cost, market value, unrealized profit).
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := loadBook()
	printMarkdown(renderer.Summary(b.Stats(), b.HoldingsStats()))
	return subcommands.ExitSuccess
}
