package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fundbook"
	"github.com/etnz/fundbook/renderer"
	"github.com/google/subcommands"
)

type rankCmd struct{}

func (*rankCmd) Name() string     { return "rank" }
func (*rankCmd) Synopsis() string { return "rank funds by total profit" }
func (*rankCmd) Usage() string {
	return `fbk rank

  Groups transactions by fund and ranks the funds by total profit,
  best first.
`
}

func (c *rankCmd) SetFlags(f *flag.FlagSet) {}

func (c *rankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := loadBook()
	printMarkdown(renderer.Ranking(fundbook.RankFunds(b.Transactions())))
	return subcommands.ExitSuccess
}
