package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook"
	"github.com/google/subcommands"
)

type sellCmd struct {
	txFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a fund redemption" }
func (*sellCmd) Usage() string {
	return `fbk sell -name <fund> -shares <n> -price <p> -amount <a> [-code <code>] [-d <date>] [-fee <f>]

  Records a sell transaction: the realized profit is the confirmed amount
  minus the cost of the sold shares and the fee. The shares are subtracted
  from the matching holding, if one is tracked.
`
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.Transaction(fundbook.Sell)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return recordTransaction(tx)
}
