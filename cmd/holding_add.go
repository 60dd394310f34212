package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook"
	"github.com/google/subcommands"
)

// holdingFlags holds the flags shared by the holding add and edit
// subcommands.
type holdingFlags struct {
	name         string
	code         string
	shares       float64
	costPrice    float64
	currentValue float64
	remark       string
}

func (x *holdingFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&x.name, "name", "", "Fund name (required).")
	f.StringVar(&x.code, "code", "", "Fund code. When set it becomes the fund identity key.")
	f.Float64Var(&x.shares, "shares", 0, "Current share balance.")
	f.Float64Var(&x.costPrice, "price", 0, "Average per-share cost basis.")
	f.Float64Var(&x.currentValue, "value", 0, "Latest known per-share market value.")
	f.StringVar(&x.remark, "remark", "", "Free-form remark.")
}

type holdingAddCmd struct {
	holdingFlags
}

func (*holdingAddCmd) Name() string     { return "add" }
func (*holdingAddCmd) Synopsis() string { return "track a fund position" }
func (*holdingAddCmd) Usage() string {
	return `fbk holding add -name <fund> [-code <code>] -shares <n> -price <p> [-value <v>] [-remark <r>]

  Tracks a fund position. Only tracked funds absorb the share effects of
  recorded transactions.
`
}

func (c *holdingAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := loadBook()
	h, err := b.AddHolding(fundbook.Holding{
		FundName:     c.name,
		FundCode:     c.code,
		Shares:       fundbook.Q(c.shares),
		CostPrice:    fundbook.M(c.costPrice),
		CurrentValue: fundbook.M(c.currentValue),
		Remark:       c.remark,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Tracking %q as #%d\n", h.FundName, h.ID)
	return subcommands.ExitSuccess
}
