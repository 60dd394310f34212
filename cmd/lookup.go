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

type lookupCmd struct{}

func (*lookupCmd) Name() string     { return "lookup" }
func (*lookupCmd) Synopsis() string { return "look up a fund by code on the quote service" }
func (*lookupCmd) Usage() string {
	return `fbk lookup <code...>

  Queries the public quote service for each fund code and shows the fund
  name, the last official per-share value, and the intraday estimate when
  the market is open.
`
}

func (c *lookupCmd) SetFlags(f *flag.FlagSet) {}

func (c *lookupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	codes := f.Args()
	if len(codes) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one fund code is required.")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, code := range codes {
		quote, err := fundbook.LookupFund(ctx, nil, code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error looking up %q: %v\n", code, err)
			status = subcommands.ExitFailure
			continue
		}
		if quote == nil {
			fmt.Printf("Fund %q not found.\n", code)
			continue
		}
		printMarkdown(renderer.Quote(*quote))
	}
	return status
}
