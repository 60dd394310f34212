package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	all bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "refresh holding values from the quote service" }
func (*fetchCmd) Usage() string {
	return `fbk fetch [-all] [<code...>]

  Updates the current per-share value of tracked holdings from the quote
  service. With -all, every holding that declares a fund code is refreshed;
  otherwise only the given codes are.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Refresh every holding that declares a fund code.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := loadBook()

	var codes []string
	if c.all {
		for _, h := range b.AllHoldings() {
			if h.FundCode != "" {
				codes = append(codes, h.FundCode)
			}
		}
	} else {
		codes = f.Args()
	}
	if len(codes) == 0 {
		fmt.Fprintln(os.Stderr, "Error: give fund codes or use -all.")
		return subcommands.ExitUsageError
	}

	updated := 0
	for _, code := range codes {
		h, ok := b.FindHolding(code)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: no holding tracks fund %q, skipping.\n", code)
			continue
		}
		quote, err := fundbook.LookupFund(ctx, nil, code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error looking up %q: %v\n", code, err)
			continue
		}
		if quote == nil {
			fmt.Fprintf(os.Stderr, "Warning: fund %q not found on the quote service.\n", code)
			continue
		}
		h.CurrentValue = quote.Latest()
		if _, err := b.UpdateHolding(h.ID, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating holding %q: %v\n", h.FundName, err)
			continue
		}
		fmt.Printf("%s: %s\n", h.FundName, h.CurrentValue.Fixed(4))
		updated++
	}

	if updated == 0 {
		fmt.Println("Nothing updated.")
		return subcommands.ExitSuccess
	}
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Updated %d holding(s).\n", updated)
	return subcommands.ExitSuccess
}
