package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the transaction journal to a JSON file" }
func (*exportCmd) Usage() string {
	return `fbk export [-o <file>]

  Writes the journal as a human readable JSON array. The file name defaults
  to fund-transactions_<today>.json in the current directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Use - for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := loadBook()
	transactions := b.AllTransactions()

	if c.output == "-" {
		if err := fundbook.ExportTransactions(os.Stdout, transactions); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = fundbook.ExportFilename(fundbook.Today())
	}
	file, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := fundbook.ExportTransactions(file, transactions); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d transaction(s) to %s\n", len(transactions), name)
	return subcommands.ExitSuccess
}
