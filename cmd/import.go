package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook"
	"github.com/google/subcommands"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the journal with an exported JSON file" }
func (*importCmd) Usage() string {
	return `fbk import [-y] <file>

  Reads an exported transaction array and replaces the whole journal with
  it, after a confirmation showing the record count. A payload that is not
  a JSON array is rejected and the journal is left untouched. Holdings are
  not part of the export and are not modified.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one file is required.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	file, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	transactions, err := fundbook.ImportTransactions(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	question := fmt.Sprintf("Replace the journal with %d imported transaction(s)?", len(transactions))
	if !c.yes && !confirm(question) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	b := loadBook()
	b.ReplaceTransactions(transactions)
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Imported %d transaction(s).\n", len(transactions))
	return subcommands.ExitSuccess
}
