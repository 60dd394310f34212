// Package cmd implements the CLI application to manage a fund book.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundbook"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&editCmd{},
	&rmCmd{},
	&txCmd{},
	&holdingCmd{},
	&rankCmd{},
	&summaryCmd{},
	&lookupCmd{},
	&fetchCmd{},
	&syncCmd{},
	&configCmd{},
	&exportCmd{},
	&importCmd{},
	&clearCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataPath = flag.String("data-path", ".fundbook", "Path to the data directory holding the book")

// store returns the local store rooted at the app data directory.
func store() *fundbook.Store {
	return fundbook.NewStore(*dataPath)
}

// loadBook loads the book and wires the interactive removal policy: when a
// holding balance is exhausted, the user decides whether the row goes.
func loadBook() *fundbook.Book {
	b := store().LoadBook()
	b.SetRemovalPolicy(func(h fundbook.Holding) bool {
		return confirm(fmt.Sprintf("Holding %q has no shares left. Remove it?", h.FundName))
	})
	return b
}

// saveBook persists the book, reporting the error on stderr.
func saveBook(b *fundbook.Book) subcommands.ExitStatus {
	if err := store().SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on the terminal. Only an explicit "y" or
// "yes" counts as a yes.
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
