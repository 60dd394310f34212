package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook"
	"github.com/google/subcommands"
)

// syncCmd is a container for the sync subcommands.
type syncCmd struct{}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "synchronize the book with a WebDAV store" }
func (*syncCmd) Usage() string {
	return `fbk sync <subcommand> [args]

Commands:
  test - Probe the configured remote store.
  up   - Upload the local book, overwriting the remote blob.
  down - Download the remote blob and replace the local book.

Synchronization replaces whole states; last write wins. See 'fbk topic sync'.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {}
func (c *syncCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "sync")
	commander.Register(&syncTestCmd{}, "")
	commander.Register(&syncUpCmd{}, "")
	commander.Register(&syncDownCmd{}, "")
	return commander.Execute(ctx, args...)
}

// remoteStore builds the remote client from the stored configuration.
func remoteStore() (*fundbook.RemoteStore, error) {
	cfg := store().LoadRemoteConfig()
	r, err := fundbook.NewRemoteStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'fbk config' first)", err)
	}
	return r, nil
}

type syncTestCmd struct{}

func (*syncTestCmd) Name() string     { return "test" }
func (*syncTestCmd) Synopsis() string { return "probe the configured remote store" }
func (*syncTestCmd) Usage() string {
	return `fbk sync test

  Sends an authenticated probe to the configured WebDAV store.
`
}

func (c *syncTestCmd) SetFlags(f *flag.FlagSet) {}

func (c *syncTestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := remoteStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := r.Test(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Remote store is reachable.")
	return subcommands.ExitSuccess
}

type syncUpCmd struct{}

func (*syncUpCmd) Name() string     { return "up" }
func (*syncUpCmd) Synopsis() string { return "upload the local book to the remote store" }
func (*syncUpCmd) Usage() string {
	return `fbk sync up

  Uploads both collections as one blob, overwriting the remote state.
`
}

func (c *syncUpCmd) SetFlags(f *flag.FlagSet) {}

func (c *syncUpCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := remoteStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	b := loadBook()
	state := fundbook.RemoteState{
		Transactions: b.AllTransactions(),
		Holdings:     b.AllHoldings(),
	}
	if err := r.Upload(ctx, state); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Uploaded %d transaction(s) and %d holding(s).\n", len(state.Transactions), len(state.Holdings))
	return subcommands.ExitSuccess
}

type syncDownCmd struct {
	yes bool
}

func (*syncDownCmd) Name() string     { return "down" }
func (*syncDownCmd) Synopsis() string { return "replace the local book with the remote state" }
func (*syncDownCmd) Usage() string {
	return `fbk sync down [-y]

  Downloads the remote blob and replaces the local book with it, after a
  confirmation showing the record counts. Asks nothing with -y.
`
}

func (c *syncDownCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *syncDownCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := remoteStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	state, err := r.Download(ctx)
	if errors.Is(err, fundbook.ErrNoRemoteData) {
		fmt.Println("No remote data yet. Local book left untouched.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	question := fmt.Sprintf("Replace the local book with %d transaction(s) and %d holding(s) (exported %s)?",
		len(state.Transactions), len(state.Holdings), state.ExportTime)
	if !c.yes && !confirm(question) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	b := loadBook()
	b.ReplaceAll(state.Transactions, state.Holdings)
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println("Local book replaced.")
	return subcommands.ExitSuccess
}
