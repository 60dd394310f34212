package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// holdingCmd is a container for the holding subcommands.
type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "manage the holdings ledger" }
func (*holdingCmd) Usage() string {
	return `fbk holding <subcommand> [args]

Commands:
  add  - Track a fund position.
  edit - Edit a tracked position.
  rm   - Stop tracking a position.
  list - List tracked positions.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {}
func (c *holdingCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "holding")
	commander.Register(&holdingAddCmd{}, "")
	commander.Register(&holdingEditCmd{}, "")
	commander.Register(&holdingRmCmd{}, "")
	commander.Register(&holdingListCmd{}, "")
	return commander.Execute(ctx, args...)
}
