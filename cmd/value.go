package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "show the total inventory value" }
func (*valueCmd) Usage() string {
	return `stk value

  Shows the total value of the inventory: the sum over all products of
  unit price times stock.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, _, err := loadInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Total inventory value: %s (%d products)\n", inv.TotalValue(), inv.Len())
	return subcommands.ExitSuccess
}
