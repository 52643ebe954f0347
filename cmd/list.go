package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	summary bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all products in the inventory" }
func (*listCmd) Usage() string {
	return `stk list [-summary]

  Lists every product in the inventory with its price, stock, and
  category details. With -summary, shows per-category totals instead.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.summary, "summary", false, "Show per-category totals instead of the full list")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, _, err := loadInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.summary {
		printMarkdown(renderer.SummaryMarkdown(inv))
	} else {
		printMarkdown(renderer.InventoryMarkdown(inv))
	}
	return subcommands.ExitSuccess
}
