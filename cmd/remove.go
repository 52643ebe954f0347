package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct {
	id string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a product from the inventory" }
func (*removeCmd) Usage() string {
	return `stk remove -id <id>

  Removes the product with the given ID from the inventory. The sales
  history of the product is kept.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product identifier (required)")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	inv, store, err := loadInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	removed, err := inv.Remove(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := saveInventory(store, inv); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("✅ Removed %s (ID: %s)\n", removed.Name(), removed.ID())
	return subcommands.ExitSuccess
}
