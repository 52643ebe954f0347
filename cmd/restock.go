package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restockCmd struct {
	id  string
	qty int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "increase the stock of a product" }
func (*restockCmd) Usage() string {
	return `stk restock -id <id> -qty <n>

  Increases the stock of the product with the given ID by n units.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product identifier (required)")
	f.IntVar(&c.qty, "qty", 0, "Number of units to add (required, positive)")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.qty == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id and -qty flags are required.")
		return subcommands.ExitUsageError
	}

	inv, store, err := loadInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := inv.Restock(c.id, c.qty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := saveInventory(store, inv); status != subcommands.ExitSuccess {
		return status
	}
	p, _ := inv.Get(c.id)
	fmt.Printf("✅ Restocked %s (ID: %s), stock is now %d\n", p.Name(), p.ID(), p.Stock())
	return subcommands.ExitSuccess
}
