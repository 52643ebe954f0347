package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sellCmd struct {
	id  string
	qty int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell units of a product and record the sale" }
func (*sellCmd) Usage() string {
	return `stk sell -id <id> -qty <n>

  Decreases the stock of the product by n units and appends a sale record
  to the ledger with the price at the time of the sale. Selling more units
  than are in stock fails and records nothing.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product identifier (required)")
	f.IntVar(&c.qty, "qty", 0, "Number of units to sell (required, positive)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.qty == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id and -qty flags are required.")
		return subcommands.ExitUsageError
	}

	inv, store, err := loadInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	rec, err := inv.Sell(c.id, c.qty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := saveInventory(store, inv); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("✅ Sold %d x %s for %s (sale %s)\n", rec.Quantity(), rec.ProductName(), rec.Total(), rec.SaleID())
	return subcommands.ExitSuccess
}
