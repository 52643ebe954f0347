package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type expireCmd struct{}

func (*expireCmd) Name() string     { return "expire" }
func (*expireCmd) Synopsis() string { return "remove expired groceries from the inventory" }
func (*expireCmd) Usage() string {
	return `stk expire

  Removes every grocery product whose expiry date is in the past and
  reports how many were removed. Other categories are untouched.
`
}

func (c *expireCmd) SetFlags(f *flag.FlagSet) {}

func (c *expireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, store, err := loadInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	removed := inv.RemoveExpired()
	if removed == 0 {
		fmt.Println("No expired products found.")
		return subcommands.ExitSuccess
	}

	if status := saveInventory(store, inv); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("✅ Removed %d expired product(s)\n", removed)
	return subcommands.ExitSuccess
}
