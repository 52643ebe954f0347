package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the snapshot files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `stk fmt

  Validates and formats the snapshot files. This command reads both the
  inventory and the sales ledger, validates every record, and writes the
  files back in a canonical JSONL form: fixed key order, prices as plain
  decimals, dates in ISO format. A corrupt record rejects the whole file.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, store, err := loadInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load snapshots: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := saveInventory(store, inv); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("✅ Successfully formatted %d product(s) and %d sale(s) in %s\n",
		inv.Len(), inv.Ledger().Len(), store.Dir())
	return subcommands.ExitSuccess
}
