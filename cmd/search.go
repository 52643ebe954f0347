package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct {
	name string
	kind string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search products by name or category" }
func (*searchCmd) Usage() string {
	return `stk search [-name <query>] [-kind <kind>]

  Lists the products whose name contains the query (case-insensitive),
  or all products of a category. At least one of -name and -kind is
  required; with both, only products matching both are listed.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name substring to search for, case-insensitive")
	f.StringVar(&c.kind, "kind", "", "Product category: electronic, clothing, or grocery")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" && c.kind == "" {
		fmt.Fprintln(os.Stderr, "Error: at least one of -name and -kind flags is required.")
		return subcommands.ExitUsageError
	}

	inv, _, err := loadInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	var matches []stockroom.Product
	if c.name != "" {
		matches = inv.SearchByName(c.name)
	} else {
		matches = nil
		for p := range inv.Products() {
			matches = append(matches, p)
		}
	}

	if c.kind != "" {
		kind, err := stockroom.ParseKind(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		var filtered []stockroom.Product
		for _, p := range matches {
			if p.Kind() == kind {
				filtered = append(filtered, p)
			}
		}
		matches = filtered
	}

	printMarkdown(renderer.ProductsMarkdown("Search Results", matches))
	return subcommands.ExitSuccess
}
