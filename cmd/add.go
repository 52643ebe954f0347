package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
)

type addCmd struct {
	kind     string
	id       string
	name     string
	price    string
	currency string
	stock    int
	warranty int
	brand    string
	size     string
	material string
	expiry   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new product to the inventory" }
func (*addCmd) Usage() string {
	return `stk add -kind <kind> -id <id> -name <name> -price <price> [-stock <n>] [category flags]

  Adds a new product to the inventory:
  - kind: the product category (electronic, clothing, grocery).
  - id: the unique product identifier (e.g. "E001").
  - name: the product name.
  - price: the unit price as a decimal (e.g. "999.99").

  Category flags:
  - electronic: -warranty <years> -brand <brand>
  - clothing:   -size <size> -material <material>
  - grocery:    -expiry <date> (required, e.g. "2026-09-15")
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Product category: electronic, clothing, or grocery (required)")
	f.StringVar(&c.id, "id", "", "Unique product identifier (required)")
	f.StringVar(&c.name, "name", "", "Product name (required)")
	f.StringVar(&c.price, "price", "", "Unit price as a decimal (required)")
	f.StringVar(&c.currency, "currency", "", "Price currency, 3-letter code (defaults to the configured currency)")
	f.IntVar(&c.stock, "stock", 0, "Initial stock quantity")
	f.IntVar(&c.warranty, "warranty", 0, "Warranty in years (electronic)")
	f.StringVar(&c.brand, "brand", "", "Brand (electronic)")
	f.StringVar(&c.size, "size", "", "Size (clothing)")
	f.StringVar(&c.material, "material", "", "Material (clothing)")
	f.StringVar(&c.expiry, "expiry", "", "Expiry date (grocery, required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.kind == "" || c.id == "" || c.name == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -kind, -id, -name, and -price flags are required.")
		return subcommands.ExitUsageError
	}

	kind, err := stockroom.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	inv, store, err := loadInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg, err := appConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	currency := c.currency
	if currency == "" {
		currency = cfg.Currency
	}
	price, err := stockroom.ParsePrice(c.price, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var product stockroom.Product
	switch kind {
	case stockroom.KindElectronic:
		product, err = stockroom.NewElectronic(c.id, c.name, price, c.stock, c.warranty, c.brand)
	case stockroom.KindClothing:
		product, err = stockroom.NewClothing(c.id, c.name, price, c.stock, c.size, c.material)
	case stockroom.KindGrocery:
		var expiry stockroom.Date
		expiry, err = stockroom.ParseExpiry(c.expiry)
		if err == nil {
			product, err = stockroom.NewGrocery(c.id, c.name, price, c.stock, expiry)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := inv.Add(product); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := saveInventory(store, inv); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("✅ Added %s\n", product.Details())
	return subcommands.ExitSuccess
}
