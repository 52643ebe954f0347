// Package renderer formats inventory and sales data as markdown reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stockroom"
)

// tableRenderer accumulates markdown output.
type tableRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *tableRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// kindLabel returns the human form of a category tag ("Grocery" for
// "GroceryProduct").
func kindLabel(k stockroom.Kind) string {
	return strings.TrimSuffix(string(k), "Product")
}

// variantDetails returns the category-specific columns of a product as a
// short string for table cells.
func variantDetails(p stockroom.Product) string {
	switch v := p.(type) {
	case *stockroom.Electronic:
		return fmt.Sprintf("Warranty: %d years, Brand: %s", v.WarrantyYears(), v.Brand())
	case *stockroom.Clothing:
		return fmt.Sprintf("Size: %s, Material: %s", v.Size(), v.Material())
	case *stockroom.Grocery:
		if v.IsExpired() {
			return fmt.Sprintf("Expiry: %s (expired)", v.Expiry())
		}
		return fmt.Sprintf("Expiry: %s", v.Expiry())
	default:
		return ""
	}
}

// InventoryMarkdown generates a markdown report of all products in the
// inventory, followed by the total inventory value.
func InventoryMarkdown(inv *stockroom.Inventory) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# Inventory\n\n")
	if inv.Len() == 0 {
		r.Printf("The inventory is empty.\n")
		return r.String()
	}
	renderProductTable(r, inv.Products())
	r.Printf("\nTotal value: **%s** (%d products)\n", inv.TotalValue(), inv.Len())
	return r.String()
}

// ProductsMarkdown generates a markdown report for a subset of products,
// typically search results.
func ProductsMarkdown(title string, products []stockroom.Product) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# %s\n\n", title)
	if len(products) == 0 {
		r.Printf("No products found.\n")
		return r.String()
	}
	renderProductTable(r, func(yield func(stockroom.Product) bool) {
		for _, p := range products {
			if !yield(p) {
				return
			}
		}
	})
	return r.String()
}

func renderProductTable(r *tableRenderer, products func(func(stockroom.Product) bool)) {
	r.Printf("| ID | Name | Category | Price | Stock | Value | Details |\n")
	r.Printf("|:---|:---|:---|---:|---:|---:|:---|\n")
	for p := range products {
		r.Printf("| %s | %s | %s | %s | %d | %s | %s |\n",
			p.ID(), p.Name(), kindLabel(p.Kind()), p.Price(), p.Stock(), p.TotalValue(), variantDetails(p))
	}
}

// SalesMarkdown generates a markdown report of the sales ledger in
// chronological order, followed by the total proceeds.
func SalesMarkdown(ledger *stockroom.Ledger) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# Sales History\n\n")
	if ledger.Len() == 0 {
		r.Printf("No sales recorded.\n")
		return r.String()
	}
	r.Printf("| # | Timestamp | Product | ID | Qty | Unit Price | Total |\n")
	r.Printf("|---:|:---|:---|:---|---:|---:|---:|\n")
	for i, rec := range ledger.Sales() {
		r.Printf("| %d | %s | %s | %s | %d | %s | %s |\n",
			i+1, rec.Timestamp().Format("2006-01-02 15:04:05"), rec.ProductName(),
			rec.ProductID(), rec.Quantity(), rec.UnitPrice(), rec.Total())
	}
	r.Printf("\nTotal revenue: **%s** (%d sales)\n", revenueLabel(ledger), ledger.Len())
	return r.String()
}

// revenueLabel formats the ledger's revenue, one amount per currency sold
// in.
func revenueLabel(ledger *stockroom.Ledger) string {
	var amounts []string
	for _, m := range ledger.Revenue() {
		amounts = append(amounts, m.String())
	}
	if len(amounts) == 0 {
		return stockroom.M(0, "").String()
	}
	return strings.Join(amounts, ", ")
}

// SummaryMarkdown generates a compact overview of the inventory: product
// count per category, total value, and the number of recorded sales.
func SummaryMarkdown(inv *stockroom.Inventory) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# Summary\n\n")
	r.Printf("| Category | Products | Units | Value |\n")
	r.Printf("|:---|---:|---:|---:|\n")
	for _, kind := range []stockroom.Kind{stockroom.KindElectronic, stockroom.KindClothing, stockroom.KindGrocery} {
		products := inv.SearchByKind(kind)
		units := 0
		value := stockroom.M(0, inv.Currency())
		for _, p := range products {
			units += p.Stock()
			value = value.Add(p.TotalValue())
		}
		r.Printf("| %s | %d | %d | %s |\n", kindLabel(kind), len(products), units, value)
	}
	r.Printf("\nTotal value: **%s** across %d products, %d sales recorded.\n",
		inv.TotalValue(), inv.Len(), inv.Ledger().Len())
	return r.String()
}
