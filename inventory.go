package stockroom

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

// Inventory is a keyed collection of products. Keys (product IDs) are unique
// and enforced at insert time; iteration follows insertion order. The
// inventory exclusively owns its products.
type Inventory struct {
	products map[string]Product
	order    []string // product IDs in insertion order
	ledger   *Ledger
	events   EventSink
}

// NewInventory creates an empty inventory that records completed sales in
// the given ledger. A nil sink discards events.
func NewInventory(ledger *Ledger, events EventSink) *Inventory {
	if events == nil {
		events = DiscardEvents
	}
	return &Inventory{
		products: make(map[string]Product),
		ledger:   ledger,
		events:   events,
	}
}

// Ledger returns the sales ledger this inventory records into.
func (inv *Inventory) Ledger() *Ledger { return inv.ledger }

// Add inserts a product. It fails with DuplicateProductError when a product
// with the same ID is already present.
func (inv *Inventory) Add(p Product) error {
	if err := inv.insert(p); err != nil {
		return err
	}
	inv.events("added product: %s (ID: %s)", p.Name(), p.ID())
	return nil
}

// insert is Add without the event, used when decoding a snapshot.
func (inv *Inventory) insert(p Product) error {
	if _, exists := inv.products[p.ID()]; exists {
		return &DuplicateProductError{ID: p.ID()}
	}
	// All products share one currency: totals are sums, not conversions.
	if got, want := p.Price().Currency(), inv.Currency(); inv.Len() > 0 && got != want {
		return invalidData("product %q is priced in %s, the inventory uses %s", p.ID(), got, want)
	}
	inv.products[p.ID()] = p
	inv.order = append(inv.order, p.ID())
	return nil
}

// Get returns the product with the given ID, or false if unknown.
func (inv *Inventory) Get(id string) (Product, bool) {
	p, ok := inv.products[id]
	return p, ok
}

// Remove deletes the product with the given ID and returns it. It fails
// with NotFoundError when the ID is unknown.
func (inv *Inventory) Remove(id string) (Product, error) {
	p, ok := inv.products[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	delete(inv.products, id)
	if i := slices.Index(inv.order, id); i >= 0 {
		inv.order = slices.Delete(inv.order, i, i+1)
	}
	inv.events("removed product: %s (ID: %s)", p.Name(), id)
	return p, nil
}

// Restock looks up the product and increases its stock. It propagates
// not-found and validation errors.
func (inv *Inventory) Restock(id string, amount int) error {
	p, ok := inv.products[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	if err := p.Restock(amount); err != nil {
		return fmt.Errorf("cannot restock %q: %w", id, err)
	}
	inv.events("restocked %s (ID: %s) with %d units", p.Name(), id, amount)
	return nil
}

// Sell looks up the product, decreases its stock and appends a SaleRecord
// with the current timestamp and the price at the time of the sale. The
// stock decrement and the record are atomic from the caller's perspective:
// when the sale fails nothing is appended and the stock is unchanged.
func (inv *Inventory) Sell(id string, amount int) (SaleRecord, error) {
	p, ok := inv.products[id]
	if !ok {
		return SaleRecord{}, &NotFoundError{ID: id}
	}
	if err := p.Sell(amount); err != nil {
		return SaleRecord{}, fmt.Errorf("cannot sell %q: %w", id, err)
	}
	rec := inv.ledger.Record(p, amount, time.Now())
	inv.events("sold %d units of %s (ID: %s)", amount, p.Name(), id)
	return rec, nil
}

// SearchByName returns the products whose name contains the query,
// case-insensitively, in insertion order. It never fails; no match yields
// an empty slice.
func (inv *Inventory) SearchByName(query string) []Product {
	query = strings.ToLower(query)
	var matches []Product
	for p := range inv.Products() {
		if strings.Contains(strings.ToLower(p.Name()), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// SearchByKind returns the products of the given category, in insertion
// order.
func (inv *Inventory) SearchByKind(kind Kind) []Product {
	var matches []Product
	for p := range inv.Products() {
		if p.Kind() == kind {
			matches = append(matches, p)
		}
	}
	return matches
}

// Products returns an iterator over all products in insertion order.
func (inv *Inventory) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, id := range inv.order {
			if !yield(inv.products[id]) {
				return
			}
		}
	}
}

// Len returns the number of products held.
func (inv *Inventory) Len() int { return len(inv.order) }

// Currency returns the currency shared by every product, DefaultCurrency
// for an empty inventory.
func (inv *Inventory) Currency() string {
	if len(inv.order) == 0 {
		return DefaultCurrency
	}
	return inv.products[inv.order[0]].Price().Currency()
}

// TotalValue returns the sum of every product's total value, zero for an
// empty inventory.
func (inv *Inventory) TotalValue() Money {
	total := M(0, inv.Currency())
	for p := range inv.Products() {
		total = total.Add(p.TotalValue())
	}
	return total
}

// RemoveExpired removes every grocery product whose expiry date has passed
// and returns the number removed. Other categories are untouched.
func (inv *Inventory) RemoveExpired() int {
	var expired []string
	for p := range inv.Products() {
		if g, ok := p.(*Grocery); ok && g.IsExpired() {
			expired = append(expired, g.ID())
		}
	}
	for _, id := range expired {
		// Remove cannot fail here, the IDs were just collected.
		inv.Remove(id)
	}
	if len(expired) > 0 {
		inv.events("removed expired products: %v", expired)
	}
	return len(expired)
}
