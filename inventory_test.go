package stockroom

import (
	"errors"
	"slices"
	"testing"
)

func newTestInventory() *Inventory {
	return NewInventory(NewLedger(nil), nil)
}

func TestInventory_AddAndGet(t *testing.T) {
	inv := newTestInventory()
	p := mustGrocery("G001", "Milk", 3.99, 20, "2030-06-01")

	if err := inv.Add(p); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	got, ok := inv.Get("G001")
	if !ok {
		t.Fatalf("Get(G001) not found after Add")
	}
	if !got.Equal(p) {
		t.Errorf("Get(G001) = %v, want %v", got.Details(), p.Details())
	}
}

func TestInventory_AddDuplicate(t *testing.T) {
	inv := newTestInventory()
	if err := inv.Add(mustGrocery("G001", "Milk", 3.99, 20, "2030-06-01")); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	err := inv.Add(mustGrocery("G001", "Other Milk", 2.99, 5, "2030-06-01"))
	var dup *DuplicateProductError
	if !errors.As(err, &dup) {
		t.Fatalf("Add() duplicate got err %v, want DuplicateProductError", err)
	}

	// the store is unchanged: still one product, the original one.
	if got, want := inv.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	p, _ := inv.Get("G001")
	if got, want := p.Name(), "Milk"; got != want {
		t.Errorf("Get(G001).Name() = %q, want %q", got, want)
	}
}

func TestInventory_RejectsMixedCurrencies(t *testing.T) {
	inv := newTestInventory()
	if err := inv.Add(mustGrocery("G001", "Milk", 3.99, 20, "2030-06-01")); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	tv, err := NewElectronic("E001", "TV", M(199.99, "EUR"), 2, 1, "Philips")
	if err != nil {
		t.Fatalf("NewElectronic() failed: %v", err)
	}
	err = inv.Add(tv)
	var invalid *InvalidProductDataError
	if !errors.As(err, &invalid) {
		t.Fatalf("Add() with another currency got err %v, want InvalidProductDataError", err)
	}

	// the store is unchanged and its totals still work.
	if got, want := inv.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := inv.TotalValue(), USD(79.80); !got.Equal(want) {
		t.Errorf("TotalValue() = %s, want %s", got, want)
	}
}

func TestInventory_TotalValueSingleForeignCurrency(t *testing.T) {
	inv := newTestInventory()
	shirt, err := NewClothing("C001", "Shirt", M(10.0, "EUR"), 3, "M", "cotton")
	if err != nil {
		t.Fatalf("NewClothing() failed: %v", err)
	}
	if err := inv.Add(shirt); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if got, want := inv.Currency(), "EUR"; got != want {
		t.Errorf("Currency() = %q, want %q", got, want)
	}
	if got, want := inv.TotalValue(), M(30.0, "EUR"); !got.Equal(want) {
		t.Errorf("TotalValue() = %s, want %s", got, want)
	}
}

func TestInventory_Remove(t *testing.T) {
	inv := newTestInventory()
	inv.Add(mustClothing("C001", "Shirt", 12.50, 8, "M", "cotton"))

	if _, err := inv.Remove("C001"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if _, ok := inv.Get("C001"); ok {
		t.Errorf("Get(C001) still present after Remove")
	}

	_, err := inv.Remove("C001")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Remove() of unknown id got err %v, want NotFoundError", err)
	}
}

func TestInventory_Sell(t *testing.T) {
	inv := newTestInventory()
	inv.Add(mustGrocery("G001", "Milk", 3.99, 20, "2030-06-01"))

	rec, err := inv.Sell("G001", 5)
	if err != nil {
		t.Fatalf("Sell() failed: %v", err)
	}

	p, _ := inv.Get("G001")
	if got, want := p.Stock(), 15; got != want {
		t.Errorf("Stock() = %d, want %d", got, want)
	}
	if got, want := inv.Ledger().Len(), 1; got != want {
		t.Fatalf("Ledger().Len() = %d, want %d", got, want)
	}
	if got, want := rec.UnitPrice(), USD(3.99); !got.Equal(want) {
		t.Errorf("UnitPrice() = %s, want %s", got, want)
	}
	if got, want := rec.Total(), USD(19.95); !got.Equal(want) {
		t.Errorf("Total() = %s, want %s", got, want)
	}
	if rec.SaleID() == "" {
		t.Errorf("SaleID() is empty")
	}
	if got, want := inv.TotalValue(), USD(59.85); !got.Equal(want) {
		t.Errorf("TotalValue() = %s, want %s", got, want)
	}
}

func TestInventory_SellInsufficientStock(t *testing.T) {
	inv := newTestInventory()
	inv.Add(mustGrocery("G001", "Milk", 3.99, 15, "2030-06-01"))

	_, err := inv.Sell("G001", 100)
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Sell() got err %v, want InsufficientStockError", err)
	}

	// stock unchanged, and nothing appended to the ledger.
	p, _ := inv.Get("G001")
	if got, want := p.Stock(), 15; got != want {
		t.Errorf("Stock() = %d, want %d", got, want)
	}
	if got, want := inv.Ledger().Len(), 0; got != want {
		t.Errorf("Ledger().Len() = %d, want %d", got, want)
	}
}

func TestInventory_SellUnknown(t *testing.T) {
	inv := newTestInventory()
	_, err := inv.Sell("NOPE", 1)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Sell() of unknown id got err %v, want NotFoundError", err)
	}
}

func TestInventory_Search(t *testing.T) {
	inv := newTestInventory()
	inv.Add(mustGrocery("G001", "Whole Milk", 3.99, 20, "2030-06-01"))
	inv.Add(mustClothing("C001", "Shirt", 12.50, 8, "M", "cotton"))
	inv.Add(mustGrocery("G002", "Oat Milk", 4.99, 10, "2030-06-01"))
	inv.Add(mustElectronic("E001", "Milk Frother", 29.99, 3, 1, "Philips"))

	ids := func(ps []Product) []string {
		var out []string
		for _, p := range ps {
			out = append(out, p.ID())
		}
		return out
	}

	// case-insensitive substring match on the name, insertion order.
	got := ids(inv.SearchByName("milk"))
	want := []string{"G001", "G002", "E001"}
	if !slices.Equal(got, want) {
		t.Errorf("SearchByName(milk) = %v, want %v", got, want)
	}

	got = ids(inv.SearchByKind(KindGrocery))
	want = []string{"G001", "G002"}
	if !slices.Equal(got, want) {
		t.Errorf("SearchByKind(grocery) = %v, want %v", got, want)
	}

	// no match is an empty result, not an error.
	if got := inv.SearchByName("caviar"); len(got) != 0 {
		t.Errorf("SearchByName(caviar) = %v, want empty", ids(got))
	}
}

func TestInventory_TotalValueEmpty(t *testing.T) {
	inv := newTestInventory()
	if got := inv.TotalValue(); !got.IsZero() {
		t.Errorf("TotalValue() of empty inventory = %s, want zero", got)
	}
}

func TestInventory_RemoveExpired(t *testing.T) {
	inv := newTestInventory()
	inv.Add(mustGrocery("G001", "Old Milk", 3.99, 2, Today().Add(-10).String()))
	inv.Add(mustGrocery("G002", "Fresh Milk", 3.99, 2, Today().Add(10).String()))
	inv.Add(mustElectronic("E001", "TV", 199.99, 4, 2, "Samsung"))

	if got, want := inv.RemoveExpired(), 1; got != want {
		t.Fatalf("RemoveExpired() = %d, want %d", got, want)
	}
	if _, ok := inv.Get("G001"); ok {
		t.Errorf("expired G001 still present")
	}
	if _, ok := inv.Get("G002"); !ok {
		t.Errorf("fresh G002 was removed")
	}
	if _, ok := inv.Get("E001"); !ok {
		t.Errorf("non-grocery E001 was removed")
	}
}

func TestInventory_Events(t *testing.T) {
	var lines []string
	sink := func(format string, args ...any) {
		lines = append(lines, format)
	}
	inv := NewInventory(NewLedger(sink), sink)

	inv.Add(mustGrocery("G001", "Milk", 3.99, 20, "2030-06-01"))
	inv.Restock("G001", 5)
	inv.Sell("G001", 5)
	inv.Remove("G001")

	// one line per mutating operation, plus one from the ledger.
	if got, want := len(lines), 5; got != want {
		t.Errorf("got %d event lines, want %d: %v", got, want, lines)
	}
}
