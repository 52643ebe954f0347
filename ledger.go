package stockroom

import (
	"iter"
	"time"

	"github.com/google/uuid"
)

// SaleRecord is an immutable record of one completed sale. It keeps a copy
// of the identifying product data: removing the product later does not
// corrupt the sales history.
type SaleRecord struct {
	saleID      string
	productID   string
	productName string
	quantity    int
	unitPrice   Money // price per unit at the time of the sale
	timestamp   time.Time
}

func (r SaleRecord) SaleID() string       { return r.saleID }
func (r SaleRecord) ProductID() string    { return r.productID }
func (r SaleRecord) ProductName() string  { return r.productName }
func (r SaleRecord) Quantity() int        { return r.quantity }
func (r SaleRecord) UnitPrice() Money     { return r.unitPrice }
func (r SaleRecord) Timestamp() time.Time { return r.timestamp }

// Total returns the proceeds of the sale.
func (r SaleRecord) Total() Money { return r.unitPrice.Mul(r.quantity) }

func (r SaleRecord) Equal(o SaleRecord) bool {
	return r.saleID == o.saleID &&
		r.productID == o.productID &&
		r.productName == o.productName &&
		r.quantity == o.quantity &&
		r.unitPrice.Equal(o.unitPrice) &&
		r.timestamp.Equal(o.timestamp)
}

// Ledger is the append-only, chronological sequence of sale records.
// Past records are never mutated or deleted.
type Ledger struct {
	records []SaleRecord
	events  EventSink
}

// NewLedger creates an empty ledger. A nil sink discards events.
func NewLedger(events EventSink) *Ledger {
	if events == nil {
		events = DiscardEvents
	}
	return &Ledger{events: events}
}

// Record creates a SaleRecord with a fresh sale ID and the given timestamp,
// appends it and returns it.
func (l *Ledger) Record(p Product, quantity int, at time.Time) SaleRecord {
	rec := SaleRecord{
		saleID:      uuid.NewString(),
		productID:   p.ID(),
		productName: p.Name(),
		quantity:    quantity,
		unitPrice:   p.Price(),
		timestamp:   at,
	}
	l.records = append(l.records, rec)
	l.events("sale processed: %s x%d for %s", rec.productName, rec.quantity, rec.Total())
	return rec
}

// append adds an already-built record, used when decoding a snapshot.
func (l *Ledger) append(rec SaleRecord) {
	l.records = append(l.records, rec)
}

// Revenue returns the sum of all sale totals, one Money per currency in
// order of first appearance. A ledger can span a currency change: old
// records keep the price they were sold at.
func (l *Ledger) Revenue() []Money {
	var order []string
	sums := make(map[string]Money)
	for _, rec := range l.records {
		total := rec.Total()
		if _, seen := sums[total.Currency()]; !seen {
			order = append(order, total.Currency())
		}
		sums[total.Currency()] = sums[total.Currency()].Add(total)
	}
	revenue := make([]Money, 0, len(order))
	for _, cur := range order {
		revenue = append(revenue, sums[cur])
	}
	return revenue
}

// Sales returns an iterator over the records in chronological (insertion)
// order.
func (l *Ledger) Sales() iter.Seq2[int, SaleRecord] {
	return func(yield func(int, SaleRecord) bool) {
		for i, rec := range l.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Len returns the number of recorded sales.
func (l *Ledger) Len() int { return len(l.records) }
