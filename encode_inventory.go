package stockroom

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// itemRec holds the fields shared by every persisted product record. Price
// and Quantity are pointers to tell a missing field from a zero value.
type itemRec struct {
	Type     Kind             `json:"type"`
	ID       string           `json:"product_id"`
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Currency string           `json:"currency,omitempty"`
	Quantity *int             `json:"quantity"`
}

// check rejects records missing a required field the constructors would
// otherwise read as zero.
func (r itemRec) check() error {
	if r.Price == nil {
		return invalidData("record %q is missing a price", r.ID)
	}
	if r.Quantity == nil {
		return invalidData("record %q is missing a quantity", r.ID)
	}
	return nil
}

func (r itemRec) Money() Money { return M(*r.Price, r.Currency) }

// EncodeProduct marshals a single product to JSON and writes it to the
// writer, followed by a newline, in JSONL format. Keys are written in a
// canonical order so snapshots are diff-friendly.
func EncodeProduct(w io.Writer, p Product) error {
	var ow jsonObjectWriter
	ow.Append("type", p.Kind())
	ow.Append("product_id", p.ID())
	ow.Append("name", p.Name())
	ow.Append("price", p.Price().rounded())
	ow.Append("currency", p.Price().Currency())
	ow.Append("quantity", p.Stock())

	switch v := p.(type) {
	case *Electronic:
		ow.Append("warranty_years", v.WarrantyYears())
		ow.Append("brand", v.Brand())
	case *Clothing:
		ow.Append("size", v.Size())
		ow.Append("material", v.Material())
	case *Grocery:
		ow.Append("expiry_date", v.Expiry())
	default:
		return fmt.Errorf("unsupported product type: %T", p)
	}

	data, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal product %q: %w", p.ID(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write product %q: %w", p.ID(), err)
	}
	return nil
}

// EncodeInventory persists all products to an io.Writer in JSONL format, in
// insertion order.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	for p := range inv.Products() {
		if err := EncodeProduct(w, p); err != nil {
			return err
		}
	}
	return nil
}

// DecodeInventory reads a stream of JSONL product records, dispatches on
// each record's "type" tag to rebuild the concrete product, and returns a
// populated Inventory recording into the given ledger.
//
// A single malformed record rejects the whole batch with
// InvalidProductDataError: a partially loaded inventory would silently
// drop data on the next save.
func DecodeInventory(r io.Reader, ledger *Ledger, events EventSink) (*Inventory, error) {
	inv := NewInventory(ledger, events)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		p, err := decodeProduct(lineBytes)
		if err != nil {
			return nil, err
		}
		if err := inv.insert(p); err != nil {
			var dup *DuplicateProductError
			if errors.As(err, &dup) {
				return nil, &InvalidProductDataError{Reason: "duplicate record", Err: err}
			}
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return inv, nil
}

// DecodeProduct rebuilds one product from a single JSON record, as accepted
// by the web API.
func DecodeProduct(record []byte) (Product, error) {
	return decodeProduct(record)
}

// decodeProduct rebuilds one product from its persisted record. The concrete
// type is chosen by an explicit match on the "type" tag.
func decodeProduct(lineBytes []byte) (Product, error) {
	var identifier struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(lineBytes, &identifier); err != nil {
		return nil, &InvalidProductDataError{
			Reason: fmt.Sprintf("could not identify record %q", string(lineBytes)),
			Err:    err,
		}
	}

	switch identifier.Type {
	case KindElectronic:
		var temp struct {
			itemRec
			WarrantyYears int    `json:"warranty_years"`
			Brand         string `json:"brand"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, &InvalidProductDataError{Reason: "malformed electronic record", Err: err}
		}
		if err := temp.check(); err != nil {
			return nil, err
		}
		return NewElectronic(temp.ID, temp.Name, temp.Money(), *temp.Quantity, temp.WarrantyYears, temp.Brand)
	case KindClothing:
		var temp struct {
			itemRec
			Size     string `json:"size"`
			Material string `json:"material"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, &InvalidProductDataError{Reason: "malformed clothing record", Err: err}
		}
		if err := temp.check(); err != nil {
			return nil, err
		}
		return NewClothing(temp.ID, temp.Name, temp.Money(), *temp.Quantity, temp.Size, temp.Material)
	case KindGrocery:
		var temp struct {
			itemRec
			Expiry Date `json:"expiry_date"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, &InvalidProductDataError{Reason: "malformed grocery record", Err: err}
		}
		if err := temp.check(); err != nil {
			return nil, err
		}
		return NewGrocery(temp.ID, temp.Name, temp.Money(), *temp.Quantity, temp.Expiry)
	default:
		return nil, invalidData("unknown product type: %q", identifier.Type)
	}
}
