package stockroom

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// saleRec is a specialized struct for decoding persisted sale records. The
// pointer fields tell a missing field from a zero value.
type saleRec struct {
	SaleID      string           `json:"sale_id"`
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	Quantity    int              `json:"quantity_sold"`
	UnitPrice   *decimal.Decimal `json:"unit_price_at_sale"`
	Currency    string           `json:"currency,omitempty"`
	Timestamp   *time.Time       `json:"timestamp"`
}

// EncodeSale marshals a single sale record to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeSale(w io.Writer, rec SaleRecord) error {
	var ow jsonObjectWriter
	ow.Append("sale_id", rec.SaleID())
	ow.Append("product_id", rec.ProductID())
	ow.Append("product_name", rec.ProductName())
	ow.Append("quantity_sold", rec.Quantity())
	ow.Append("unit_price_at_sale", rec.UnitPrice().rounded())
	ow.Append("currency", rec.UnitPrice().Currency())
	ow.Append("total_price", rec.Total().rounded())
	ow.Append("timestamp", rec.Timestamp().Format(time.RFC3339Nano))

	data, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal sale %q: %w", rec.SaleID(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write sale %q: %w", rec.SaleID(), err)
	}
	return nil
}

// EncodeLedger persists all sale records to an io.Writer in JSONL format,
// in chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, rec := range l.Sales() {
		if err := EncodeSale(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a stream of JSONL sale records and returns a populated
// ledger. Like inventory decoding, one malformed record rejects the batch.
func DecodeLedger(r io.Reader, events EventSink) (*Ledger, error) {
	ledger := NewLedger(events)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var temp saleRec
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, &InvalidProductDataError{
				Reason: fmt.Sprintf("malformed sale record %q", string(lineBytes)),
				Err:    err,
			}
		}
		if temp.ProductID == "" {
			return nil, invalidData("sale record is missing product_id")
		}
		if temp.Quantity <= 0 {
			return nil, invalidData("sale of %q must have a positive quantity, got %d", temp.ProductID, temp.Quantity)
		}
		if temp.UnitPrice == nil {
			return nil, invalidData("sale of %q is missing a unit price", temp.ProductID)
		}
		if temp.UnitPrice.IsNegative() {
			return nil, invalidData("sale of %q must not have a negative unit price, got %s", temp.ProductID, temp.UnitPrice)
		}
		if temp.Timestamp == nil {
			return nil, invalidData("sale of %q is missing a timestamp", temp.ProductID)
		}
		if temp.SaleID == "" {
			// Records written before sale IDs were introduced.
			temp.SaleID = uuid.NewString()
		}

		ledger.append(SaleRecord{
			saleID:      temp.SaleID,
			productID:   temp.ProductID,
			productName: temp.ProductName,
			quantity:    temp.Quantity,
			unitPrice:   M(*temp.UnitPrice, temp.Currency),
			timestamp:   *temp.Timestamp,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}
