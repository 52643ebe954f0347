package stockroom

import "fmt"

// The error types below are the recoverable conditions the core can signal.
// Presentation layers match on them with errors.As and turn them into
// user-facing messages; the core never terminates the process.

// DuplicateProductError is returned when inserting a product whose ID is
// already present in the inventory.
type DuplicateProductError struct {
	ID string
}

func (e *DuplicateProductError) Error() string {
	return fmt.Sprintf("product with ID %q already exists", e.ID)
}

// NotFoundError is returned when an operation targets an unknown product ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with ID %q not found", e.ID)
}

// InsufficientStockError is returned when a sale requests more units than
// are currently in stock. Available is the stock at the time of the attempt.
type InsufficientStockError struct {
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Name, e.Requested, e.Available)
}

// InvalidProductDataError is returned when constructing a product from bad
// input, or when a persisted record is malformed (unknown type tag, missing
// field, unparsable expiry date, negative price...).
type InvalidProductDataError struct {
	Reason string
	Err    error // underlying parse error, if any
}

func (e *InvalidProductDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid product data: %s: %v", e.Reason, e.Err)
	}
	return "invalid product data: " + e.Reason
}

func (e *InvalidProductDataError) Unwrap() error { return e.Err }

// invalidData is a shorthand used by constructors and decoders.
func invalidData(format string, args ...any) *InvalidProductDataError {
	return &InvalidProductDataError{Reason: fmt.Sprintf(format, args...)}
}
