package stockroom

import (
	"fmt"
	"strings"
)

// Kind is a typed string identifying a product category. The values are the
// exact tags stored in data files.
type Kind string

// Product category tags as persisted in the inventory snapshot.
const (
	KindElectronic Kind = "ElectronicProduct"
	KindClothing   Kind = "ClothingProduct"
	KindGrocery    Kind = "GroceryProduct"
)

// ParseKind parses a product category from a string. It accepts both the
// persisted tag ("GroceryProduct") and the short form used on the command
// line ("grocery").
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "Product")
	switch strings.ToLower(s) {
	case "electronic", "electronics":
		return KindElectronic, nil
	case "clothing":
		return KindClothing, nil
	case "grocery", "groceries":
		return KindGrocery, nil
	default:
		return "", fmt.Errorf("unknown product kind: %q", s)
	}
}

// Product defines the common capability set of all product categories.
// Callers operate on this interface without knowing the concrete variant;
// variant-specific fields are reached only after a type assertion (during
// display or persistence).
type Product interface {
	ID() string
	Name() string
	Price() Money
	Stock() int
	Kind() Kind          // Kind returns the category tag of the product.
	Details() string     // Details returns a human-readable summary including category-specific fields.
	TotalValue() Money   // TotalValue returns price multiplied by the quantity in stock.
	Restock(amount int) error
	Sell(amount int) error
	Equal(Product) bool
}

// item carries the fields shared by all product categories. It is meant to
// be embedded in the concrete variants.
type item struct {
	id    string
	name  string
	price Money
	stock int
}

// newItem validates and builds the shared product fields.
func newItem(id, name string, price Money, stock int) (item, error) {
	if strings.TrimSpace(id) == "" {
		return item{}, invalidData("product ID is empty")
	}
	if strings.TrimSpace(name) == "" {
		return item{}, invalidData("product name is empty")
	}
	if price.IsNegative() {
		return item{}, invalidData("price of %q must not be negative, got %s", id, price)
	}
	if stock < 0 {
		return item{}, invalidData("quantity of %q must not be negative, got %d", id, stock)
	}
	return item{id: id, name: name, price: price, stock: stock}, nil
}

func (p *item) ID() string        { return p.id }
func (p *item) Name() string      { return p.name }
func (p *item) Price() Money      { return p.price }
func (p *item) Stock() int        { return p.stock }
func (p *item) TotalValue() Money { return p.price.Mul(p.stock) }

// Restock increases the stock by amount. The amount must be positive.
func (p *item) Restock(amount int) error {
	if amount <= 0 {
		return invalidData("restock amount must be positive, got %d", amount)
	}
	p.stock += amount
	return nil
}

// Sell decreases the stock by amount. The amount must be positive and not
// exceed the current stock; on failure the stock is left unchanged.
func (p *item) Sell(amount int) error {
	if amount <= 0 {
		return invalidData("sell amount must be positive, got %d", amount)
	}
	if amount > p.stock {
		return &InsufficientStockError{Name: p.name, Requested: amount, Available: p.stock}
	}
	p.stock -= amount
	return nil
}

// summary is the shared part of Details.
func (p *item) summary() string {
	return fmt.Sprintf("ID: %s, Name: %s, Price: %s, Stock: %d", p.id, p.name, p.price, p.stock)
}

// equalItem compares the shared fields.
func (p *item) equalItem(o *item) bool {
	return p.id == o.id && p.name == o.name && p.price.Equal(o.price) && p.stock == o.stock
}

// --- Electronic ---

// Electronic is a product with a warranty and a brand.
type Electronic struct {
	item
	warrantyYears int
	brand         string
}

// NewElectronic creates an electronic product. The warranty must not be negative.
func NewElectronic(id, name string, price Money, stock, warrantyYears int, brand string) (*Electronic, error) {
	base, err := newItem(id, name, price, stock)
	if err != nil {
		return nil, err
	}
	if warrantyYears < 0 {
		return nil, invalidData("warranty of %q must not be negative, got %d years", id, warrantyYears)
	}
	return &Electronic{item: base, warrantyYears: warrantyYears, brand: brand}, nil
}

func (p *Electronic) Kind() Kind         { return KindElectronic }
func (p *Electronic) WarrantyYears() int { return p.warrantyYears }
func (p *Electronic) Brand() string      { return p.brand }

func (p *Electronic) Details() string {
	return fmt.Sprintf("%s, Warranty: %d years, Brand: %s", p.summary(), p.warrantyYears, p.brand)
}

func (p *Electronic) Equal(other Product) bool {
	o, ok := other.(*Electronic)
	return ok && p.equalItem(&o.item) && p.warrantyYears == o.warrantyYears && p.brand == o.brand
}

// --- Clothing ---

// Clothing is a product with a size and a material.
type Clothing struct {
	item
	size     string
	material string
}

// NewClothing creates a clothing product.
func NewClothing(id, name string, price Money, stock int, size, material string) (*Clothing, error) {
	base, err := newItem(id, name, price, stock)
	if err != nil {
		return nil, err
	}
	return &Clothing{item: base, size: size, material: material}, nil
}

func (p *Clothing) Kind() Kind       { return KindClothing }
func (p *Clothing) Size() string     { return p.size }
func (p *Clothing) Material() string { return p.material }

func (p *Clothing) Details() string {
	return fmt.Sprintf("%s, Size: %s, Material: %s", p.summary(), p.size, p.material)
}

func (p *Clothing) Equal(other Product) bool {
	o, ok := other.(*Clothing)
	return ok && p.equalItem(&o.item) && p.size == o.size && p.material == o.material
}

// --- Grocery ---

// Grocery is a product with an expiry date.
type Grocery struct {
	item
	expiry Date
}

// NewGrocery creates a grocery product. The expiry date is required.
func NewGrocery(id, name string, price Money, stock int, expiry Date) (*Grocery, error) {
	base, err := newItem(id, name, price, stock)
	if err != nil {
		return nil, err
	}
	if expiry.IsZero() {
		return nil, invalidData("expiry date of %q is missing", id)
	}
	return &Grocery{item: base, expiry: expiry}, nil
}

// ParseExpiry parses an expiry date from user or file input, reporting
// failures as InvalidProductDataError.
func ParseExpiry(s string) (Date, error) {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, &InvalidProductDataError{Reason: fmt.Sprintf("unparsable expiry date %q", s), Err: err}
	}
	return d, nil
}

func (p *Grocery) Kind() Kind   { return KindGrocery }
func (p *Grocery) Expiry() Date { return p.expiry }

// IsExpired reports whether the expiry date is strictly before today.
func (p *Grocery) IsExpired() bool { return p.expiry.Before(Today()) }

func (p *Grocery) Details() string {
	return fmt.Sprintf("%s, Expiry: %s, Expired: %t", p.summary(), p.expiry, p.IsExpired())
}

func (p *Grocery) Equal(other Product) bool {
	o, ok := other.(*Grocery)
	return ok && p.equalItem(&o.item) && p.expiry == o.expiry
}
