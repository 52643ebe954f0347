package web

import (
	"github.com/etnz/stockroom"
)

// productForm carries the fields of the add-product form and of the JSON
// create request. Category-specific fields are ignored for the other
// categories.
type productForm struct {
	Kind     string `form:"kind"`
	ID       string `form:"id"`
	Name     string `form:"name"`
	Price    string `form:"price"`
	Currency string `form:"currency"`
	Stock    int    `form:"stock"`
	Warranty int    `form:"warranty"`
	Brand    string `form:"brand"`
	Size     string `form:"size"`
	Material string `form:"material"`
	Expiry   string `form:"expiry"`
}

// build validates the form and constructs the concrete product.
func (f *productForm) build(defaultCurrency string) (stockroom.Product, error) {
	kind, err := stockroom.ParseKind(f.Kind)
	if err != nil {
		return nil, &stockroom.InvalidProductDataError{Reason: err.Error()}
	}

	currency := f.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	price, err := stockroom.ParsePrice(f.Price, currency)
	if err != nil {
		return nil, &stockroom.InvalidProductDataError{Reason: err.Error()}
	}

	switch kind {
	case stockroom.KindElectronic:
		return stockroom.NewElectronic(f.ID, f.Name, price, f.Stock, f.Warranty, f.Brand)
	case stockroom.KindClothing:
		return stockroom.NewClothing(f.ID, f.Name, price, f.Stock, f.Size, f.Material)
	default:
		expiry, err := stockroom.ParseExpiry(f.Expiry)
		if err != nil {
			return nil, err
		}
		return stockroom.NewGrocery(f.ID, f.Name, price, f.Stock, expiry)
	}
}

// quantityForm carries the qty field of the restock and sell forms.
type quantityForm struct {
	ID  string `form:"id"`
	Qty int    `form:"qty"`
}
