package stockroom

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// mustElectronic builds a valid electronic product or panics; for tests that
// are not about constructor validation.
func mustElectronic(id, name string, price float64, stock, warranty int, brand string) *Electronic {
	p, err := NewElectronic(id, name, USD(price), stock, warranty, brand)
	if err != nil {
		panic(err.Error())
	}
	return p
}

func mustClothing(id, name string, price float64, stock int, size, material string) *Clothing {
	p, err := NewClothing(id, name, USD(price), stock, size, material)
	if err != nil {
		panic(err.Error())
	}
	return p
}

func mustGrocery(id, name string, price float64, stock int, expiry string) *Grocery {
	p, err := NewGrocery(id, name, USD(price), stock, MustParseDate(expiry))
	if err != nil {
		panic(err.Error())
	}
	return p
}
