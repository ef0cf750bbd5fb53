package product

import "github.com/shopspring/decimal"

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
	Featured    bool   `json:"featured"`
}

// UnitPrice parses Price. Prices are kept as strings so that no float
// conversion happens between the catalog and an order snapshot.
func (p Product) UnitPrice() (decimal.Decimal, error) {
	return decimal.NewFromString(p.Price)
}
