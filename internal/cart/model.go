package cart

import (
	"storefront-be/internal/product"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartLine is a cart item joined with the current catalog entry. Its price
// follows the catalog; only orders snapshot prices.
type CartLine struct {
	CartItem
	Product product.Product `json:"product"`
}

type AddToCartParams struct {
	SessionID string
	ProductID string
	Quantity  int
}

type UpdateCartParams struct {
	SessionID string
	ProductID string
	Quantity  int
}

type RemoveFromCartParams struct {
	SessionID string
	ProductID string
}

// Total sums price x quantity over lines.
func Total(lines []CartLine) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range lines {
		price, err := l.Product.UnitPrice()
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total, nil
}
