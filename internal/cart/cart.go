package cart

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("cart not found")

// Item carries the product snapshot the checkout needs: unit price and
// display fields frozen at add-to-cart time.
type Item struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
}

type Cart struct {
	UserID string `json:"user_id"`
	Items  []Item `json:"items"`
}

// Subtotal is the sum of unit price times quantity over all items.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

type Store interface {
	Get(ctx context.Context, userID string) (*Cart, error)
	Set(ctx context.Context, userID string, cart *Cart) error
	Clear(ctx context.Context, userID string) error
}
