package order

import "time"

type Order struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Status          Status    `json:"status"`
	Total           string    `json:"total"` // NUMERIC -> string
	ShippingName    string    `json:"shipping_name"`
	ShippingPhone   string    `json:"shipping_phone"`
	ShippingAddress string    `json:"shipping_address"`
	ShippingCity    string    `json:"shipping_city"`
	ShippingState   string    `json:"shipping_state"`
	ShippingPincode string    `json:"shipping_pincode"`
	PaymentMethod   string    `json:"payment_method"`
	Notes           *string   `json:"notes,omitempty"`
	CouponCode      *string   `json:"coupon_code,omitempty"`
	DiscountAmount  string    `json:"discount_amount"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Item is a line snapshot: name, image and price are copied at order time
// so later catalog edits do not alter historical orders.
type Item struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage *string `json:"product_image,omitempty"`
	Quantity     int     `json:"quantity"`
	Price        string  `json:"price"`
}
