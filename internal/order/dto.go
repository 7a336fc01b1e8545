package order

// CreatePaymentOrderRequest payload for originating a gateway order.
// swagger:model CreatePaymentOrderRequest
type CreatePaymentOrderRequest struct {
	Amount  float64 `json:"amount" example:"249.99"`
	OrderID string  `json:"order_id" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
}

// CreatePaymentOrderResponse returns the gateway identifiers the browser
// widget needs. The key secret is never part of this payload.
// swagger:model CreatePaymentOrderResponse
type CreatePaymentOrderResponse struct {
	RazorpayOrderID string `json:"razorpay_order_id"`
	RazorpayKeyID   string `json:"razorpay_key_id"`
	Amount          int64  `json:"amount"` // minor units
	Currency        string `json:"currency"`
}

// VerifyPaymentRequest is the gateway callback echo: all four fields are
// mandatory. It exists only for the duration of one verification call.
// swagger:model VerifyPaymentRequest
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           string `json:"order_id"`
}

// VerifyPaymentResponse reports the verification outcome.
// swagger:model VerifyPaymentResponse
type VerifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
