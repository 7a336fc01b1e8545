package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature computes the checkout callback signature: lowercase-hex
// HMAC-SHA256 over "<order_id>|<payment_id>" keyed by the key secret.
func Signature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether got matches the signature the gateway
// would have produced for this order/payment pair. Comparison is
// constant-time.
func VerifySignature(secret, orderID, paymentID, got string) bool {
	want := Signature(secret, orderID, paymentID)
	return hmac.Equal([]byte(want), []byte(got))
}
