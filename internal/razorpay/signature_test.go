package razorpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureKnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		orderID   string
		paymentID string
		want      string
	}{
		{
			name:      "basic",
			secret:    "test_secret",
			orderID:   "order_rcpt_abc",
			paymentID: "pay_12345",
			want:      "4101e7928b7f81b16e65efda17f176c760d0fa10ecd3d4b07869a0eee013b8b0",
		},
		{
			name:      "short ids",
			secret:    "s3cr3t",
			orderID:   "order_A",
			paymentID: "pay_B",
			want:      "5d33b96455a6ead0af3c0f6572b254947c79433521179346d4ecc511f37da2fb",
		},
		{
			name:      "alnum ids",
			secret:    "whsec_k9",
			orderID:   "order_N5u0Aw",
			paymentID: "pay_Dc8xQz",
			want:      "58001a412f9e5c998eed35506a7144e4b256919162149a639730b632f8f1f5ee",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Signature(tt.secret, tt.orderID, tt.paymentID))
			// deterministic: same inputs, same digest
			assert.Equal(t, Signature(tt.secret, tt.orderID, tt.paymentID), Signature(tt.secret, tt.orderID, tt.paymentID))
		})
	}
}

func TestSignatureDependsOnSecret(t *testing.T) {
	a := Signature("test_secret", "order_rcpt_abc", "pay_12345")
	b := Signature("other_secret", "order_rcpt_abc", "pay_12345")
	assert.NotEqual(t, a, b)
	assert.Equal(t, "2a55db327424296410c47257668a7996b95068759a6167e0a09b4778dab573a1", b)
}

func TestVerifySignature(t *testing.T) {
	good := Signature("test_secret", "order_1", "pay_1")
	assert.True(t, VerifySignature("test_secret", "order_1", "pay_1", good))

	// any single-character corruption must fail
	tampered := "0" + good[1:]
	if tampered == good {
		tampered = "1" + good[1:]
	}
	assert.False(t, VerifySignature("test_secret", "order_1", "pay_1", tampered))
	assert.False(t, VerifySignature("test_secret", "order_1", "pay_1", ""))
	assert.False(t, VerifySignature("wrong_secret", "order_1", "pay_1", good))
}
