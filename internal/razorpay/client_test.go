package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderOK(t *testing.T) {
	var gotAuthUser, gotAuthPass string
	var gotBody CreateOrderParams

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(GatewayOrder{
			ID:       "order_N5u0Aw",
			Amount:   gotBody.Amount,
			Currency: gotBody.Currency,
			Receipt:  gotBody.Receipt,
			Status:   "created",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out, err := c.CreateOrder(context.Background(), Credentials{KeyID: "rzp_test_k1", KeySecret: "sec"}, CreateOrderParams{
		Amount:   25000,
		Currency: "INR",
		Receipt:  "local-order-1",
		Notes:    map[string]string{"order_id": "local-order-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "order_N5u0Aw", out.ID)
	assert.Equal(t, int64(25000), out.Amount)
	assert.Equal(t, "rzp_test_k1", gotAuthUser)
	assert.Equal(t, "sec", gotAuthPass)
	assert.Equal(t, "local-order-1", gotBody.Receipt)
	assert.Equal(t, "local-order-1", gotBody.Notes["order_id"])
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"description":"Authentication failed"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.CreateOrder(context.Background(), Credentials{KeyID: "bad", KeySecret: "bad"}, CreateOrderParams{
		Amount: 100, Currency: "INR", Receipt: "r",
	})
	require.Error(t, err)
	// the gateway body stays out of the returned error
	assert.NotContains(t, err.Error(), "Authentication failed")
}

func TestCreateOrderContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	c := NewClient(srv.URL)
	_, err := c.CreateOrder(ctx, Credentials{KeyID: "k", KeySecret: "s"}, CreateOrderParams{Amount: 100, Currency: "INR"})
	assert.Error(t, err)
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"250", 25000},
		{"249.99", 24999},
		{"0.01", 1},
		{"99.995", 10000}, // rounds half up
		{"600.00", 60000},
	}
	for _, tt := range tests {
		got := ToMinorUnits(decimal.RequireFromString(tt.amount), 100)
		assert.Equal(t, tt.want, got, "amount %s", tt.amount)
	}
}
