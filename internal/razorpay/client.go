package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Credentials holds a key pair from admin settings. KeyID is safe to hand
// to the browser widget; KeySecret never leaves the server.
type Credentials struct {
	KeyID     string
	KeySecret string
}

type CreateOrderParams struct {
	Amount   int64             `json:"amount"` // minor units
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 7 * time.Second},
		BaseURL: baseURL,
	}
}

// CreateOrder requests a payment order from the gateway. The gateway's
// error body is logged server-side only; callers get a generic error.
func (c *Client) CreateOrder(ctx context.Context, creds Credentials, p CreateOrderParams) (*GatewayOrder, error) {
	body, _ := json.Marshal(p)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(creds.KeyID, creds.KeySecret)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		log.Printf("[razorpay] order create failed status=%d body=%s", res.StatusCode, errBody)
		return nil, fmt.Errorf("gateway order create: %s", res.Status)
	}

	var out GatewayOrder
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToMinorUnits converts a base-currency amount to the gateway's minor
// units (paise for INR, factor 100), rounding to the nearest integer.
func ToMinorUnits(amount decimal.Decimal, factor int64) int64 {
	return amount.Mul(decimal.NewFromInt(factor)).Round(0).IntPart()
}
