package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	ord "github.com/nanheram/storefront/internal/order"
)

// PaymentsClient drives the payment-service order/verification handshake.
type PaymentsClient interface {
	CreateGatewayOrder(ctx context.Context, token string, amount decimal.Decimal, orderID string) (*ord.CreatePaymentOrderResponse, error)
	VerifyPayment(ctx context.Context, token string, req ord.VerifyPaymentRequest) (*ord.VerifyPaymentResponse, error)
}

// PaymentsExt calls the payment-service over HTTP.
type PaymentsExt struct {
	HTTP    *http.Client
	BaseURL string
}

func NewPaymentsExt(baseURL string) *PaymentsExt {
	return &PaymentsExt{
		HTTP:    &http.Client{Timeout: 7 * time.Second},
		BaseURL: baseURL,
	}
}

func (e *PaymentsExt) post(ctx context.Context, token, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := e.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = res.Status
		}
		return fmt.Errorf("payment service: %s", apiErr.Error)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (e *PaymentsExt) CreateGatewayOrder(ctx context.Context, token string, amount decimal.Decimal, orderID string) (*ord.CreatePaymentOrderResponse, error) {
	in := map[string]any{
		"amount":   amount.InexactFloat64(),
		"order_id": orderID,
	}
	var out ord.CreatePaymentOrderResponse
	if err := e.post(ctx, token, "/functions/v1/razorpay-create-order", in, &out); err != nil {
		return nil, err
	}
	if out.RazorpayOrderID == "" {
		return nil, fmt.Errorf("payment service: empty gateway order id")
	}
	return &out, nil
}

func (e *PaymentsExt) VerifyPayment(ctx context.Context, token string, req ord.VerifyPaymentRequest) (*ord.VerifyPaymentResponse, error) {
	var out ord.VerifyPaymentResponse
	if err := e.post(ctx, token, "/functions/v1/razorpay-verify-payment", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
