package checkout

import "context"

// WidgetOptions is what the gateway's hosted payment UI needs to open.
type WidgetOptions struct {
	KeyID          string
	GatewayOrderID string
	Amount         int64 // minor units
	Currency       string
	Name           string // storefront display name
	Description    string
	Prefill        Prefill
}

type Prefill struct {
	Name    string
	Email   string
	Contact string
}

// WidgetResult is the widget's outcome: either the gateway callback echo
// (payment id + signature) or a dismissal.
type WidgetResult struct {
	GatewayOrderID string
	PaymentID      string
	Signature      string
	Dismissed      bool
}

// Widget is the hosted payment UI as an awaitable task. Open blocks until
// the user completes or dismisses the widget; context cancellation counts
// as dismissal and must not trigger a verification call.
type Widget interface {
	Open(ctx context.Context, opts WidgetOptions) (*WidgetResult, error)
}
