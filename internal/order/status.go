package order

type Status string

const (
	StatusPending         Status = "pending"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusConfirmed       Status = "confirmed"
	StatusPaymentFailed   Status = "payment_failed"
	StatusShipped         Status = "shipped"
	StatusDelivered       Status = "delivered"
	StatusCancelled       Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusPaymentFailed
}

// CanTransition guards status moves. payment_failed is reachable only from
// awaiting_payment, so a late failure callback can never clobber a
// confirmed order; re-entering confirmed is allowed (idempotent verify).
func (s Status) CanTransition(to Status) bool {
	if s == to {
		return to == StatusConfirmed
	}
	switch s {
	case StatusPending:
		return to == StatusConfirmed || to == StatusShipped || to == StatusCancelled
	case StatusAwaitingPayment:
		return to == StatusConfirmed || to == StatusPaymentFailed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusShipped || to == StatusCancelled
	case StatusShipped:
		return to == StatusDelivered
	default:
		return false
	}
}
