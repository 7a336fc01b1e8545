package coupon

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeFixed      = "fixed"
	TypePercentage = "percentage"
)

var (
	ErrInvalid      = errors.New("coupon not valid")
	ErrExpired      = errors.New("coupon expired")
	ErrLimitReached = errors.New("coupon fully redeemed")
	ErrMinOrder     = errors.New("minimum order amount not met")
)

type Coupon struct {
	Code           string          `json:"code"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	MinOrderAmount decimal.Decimal `json:"min_order_amount"`
	MaxUses        *int            `json:"max_uses,omitempty"`
	UsedCount      int             `json:"used_count"`
	IsActive       bool            `json:"is_active"`
	ExpiresAt      *time.Time      `json:"expires_at,omitempty"`
}

// Validate runs the redemption checks in their fixed order; the first
// failing check determines the rejection reason.
func (c *Coupon) Validate(subtotal decimal.Decimal, now time.Time) error {
	if !c.IsActive {
		return ErrInvalid
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(now) {
		return ErrExpired
	}
	if c.MaxUses != nil && c.UsedCount >= *c.MaxUses {
		return ErrLimitReached
	}
	if c.MinOrderAmount.IsPositive() && subtotal.LessThan(c.MinOrderAmount) {
		return ErrMinOrder
	}
	return nil
}

// Discount computes the amount taken off the subtotal. Fixed discounts
// are capped at the subtotal so the final total never goes negative.
func (c *Coupon) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if c.DiscountType == TypePercentage {
		return subtotal.Mul(c.DiscountValue).Div(decimal.NewFromInt(100))
	}
	if c.DiscountValue.GreaterThan(subtotal) {
		return subtotal
	}
	return c.DiscountValue
}
